package handlers

import (
	"errors"
	"net/http"

	"bill-forecast/internal/analysis"
	"bill-forecast/internal/api/models"
	"bill-forecast/internal/forecast"
	"bill-forecast/internal/model"
	"bill-forecast/internal/scenario"

	"github.com/gin-gonic/gin"
)

// ProjectionHandler handles projection-related requests
type ProjectionHandler struct {
	engine *forecast.Engine
}

func NewProjectionHandler() *ProjectionHandler {
	return &ProjectionHandler{engine: forecast.New()}
}

// RunProjection handles POST /api/v1/project
func (h *ProjectionHandler) RunProjection(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err))
		return
	}

	projReq, err := buildRequest(req.Scenario)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(validationCode(err), err))
		return
	}

	traj, err := h.engine.Project(projReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("PROJECTION_ERROR", err))
		return
	}

	resp := models.ProjectResponse{
		Status:  "completed",
		Summary: buildSummary(req.Scenario.Name, projReq, traj),
	}
	if req.Options.IncludeRows {
		resp.Rows = convertRows(traj)
	}
	if req.Options.IncludeShares {
		resp.Shares = convertShares(analysis.RankByCumulativeCost(traj))
	}
	c.JSON(http.StatusOK, resp)
}

// CompareProjections handles POST /api/v1/project/compare
func (h *ProjectionHandler) CompareProjections(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_REQUEST", err))
		return
	}

	baseReq, err := buildRequest(req.Base)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(validationCode(err), err))
		return
	}
	altReq, err := buildRequest(mergeScenario(req.Base, req.Alternative))
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody(validationCode(err), err))
		return
	}

	// The two runs are independent; neither reads the other.
	baseTraj, err := h.engine.Project(baseReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("PROJECTION_ERROR", err))
		return
	}
	altTraj, err := h.engine.Project(altReq)
	if err != nil {
		c.JSON(http.StatusInternalServerError, errorBody("PROJECTION_ERROR", err))
		return
	}

	cmp := forecast.Compare(baseTraj, altTraj)

	resp := models.CompareResponse{
		Status:      "completed",
		Base:        buildSummary(req.Base.Name, baseReq, baseTraj),
		Alternative: buildSummary(req.Alternative.Name, altReq, altTraj),
		Economy: models.EconomySummary{
			CumulativeBase:    cmp.CumulativeBase,
			CumulativeAlt:     cmp.CumulativeAlt,
			CumulativeDelta:   cmp.CumulativeDelta,
			CumulativePercent: cmp.CumulativePercent,
			AlignedYears:      len(cmp.Deltas),
		},
	}
	if req.Options.IncludeRows {
		resp.Deltas = convertDeltas(cmp.Deltas)
	}
	c.JSON(http.StatusOK, resp)
}

// Helper methods

func buildRequest(s models.ScenarioRequest) (model.ProjectionRequest, error) {
	rates := model.RateMap{}
	if s.Preset != "" {
		resolved, err := scenario.Resolve(s.Preset)
		if err != nil {
			return model.ProjectionRequest{}, err
		}
		rates = resolved
	}
	for name, pct := range s.Rates {
		rates[model.Carrier(name)] = pct
	}

	bill := make(model.Bill, 0, len(s.Bill))
	for _, li := range s.Bill {
		bill = append(bill, model.LineItem{
			Carrier:   model.Carrier(li.Carrier),
			AnnualKWh: li.AnnualKWh,
			UnitPrice: li.UnitPrice,
		})
	}

	req := model.ProjectionRequest{
		StartYear:    s.StartYear,
		HorizonYears: s.HorizonYears,
		Bill:         bill,
		Rates:        rates,
	}
	if err := req.Validate(); err != nil {
		return model.ProjectionRequest{}, err
	}
	return req, nil
}

// mergeScenario overlays set fields from override onto base, so an
// alternative scenario only has to state what differs.
func mergeScenario(base, override models.ScenarioRequest) models.ScenarioRequest {
	merged := base
	if override.Name != "" {
		merged.Name = override.Name
	}
	if override.Preset != "" {
		merged.Preset = override.Preset
	}
	if override.StartYear != 0 {
		merged.StartYear = override.StartYear
	}
	if override.HorizonYears != 0 {
		merged.HorizonYears = override.HorizonYears
	}
	if len(override.Bill) > 0 {
		merged.Bill = override.Bill
	}
	if len(override.Rates) > 0 {
		rates := make(map[string]float64, len(base.Rates)+len(override.Rates))
		for k, v := range base.Rates {
			rates[k] = v
		}
		for k, v := range override.Rates {
			rates[k] = v
		}
		merged.Rates = rates
	}
	return merged
}

func buildSummary(name string, req model.ProjectionRequest, t *forecast.Trajectory) models.ScenarioSummary {
	s := forecast.Summarize(t)
	return models.ScenarioSummary{
		Name:              name,
		StartYear:         req.StartYear,
		HorizonYears:      req.HorizonYears,
		BaseTotal:         s.BaseTotal,
		FinalTotal:        s.FinalTotal,
		GrowthFactor:      s.GrowthFactor,
		GrowthPercent:     s.GrowthPercent,
		CAGRPercent:       s.CAGRPercent,
		CumulativeTotal:   s.CumulativeTotal,
		AnnualAverage:     s.AnnualAverage,
		CumulativeSurplus: s.CumulativeSurplus,
	}
}

func convertRows(t *forecast.Trajectory) []models.TrajectoryRow {
	rows := make([]models.TrajectoryRow, len(t.Rows))
	for i, row := range t.Rows {
		items := make([]models.ItemCost, len(row.Items))
		for j, item := range row.Items {
			items[j] = models.ItemCost{
				Carrier:   string(item.Carrier),
				UnitPrice: item.UnitPrice,
				Cost:      item.Cost,
			}
		}
		rows[i] = models.TrajectoryRow{
			Index: row.Index,
			Year:  row.Year,
			Items: items,
			Total: row.Total,
		}
	}
	return rows
}

func convertShares(shares []analysis.CarrierShare) []models.CarrierShare {
	out := make([]models.CarrierShare, len(shares))
	for i, s := range shares {
		out[i] = models.CarrierShare{
			Carrier:        string(s.Carrier),
			Label:          s.Carrier.Label(),
			CumulativeCost: s.CumulativeCost,
			SharePct:       s.SharePct,
		}
	}
	return out
}

func convertDeltas(deltas []forecast.YearDelta) []models.YearDelta {
	out := make([]models.YearDelta, len(deltas))
	for i, d := range deltas {
		out[i] = models.YearDelta{Year: d.Year, Base: d.Base, Alt: d.Alt, Delta: d.Delta}
	}
	return out
}

// validationCode maps boundary errors to stable machine codes.
func validationCode(err error) string {
	switch {
	case errors.Is(err, model.ErrEmptyLineItems):
		return "EMPTY_LINE_ITEMS"
	case errors.Is(err, model.ErrInvalidHorizon):
		return "INVALID_HORIZON"
	case errors.Is(err, model.ErrInvalidEscalationRate):
		return "INVALID_ESCALATION_RATE"
	case errors.Is(err, model.ErrInvalidLineItem):
		return "INVALID_LINE_ITEM"
	default:
		return "INVALID_REQUEST"
	}
}

func errorBody(code string, err error) models.ErrorResponse {
	return models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	}
}
