package models

// ProjectResponse is the response for a single projection run.
type ProjectResponse struct {
	Status  string           `json:"status"`
	Summary ScenarioSummary  `json:"summary"`
	Rows    []TrajectoryRow  `json:"rows,omitempty"`
	Shares  []CarrierShare   `json:"shares,omitempty"`
}

// ScenarioSummary contains the derived metrics for one trajectory.
type ScenarioSummary struct {
	Name              string  `json:"name,omitempty"`
	StartYear         int     `json:"start_year"`
	HorizonYears      int     `json:"horizon_years"`
	BaseTotal         float64 `json:"base_total"`
	FinalTotal        float64 `json:"final_total"`
	GrowthFactor      float64 `json:"growth_factor"`
	GrowthPercent     float64 `json:"growth_percent"`
	CAGRPercent       float64 `json:"cagr_percent"`
	CumulativeTotal   float64 `json:"cumulative_total"`
	AnnualAverage     float64 `json:"annual_average"`
	CumulativeSurplus float64 `json:"cumulative_surplus"`
}

// TrajectoryRow is one projection year in the response.
type TrajectoryRow struct {
	Index int        `json:"index"`
	Year  int        `json:"year"`
	Items []ItemCost `json:"items"`
	Total float64    `json:"total"`
}

// ItemCost is one line item's escalated price and cost for a year.
type ItemCost struct {
	Carrier   string  `json:"carrier"`
	UnitPrice float64 `json:"unit_price"`
	Cost      float64 `json:"cost"`
}

// CarrierShare is one carrier's contribution to cumulative cost.
type CarrierShare struct {
	Carrier        string  `json:"carrier"`
	Label          string  `json:"label"`
	CumulativeCost float64 `json:"cumulative_cost"`
	SharePct       float64 `json:"share_pct"`
}

// CompareResponse is the response for a base-vs-alternative comparison.
type CompareResponse struct {
	Status      string          `json:"status"`
	Base        ScenarioSummary `json:"base"`
	Alternative ScenarioSummary `json:"alternative"`
	Economy     EconomySummary  `json:"economy"`
	Deltas      []YearDelta     `json:"deltas,omitempty"`
}

// EconomySummary holds the cumulative comparison metrics over the aligned
// years. Positive values mean the alternative is cheaper.
type EconomySummary struct {
	CumulativeBase    float64 `json:"cumulative_base"`
	CumulativeAlt     float64 `json:"cumulative_alt"`
	CumulativeDelta   float64 `json:"cumulative_delta"`
	CumulativePercent float64 `json:"cumulative_percent"`
	AlignedYears      int     `json:"aligned_years"`
}

// YearDelta is one aligned comparison year.
type YearDelta struct {
	Year  int     `json:"year"`
	Base  float64 `json:"base"`
	Alt   float64 `json:"alt"`
	Delta float64 `json:"delta"`
}

// CarrierInfo describes one catalog carrier.
type CarrierInfo struct {
	ID                   string  `json:"id"`
	Label                string  `json:"label"`
	DefaultEscalationPct float64 `json:"default_escalation_pct"`
}

// PresetInfo describes one named escalation preset.
type PresetInfo struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Rates       map[string]float64 `json:"rates"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
