package forecast

import (
	"math"

	"bill-forecast/internal/model"
)

type Engine struct{}

func New() *Engine { return &Engine{} }

// Project compounds the base-year bill forward year by year.
//
// Escalation is a per-carrier exponential applied to the unit price;
// consumption volume is held constant across the horizon. Year 0 reproduces
// the literal base-year bill (multiplier 1 for every item). No rounding is
// applied; formatting is a presentation concern.
//
// The request is assumed pre-validated (ProjectionRequest.Validate). The
// one precondition checked here is the non-empty bill, which would
// otherwise yield a meaningless trajectory.
func (e *Engine) Project(req model.ProjectionRequest) (*Trajectory, error) {
	if len(req.Bill) == 0 {
		return nil, model.ErrEmptyLineItems
	}

	rates := req.Rates.Resolved(req.Bill)
	rows := make([]YearRow, 0, req.HorizonYears+1)

	for i := 0; i <= req.HorizonYears; i++ {
		items := make([]ItemCost, len(req.Bill))
		total := 0.0

		for j, li := range req.Bill {
			g := model.Growth(rates[li.Carrier])
			price := li.UnitPrice * math.Pow(1+g, float64(i))
			cost := price * li.AnnualKWh

			items[j] = ItemCost{
				Carrier:   li.Carrier,
				UnitPrice: price,
				Cost:      cost,
			}
			total += cost
		}

		rows = append(rows, YearRow{
			Index: i,
			Year:  req.StartYear + i,
			Items: items,
			Total: total,
		})
	}

	return &Trajectory{Rows: rows}, nil
}
