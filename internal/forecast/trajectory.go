package forecast

import "bill-forecast/internal/model"

// ItemCost is one line item's projected price and cost for a single year.
type ItemCost struct {
	Carrier   model.Carrier
	UnitPrice float64 // escalated currency per kWh
	Cost      float64 // UnitPrice * annual consumption
}

// YearRow is one row of per-year output.
// This is the primary artifact for "what the bill looks like" in year Index.
type YearRow struct {
	Index int
	Year  int

	Items []ItemCost
	Total float64
}

// Trajectory is the full year-by-year projection from one engine run.
// Rows are ordered, Year strictly increasing by 1 from the start year.
type Trajectory struct {
	Rows []YearRow
}

// Years is the number of elapsed years covered (row count minus one).
func (t *Trajectory) Years() int {
	if t == nil || len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows) - 1
}

func (t *Trajectory) First() YearRow { return t.Rows[0] }
func (t *Trajectory) Last() YearRow  { return t.Rows[len(t.Rows)-1] }
