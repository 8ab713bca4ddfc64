package forecast

import "math"

// Metrics over one or two trajectories. Every function returns a defined
// 0 fallback instead of propagating NaN/Inf when the base total is zero or
// the trajectory is degenerate, so presentation layers never see either.

// GrowthFactor is last total / first total.
func GrowthFactor(t *Trajectory) float64 {
	if t == nil || len(t.Rows) == 0 || t.First().Total <= 0 {
		return 0
	}
	return t.Last().Total / t.First().Total
}

// GrowthPercent is the total growth over the horizon, percent.
func GrowthPercent(t *Trajectory) float64 {
	if t == nil || len(t.Rows) == 0 || t.First().Total <= 0 {
		return 0
	}
	first := t.First().Total
	return (t.Last().Total - first) / first * 100
}

// CAGR is the compound annual growth rate over the horizon, percent.
func CAGR(t *Trajectory) float64 {
	if t == nil || len(t.Rows) == 0 || t.First().Total <= 0 {
		return 0
	}
	years := t.Years()
	if years < 1 {
		years = 1
	}
	ratio := t.Last().Total / t.First().Total
	return (math.Pow(ratio, 1/float64(years)) - 1) * 100
}

// CumulativeTotal sums every year's total, year 0 included.
func CumulativeTotal(t *Trajectory) float64 {
	if t == nil {
		return 0
	}
	sum := 0.0
	for _, row := range t.Rows {
		sum += row.Total
	}
	return sum
}

// AnnualAverage is the cumulative total divided by the row count.
func AnnualAverage(t *Trajectory) float64 {
	if t == nil || len(t.Rows) == 0 {
		return 0
	}
	return CumulativeTotal(t) / float64(len(t.Rows))
}

// CumulativeSurplus is the running excess over a flat, unescalated
// baseline: sum over years 1..end of (total[i] - total[0]). Zero when the
// base-year total is not positive.
func CumulativeSurplus(t *Trajectory) float64 {
	if t == nil || len(t.Rows) == 0 || t.First().Total <= 0 {
		return 0
	}
	base := t.First().Total
	sum := 0.0
	for _, row := range t.Rows[1:] {
		sum += row.Total - base
	}
	return sum
}

// Summary bundles the single-trajectory metrics.
type Summary struct {
	BaseTotal         float64
	FinalTotal        float64
	GrowthFactor      float64
	GrowthPercent     float64
	CAGRPercent       float64
	CumulativeTotal   float64
	AnnualAverage     float64
	CumulativeSurplus float64
}

func Summarize(t *Trajectory) Summary {
	s := Summary{
		GrowthFactor:      GrowthFactor(t),
		GrowthPercent:     GrowthPercent(t),
		CAGRPercent:       CAGR(t),
		CumulativeTotal:   CumulativeTotal(t),
		AnnualAverage:     AnnualAverage(t),
		CumulativeSurplus: CumulativeSurplus(t),
	}
	if t != nil && len(t.Rows) > 0 {
		s.BaseTotal = t.First().Total
		s.FinalTotal = t.Last().Total
	}
	return s
}

// YearDelta is one aligned year of a base-vs-alternative comparison.
// Positive Delta means the alternative is cheaper that year.
type YearDelta struct {
	Year  int
	Base  float64
	Alt   float64
	Delta float64
}

// Comparison holds the economy metrics between two trajectories.
// Cumulative values run over the aligned years only.
type Comparison struct {
	Deltas            []YearDelta
	CumulativeBase    float64
	CumulativeAlt     float64
	CumulativeDelta   float64
	CumulativePercent float64
}

// Compare aligns base and alt by year value, not by row index. Years
// present in only one trajectory are skipped, so trajectories with
// differing start years or horizons compare only where they overlap.
func Compare(base, alt *Trajectory) Comparison {
	var cmp Comparison
	if base == nil || alt == nil {
		return cmp
	}

	altByYear := make(map[int]float64, len(alt.Rows))
	for _, row := range alt.Rows {
		altByYear[row.Year] = row.Total
	}

	for _, row := range base.Rows {
		altTotal, ok := altByYear[row.Year]
		if !ok {
			continue
		}
		cmp.Deltas = append(cmp.Deltas, YearDelta{
			Year:  row.Year,
			Base:  row.Total,
			Alt:   altTotal,
			Delta: row.Total - altTotal,
		})
		cmp.CumulativeBase += row.Total
		cmp.CumulativeAlt += altTotal
	}

	cmp.CumulativeDelta = cmp.CumulativeBase - cmp.CumulativeAlt
	if cmp.CumulativeBase > 0 {
		cmp.CumulativePercent = cmp.CumulativeDelta / cmp.CumulativeBase * 100
	}
	return cmp
}
