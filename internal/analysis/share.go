package analysis

import (
	"sort"

	"bill-forecast/internal/forecast"
	"bill-forecast/internal/model"
)

// CarrierShare is one carrier's contribution to a trajectory's cumulative
// cost. This is the data series behind a stacked cost chart.
type CarrierShare struct {
	Carrier        model.Carrier
	CumulativeCost float64
	SharePct       float64
}

// RankByCumulativeCost sums each carrier's cost over the whole trajectory
// and sorts descending by contribution. Shares are percentages of the
// cumulative total; zero-total trajectories yield zero shares.
func RankByCumulativeCost(t *forecast.Trajectory) []CarrierShare {
	if t == nil {
		return nil
	}

	byCarrier := map[model.Carrier]float64{}
	order := []model.Carrier{}
	total := 0.0

	for _, row := range t.Rows {
		for _, item := range row.Items {
			if _, seen := byCarrier[item.Carrier]; !seen {
				order = append(order, item.Carrier)
			}
			byCarrier[item.Carrier] += item.Cost
			total += item.Cost
		}
	}

	out := make([]CarrierShare, 0, len(order))
	for _, c := range order {
		share := CarrierShare{Carrier: c, CumulativeCost: byCarrier[c]}
		if total > 0 {
			share.SharePct = byCarrier[c] / total * 100
		}
		out = append(out, share)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CumulativeCost > out[j].CumulativeCost
	})
	return out
}
