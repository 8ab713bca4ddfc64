package analysis

import (
	"testing"

	"bill-forecast/internal/forecast"
	"bill-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankByCumulativeCost(t *testing.T) {
	req := model.ProjectionRequest{
		StartYear:    2024,
		HorizonYears: 10,
		Bill: model.Bill{
			{Carrier: model.CarrierElectricity, AnnualKWh: 1000, UnitPrice: 0.30},
			{Carrier: model.CarrierNaturalGas, AnnualKWh: 20000, UnitPrice: 0.11},
		},
		Rates: model.RateMap{
			model.CarrierElectricity: 3,
			model.CarrierNaturalGas:  5,
		},
	}
	traj, err := forecast.New().Project(req)
	require.NoError(t, err)

	shares := RankByCumulativeCost(traj)
	require.Len(t, shares, 2)

	// Gas dominates this bill and must rank first.
	assert.Equal(t, model.CarrierNaturalGas, shares[0].Carrier)
	assert.Greater(t, shares[0].CumulativeCost, shares[1].CumulativeCost)

	sum := shares[0].SharePct + shares[1].SharePct
	assert.InDelta(t, 100.0, sum, 1e-9)

	assert.InDelta(t, forecast.CumulativeTotal(traj),
		shares[0].CumulativeCost+shares[1].CumulativeCost, 1e-6)
}

func TestRankEmpty(t *testing.T) {
	assert.Nil(t, RankByCumulativeCost(nil))
	assert.Empty(t, RankByCumulativeCost(&forecast.Trajectory{}))
}
