package forecast

import (
	"testing"

	"bill-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectBaseYearIdentity(t *testing.T) {
	req := model.ProjectionRequest{
		StartYear:    2024,
		HorizonYears: 10,
		Bill: model.Bill{
			{Carrier: model.CarrierElectricity, AnnualKWh: 3500, UnitPrice: 0.32},
			{Carrier: model.CarrierNaturalGas, AnnualKWh: 18000, UnitPrice: 0.11},
			{Carrier: model.CarrierWoodPellet, AnnualKWh: 4000, UnitPrice: 0.07},
		},
		Rates: model.RateMap{},
	}
	require.NoError(t, req.Validate())

	traj, err := New().Project(req)
	require.NoError(t, err)

	// Year 0 must reproduce the literal base-year bill.
	assert.InDelta(t, req.Bill.BaseTotal(), traj.First().Total, 1e-9)
	for i, item := range traj.First().Items {
		assert.InDelta(t, req.Bill[i].UnitPrice, item.UnitPrice, 1e-9)
		assert.InDelta(t, req.Bill[i].BaseCost(), item.Cost, 1e-9)
	}
}

func TestProjectRowLayout(t *testing.T) {
	req := model.ProjectionRequest{
		StartYear:    2030,
		HorizonYears: 7,
		Bill:         model.Bill{{Carrier: model.CarrierPropane, AnnualKWh: 2500, UnitPrice: 0.09}},
		Rates:        model.RateMap{model.CarrierPropane: 2},
	}

	traj, err := New().Project(req)
	require.NoError(t, err)

	require.Len(t, traj.Rows, req.HorizonYears+1)
	for i, row := range traj.Rows {
		assert.Equal(t, i, row.Index)
		assert.Equal(t, req.StartYear+i, row.Year)
		require.Len(t, row.Items, len(req.Bill))
	}
}

func TestProjectPerCarrierCompounding(t *testing.T) {
	req := model.ProjectionRequest{
		StartYear:    2024,
		HorizonYears: 2,
		Bill:         model.Bill{{Carrier: model.CarrierElectricity, AnnualKWh: 1000, UnitPrice: 0.20}},
		Rates:        model.RateMap{model.CarrierElectricity: 5},
	}

	traj, err := New().Project(req)
	require.NoError(t, err)

	year2 := traj.Rows[2]
	assert.InDelta(t, 0.2205, year2.Items[0].UnitPrice, 1e-9) // 0.20 * 1.05^2
	assert.InDelta(t, 220.5, year2.Items[0].Cost, 1e-9)
}

func TestProjectIndependentCarrierRates(t *testing.T) {
	req := model.ProjectionRequest{
		StartYear:    2024,
		HorizonYears: 3,
		Bill: model.Bill{
			{Carrier: model.CarrierElectricity, AnnualKWh: 1000, UnitPrice: 0.30},
			{Carrier: model.CarrierNaturalGas, AnnualKWh: 1000, UnitPrice: 0.10},
		},
		Rates: model.RateMap{
			model.CarrierElectricity: 0,
			model.CarrierNaturalGas:  10,
		},
	}

	traj, err := New().Project(req)
	require.NoError(t, err)

	last := traj.Last()
	assert.InDelta(t, 0.30, last.Items[0].UnitPrice, 1e-9)
	assert.InDelta(t, 0.10*1.331, last.Items[1].UnitPrice, 1e-9)
}

func TestProjectRateFloor(t *testing.T) {
	// -150% is outside the valid domain but exercises the internal floor:
	// the clamped rate never yields a zero or negative multiplier.
	req := model.ProjectionRequest{
		StartYear:    2024,
		HorizonYears: 5,
		Bill:         model.Bill{{Carrier: model.CarrierFuelOil, AnnualKWh: 1000, UnitPrice: 0.50}},
		Rates:        model.RateMap{model.CarrierFuelOil: -150},
	}

	traj, err := New().Project(req)
	require.NoError(t, err)

	prev := traj.First().Items[0].UnitPrice
	for _, row := range traj.Rows[1:] {
		price := row.Items[0].UnitPrice
		assert.Greater(t, price, 0.0)
		assert.Less(t, price, prev)
		prev = price
	}
}

func TestProjectZeroHorizon(t *testing.T) {
	req := model.ProjectionRequest{
		StartYear:    2024,
		HorizonYears: 0,
		Bill:         model.Bill{{Carrier: model.CarrierElectricity, AnnualKWh: 100, UnitPrice: 0.25}},
	}

	traj, err := New().Project(req)
	require.NoError(t, err)
	require.Len(t, traj.Rows, 1)
	assert.InDelta(t, 25.0, traj.First().Total, 1e-9)
}

func TestProjectEmptyBill(t *testing.T) {
	_, err := New().Project(model.ProjectionRequest{StartYear: 2024, HorizonYears: 5})
	require.ErrorIs(t, err, model.ErrEmptyLineItems)
}

func TestProjectScenarioEndToEnd(t *testing.T) {
	req := model.ProjectionRequest{
		StartYear:    2024,
		HorizonYears: 3,
		Bill:         model.Bill{{Carrier: model.CarrierElectricity, AnnualKWh: 5000, UnitPrice: 0.20}},
		Rates:        model.RateMap{model.CarrierElectricity: 4},
	}
	require.NoError(t, req.Validate())

	traj, err := New().Project(req)
	require.NoError(t, err)

	want := []float64{1000.00, 1040.00, 1081.60, 1124.86}
	require.Len(t, traj.Rows, len(want))
	for i, row := range traj.Rows {
		assert.InDelta(t, want[i], row.Total, 0.005, "year %d", row.Year)
		assert.Equal(t, 2024+i, row.Year)
	}
}
