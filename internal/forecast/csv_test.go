package forecast

import (
	"bytes"
	"strings"
	"testing"

	"bill-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTrajectoryDecimalComma(t *testing.T) {
	req := model.ProjectionRequest{
		StartYear:    2024,
		HorizonYears: 1,
		Bill:         model.Bill{{Carrier: model.CarrierElectricity, AnnualKWh: 5000, UnitPrice: 0.20}},
		Rates:        model.RateMap{model.CarrierElectricity: 4},
	}
	traj, err := New().Project(req)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeTrajectory(&buf, "household", traj))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "scenario;year;total;electricity_unit_price;electricity_cost", lines[0])
	assert.Equal(t, "household;2024;1000,00;0,2000;1000,00", lines[1])
	assert.Equal(t, "household;2025;1040,00;0,2080;1040,00", lines[2])
}

func TestWriteTrajectoryNoGroupingSeparators(t *testing.T) {
	req := model.ProjectionRequest{
		StartYear:    2024,
		HorizonYears: 0,
		Bill:         model.Bill{{Carrier: model.CarrierNaturalGas, AnnualKWh: 20000, UnitPrice: 0.11}},
	}
	traj, err := New().Project(req)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeTrajectory(&buf, "big", traj))

	// 2200.00 must come out as "2200,00", not "2.200,00".
	assert.Contains(t, buf.String(), ";2200,00;")
	assert.NotContains(t, buf.String(), "2.200")
}
