package input

import (
	"testing"

	"bill-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1234.56", 1234.56},
		{"1234,56", 1234.56},
		{"1.234,56", 1234.56},
		{"1,234.56", 1234.56},
		{"1.234.567,89", 1234567.89},
		{"1,234,567.89", 1234567.89},
		{"0,20", 0.20},
		{"0.20", 0.20},
		{"3500", 3500},
		{" 42 ", 42},
		{"-12,5", -12.5},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestParseAmountErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "12,3,4.5.6x"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAmount(in)
			assert.Error(t, err)
		})
	}
}

func TestParseRate(t *testing.T) {
	got, err := ParseRate("4,5")
	require.NoError(t, err)
	assert.InDelta(t, 4.5, got, 1e-9)

	_, err = ParseRate("150")
	assert.ErrorIs(t, err, model.ErrInvalidEscalationRate)

	_, err = ParseRate("not-a-number")
	assert.ErrorIs(t, err, model.ErrInvalidEscalationRate)
}

func TestNormalizeLineItems(t *testing.T) {
	t.Run("skips blank rows", func(t *testing.T) {
		bill, err := NormalizeLineItems([]RawLineItem{
			{Carrier: "electricity", AnnualKWh: "3.500,00", UnitPrice: "0,32"},
			{Carrier: "natural-gas"}, // untouched form row
			{Carrier: "propane", AnnualKWh: "1,200.5", UnitPrice: "0.09"},
		})
		require.NoError(t, err)
		require.Len(t, bill, 2)
		assert.Equal(t, model.CarrierElectricity, bill[0].Carrier)
		assert.InDelta(t, 3500, bill[0].AnnualKWh, 1e-9)
		assert.InDelta(t, 0.32, bill[0].UnitPrice, 1e-9)
		assert.InDelta(t, 1200.5, bill[1].AnnualKWh, 1e-9)
	})

	t.Run("all blank is empty", func(t *testing.T) {
		_, err := NormalizeLineItems([]RawLineItem{{Carrier: "electricity"}})
		assert.ErrorIs(t, err, model.ErrEmptyLineItems)
	})

	t.Run("bad number", func(t *testing.T) {
		_, err := NormalizeLineItems([]RawLineItem{
			{Carrier: "electricity", AnnualKWh: "many", UnitPrice: "0,32"},
		})
		assert.ErrorIs(t, err, model.ErrInvalidLineItem)
	})

	t.Run("unknown carrier", func(t *testing.T) {
		_, err := NormalizeLineItems([]RawLineItem{
			{Carrier: "coal", AnnualKWh: "100", UnitPrice: "0,05"},
		})
		assert.ErrorIs(t, err, model.ErrInvalidLineItem)
	})
}
