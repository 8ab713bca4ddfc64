package scenario

import (
	"testing"

	"bill-forecast/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetsCoverAllCarriers(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			for _, c := range model.Carriers() {
				_, ok := p.Rates[c]
				assert.True(t, ok, "preset %s missing %s", p.Name, c)
			}
			assert.NoError(t, p.Rates.Validate())
		})
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("flat")
	require.True(t, ok)
	for _, rate := range p.Rates {
		assert.Equal(t, 0.0, rate)
	}

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestResolveReturnsCopy(t *testing.T) {
	a, err := Resolve("default")
	require.NoError(t, err)
	a[model.CarrierElectricity] = -42

	b, err := Resolve("default")
	require.NoError(t, err)
	assert.Equal(t, model.CarrierElectricity.DefaultEscalationPct(), b[model.CarrierElectricity])

	_, err = Resolve("nope")
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"default", "flat", "stress"}, Names())
}
