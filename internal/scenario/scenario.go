// Package scenario provides named escalation presets: fully-populated rate
// assignments a config or request can reference by name instead of listing
// every carrier.
package scenario

import (
	"fmt"

	"bill-forecast/internal/model"
)

// Preset is a named escalation assignment covering every catalog carrier.
type Preset struct {
	Name        string
	Description string
	Rates       model.RateMap
}

var presets = []Preset{
	{
		Name:        "default",
		Description: "Catalog default escalation per carrier",
		Rates:       defaultRates(),
	},
	{
		Name:        "flat",
		Description: "No escalation; prices frozen at the base year",
		Rates:       uniformRates(0),
	},
	{
		Name:        "stress",
		Description: "Sustained high-escalation stress case",
		Rates: model.RateMap{
			model.CarrierElectricity: 8,
			model.CarrierNaturalGas:  12,
			model.CarrierFuelOil:     14,
			model.CarrierWoodPellet:  7,
			model.CarrierWoodChip:    6,
			model.CarrierPropane:     12,
		},
	},
}

// Names lists the available presets in registration order.
func Names() []string {
	out := make([]string, len(presets))
	for i, p := range presets {
		out[i] = p.Name
	}
	return out
}

func Lookup(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Resolve returns the preset's rate map, copied so callers can overlay
// per-carrier overrides without touching the registry.
func Resolve(name string) (model.RateMap, error) {
	p, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown scenario preset: %q", name)
	}
	out := make(model.RateMap, len(p.Rates))
	for c, r := range p.Rates {
		out[c] = r
	}
	return out, nil
}

func defaultRates() model.RateMap {
	m := model.RateMap{}
	for _, c := range model.Carriers() {
		m[c] = c.DefaultEscalationPct()
	}
	return m
}

func uniformRates(pct float64) model.RateMap {
	m := model.RateMap{}
	for _, c := range model.Carriers() {
		m[c] = pct
	}
	return m
}

// All returns the preset registry for listing endpoints.
func All() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}
