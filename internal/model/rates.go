package model

import "fmt"

// Valid escalation rate bounds, percent per year.
const (
	MinEscalationPct = -50.0
	MaxEscalationPct = 100.0

	// escalationFloorPct prevents a zero-or-negative price multiplier.
	// This is a numerical-stability clamp, not input validation.
	escalationFloorPct = -99.9
)

// RateMap maps carriers to annual price escalation percentages.
// Carriers absent from the map fall back to the catalog default.
type RateMap map[Carrier]float64

// Resolve returns the rate for c, falling back to the catalog default.
func (m RateMap) Resolve(c Carrier) float64 {
	if r, ok := m[c]; ok {
		return r
	}
	return c.DefaultEscalationPct()
}

// Resolved returns a copy of m covering every carrier on the bill, with
// defaults filled in. The engine only ever sees fully-resolved maps.
func (m RateMap) Resolved(b Bill) RateMap {
	out := make(RateMap, len(b))
	for _, c := range b.Carriers() {
		out[c] = m.Resolve(c)
	}
	return out
}

func (m RateMap) Validate() error {
	for c, r := range m {
		if !c.Valid() {
			return fmt.Errorf("%w: unknown carrier %q", ErrInvalidEscalationRate, c)
		}
		if !isFinite(r) || r < MinEscalationPct || r > MaxEscalationPct {
			return fmt.Errorf("%w: %s rate %v", ErrInvalidEscalationRate, c, r)
		}
	}
	return nil
}

// Growth converts a percentage rate to a fractional annual growth rate,
// applying the -99.9% floor so the multiplier stays strictly positive.
func Growth(pct float64) float64 {
	if pct < escalationFloorPct {
		pct = escalationFloorPct
	}
	return pct / 100
}
