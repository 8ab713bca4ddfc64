package model

import "fmt"

// MaxHorizonYears bounds the projection horizon.
const MaxHorizonYears = 50

// ProjectionRequest is one fully-specified projection: a base-year bill
// plus the escalation assignment to compound it forward.
// HorizonYears produces HorizonYears+1 trajectory rows (year 0 inclusive).
type ProjectionRequest struct {
	StartYear    int
	HorizonYears int
	Bill         Bill
	Rates        RateMap
}

// Validate checks the full request against the boundary error taxonomy.
// A request that passes here is within the engine's precondition domain.
func (r ProjectionRequest) Validate() error {
	if r.HorizonYears < 0 || r.HorizonYears > MaxHorizonYears {
		return fmt.Errorf("%w: got %d", ErrInvalidHorizon, r.HorizonYears)
	}
	if err := r.Bill.Validate(); err != nil {
		return err
	}
	if err := r.Rates.Validate(); err != nil {
		return err
	}
	// Resolved rates include catalog defaults; check those too so a bad
	// default can never slip past validation.
	for c, rate := range r.Rates.Resolved(r.Bill) {
		if !isFinite(rate) || rate < MinEscalationPct || rate > MaxEscalationPct {
			return fmt.Errorf("%w: resolved %s rate %v", ErrInvalidEscalationRate, c, rate)
		}
	}
	return nil
}
