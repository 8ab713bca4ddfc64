package model

import "errors"

// Boundary validation errors. The projection engine assumes pre-validated
// input; these are surfaced by the calling layer (API, CLI, config).
var (
	ErrEmptyLineItems        = errors.New("no valid consumption line items supplied")
	ErrInvalidHorizon        = errors.New("horizon must be an integer in [0, 50]")
	ErrInvalidEscalationRate = errors.New("escalation rate must be a finite percentage in [-50, 100]")
	ErrInvalidLineItem       = errors.New("line item has non-finite or out-of-range values")
)
