package model

import (
	"fmt"
	"math"
)

// LineItem is one metered consumption stream in the base year.
// Units:
// - AnnualKWh: kWh per year (held constant across the horizon)
// - UnitPrice: currency per kWh in the base year
type LineItem struct {
	Carrier   Carrier
	AnnualKWh float64
	UnitPrice float64
}

func (li LineItem) Validate() error {
	if !li.Carrier.Valid() {
		return fmt.Errorf("%w: unknown carrier %q", ErrInvalidLineItem, li.Carrier)
	}
	if !isFinite(li.AnnualKWh) || li.AnnualKWh <= 0 {
		return fmt.Errorf("%w: %s annual_kwh must be a finite number > 0", ErrInvalidLineItem, li.Carrier)
	}
	if !isFinite(li.UnitPrice) || li.UnitPrice < 0 {
		return fmt.Errorf("%w: %s unit_price must be a finite number >= 0", ErrInvalidLineItem, li.Carrier)
	}
	return nil
}

// BaseCost is the unescalated annual cost of this item.
func (li LineItem) BaseCost() float64 {
	return li.AnnualKWh * li.UnitPrice
}

// Bill is a base-year bill: an ordered, non-empty sequence of line items.
// Order is preserved for display/stacking only; sums are order-independent.
type Bill []LineItem

func (b Bill) Validate() error {
	if len(b) == 0 {
		return ErrEmptyLineItems
	}
	for i, li := range b {
		if err := li.Validate(); err != nil {
			return fmt.Errorf("line item %d: %w", i, err)
		}
	}
	return nil
}

// BaseTotal is the literal base-year bill total.
func (b Bill) BaseTotal() float64 {
	total := 0.0
	for _, li := range b {
		total += li.BaseCost()
	}
	return total
}

// Carriers returns the distinct carriers on the bill, first-seen order.
func (b Bill) Carriers() []Carrier {
	seen := map[Carrier]bool{}
	out := make([]Carrier, 0, len(b))
	for _, li := range b {
		if !seen[li.Carrier] {
			seen[li.Carrier] = true
			out = append(out, li.Carrier)
		}
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
