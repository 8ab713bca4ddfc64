// Package input normalizes form-layer values into validated model types.
// It accepts the numeric formats people actually type: comma or dot as the
// decimal separator, with optional grouping in the other symbol.
package input

import (
	"fmt"
	"strconv"
	"strings"

	"bill-forecast/internal/model"
)

// ParseAmount parses a locale-formatted numeric string.
//
// Both "1.234,56" and "1,234.56" parse to 1234.56: when both separators
// are present, the one further right is the decimal separator. A single
// comma is treated as a decimal comma; repeated occurrences of one symbol
// are grouping and are stripped.
func ParseAmount(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("empty number")
	}
	cleaned := strings.ReplaceAll(raw, " ", "")

	lastComma := strings.LastIndex(cleaned, ",")
	lastDot := strings.LastIndex(cleaned, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(cleaned, ",") > 1 {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		}
	case lastDot >= 0:
		if strings.Count(cleaned, ".") > 1 {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", raw, err)
	}
	return v, nil
}

// ParseRate parses a locale-formatted escalation percentage and checks it
// against the valid rate domain.
func ParseRate(s string) (float64, error) {
	v, err := ParseAmount(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrInvalidEscalationRate, err)
	}
	if v < model.MinEscalationPct || v > model.MaxEscalationPct {
		return 0, fmt.Errorf("%w: got %v", model.ErrInvalidEscalationRate, v)
	}
	return v, nil
}

// RawLineItem is one unparsed consumption row as the form layer submits it.
type RawLineItem struct {
	Carrier   string
	AnnualKWh string
	UnitPrice string
}

func (r RawLineItem) blank() bool {
	return strings.TrimSpace(r.AnnualKWh) == "" && strings.TrimSpace(r.UnitPrice) == ""
}

// NormalizeLineItems parses raw rows into a validated bill. Fully blank
// rows are skipped (empty form rows); partially filled or malformed rows
// are errors. An input with no usable rows is ErrEmptyLineItems.
func NormalizeLineItems(rows []RawLineItem) (model.Bill, error) {
	bill := make(model.Bill, 0, len(rows))
	for i, r := range rows {
		if r.blank() {
			continue
		}
		carrier := model.Carrier(strings.TrimSpace(r.Carrier))
		kwh, err := ParseAmount(r.AnnualKWh)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: %v", i, model.ErrInvalidLineItem, err)
		}
		price, err := ParseAmount(r.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w: %v", i, model.ErrInvalidLineItem, err)
		}
		li := model.LineItem{Carrier: carrier, AnnualKWh: kwh, UnitPrice: price}
		if err := li.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		bill = append(bill, li)
	}
	if len(bill) == 0 {
		return nil, model.ErrEmptyLineItems
	}
	return bill, nil
}
