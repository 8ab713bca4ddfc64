package data

import (
	"encoding/json"
	"os"

	"bill-forecast/internal/input"
	"bill-forecast/internal/model"
)

// BillFile matches the JSON document the form layer exports: amounts are
// the raw locale-formatted strings the user typed ("3.500,00" or "0,32"),
// parsed here through the input normalizer.
type BillFile struct {
	Name  string        `json:"name"`
	Items []BillFileRow `json:"items"`
}

type BillFileRow struct {
	Carrier   string `json:"carrier"`
	AnnualKWh string `json:"annual_kwh"`
	UnitPrice string `json:"unit_price"`
}

func LoadBillFile(path string) (*BillFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f BillFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

// Bill normalizes the file's rows into a validated bill.
func (f *BillFile) Bill() (model.Bill, error) {
	rows := make([]input.RawLineItem, len(f.Items))
	for i, it := range f.Items {
		rows[i] = input.RawLineItem{
			Carrier:   it.Carrier,
			AnnualKWh: it.AnnualKWh,
			UnitPrice: it.UnitPrice,
		}
	}
	return input.NormalizeLineItems(rows)
}
