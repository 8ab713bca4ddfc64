package forecast

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// The export format is the boundary contract for spreadsheet import in
// decimal-comma locales: semicolon-delimited records, numbers formatted
// with a decimal comma and no grouping separators. language.German is the
// canonical decimal-comma layout in x/text.
var exportPrinter = message.NewPrinter(language.German)

// WriteTrajectoryCSV writes one record per projection year: scenario label,
// year, total, then escalated unit price and cost per line item.
func WriteTrajectoryCSV(path, label string, t *Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeTrajectory(f, label, t)
}

func writeTrajectory(out io.Writer, label string, t *Trajectory) error {
	w := csv.NewWriter(out)
	w.Comma = ';'
	defer w.Flush()

	header := []string{"scenario", "year", "total"}
	if len(t.Rows) > 0 {
		for _, item := range t.Rows[0].Items {
			c := string(item.Carrier)
			header = append(header, c+"_unit_price", c+"_cost")
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, row := range t.Rows {
		rec := []string{
			label,
			strconv.Itoa(row.Year),
			fmtAmount(row.Total),
		}
		for _, item := range row.Items {
			rec = append(rec, fmtPrice(item.UnitPrice), fmtAmount(item.Cost))
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtAmount(x float64) string {
	return exportPrinter.Sprint(number.Decimal(x,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
		number.NoSeparator(),
	))
}

// fmtPrice keeps four fraction digits; unit prices are cents-per-kWh scale.
func fmtPrice(x float64) string {
	return exportPrinter.Sprint(number.Decimal(x,
		number.MinFractionDigits(4),
		number.MaxFractionDigits(4),
		number.NoSeparator(),
	))
}
