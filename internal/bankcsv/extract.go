package bankcsv

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Row is the dialect-independent output of row extraction: the raw
// description and date string plus the amount already normalized to the
// canonical sign convention (expense negative, income positive).
type Row struct {
	Description string
	DateRaw     string
	Amount      decimal.Decimal
}

// extractFunc maps a split data row to a Row under one dialect's column
// semantics. Missing cells yield empty strings and zero amounts; the parse
// loop skips those rows.
type extractFunc func(h header, cols []string) (Row, error)

// extractRow runs the dialect's extractor, converting a panic into an
// ordinary row-level error so one bad row never aborts the file.
func extractRow(d Dialect, h header, cols []string) (row Row, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("extracting row: %v", r)
		}
	}()
	return d.extractor()(h, cols)
}
