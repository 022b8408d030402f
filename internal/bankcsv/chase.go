package bankcsv

import "github.com/ledgerkit-dev/ledgerkit/internal/money"

// Chase credit card:
//
//	Transaction Date,Post Date,Description,Category,Type,Amount,Memo
//
// Chase already reports charges negative and payments positive, so the
// amount passes through unchanged.
func extractChase(h header, cols []string) (Row, error) {
	return Row{
		Description: cell(cols, h.index("description")),
		DateRaw:     cell(cols, h.index("transaction date")),
		Amount:      money.ParseAmount(cell(cols, h.index("amount"))),
	}, nil
}
