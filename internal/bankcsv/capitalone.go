package bankcsv

import (
	"strings"

	"github.com/ledgerkit-dev/ledgerkit/internal/money"
)

// Capital One (checking & savings):
//
//	Account Number,Transaction Date,Transaction Amount,Transaction Type,Transaction Description,Balance
//
// The amount column is always positive; a separate type column says whether
// the row is a debit or a credit, so debits must be forced negative.
func extractCapitalOne(h header, cols []string) (Row, error) {
	amt := money.ParseAmount(cell(cols, h.index("transaction amount")))
	txType := strings.ToLower(strings.TrimSpace(cell(cols, h.index("transaction type"))))
	if txType == "debit" {
		amt = amt.Abs().Neg()
	} else {
		amt = amt.Abs()
	}
	return Row{
		Description: cell(cols, h.index("transaction description")),
		DateRaw:     cell(cols, h.index("transaction date")),
		Amount:      amt,
	}, nil
}
