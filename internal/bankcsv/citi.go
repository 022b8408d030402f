package bankcsv

import "github.com/ledgerkit-dev/ledgerkit/internal/money"

// Citi credit card:
//
//	Status,Date,Description,Debit,Credit,Member Name
//
// No signed amount column; charges land in Debit and payments in Credit.
// Only one should be nonzero per row, and credit wins if both are.
func extractCiti(h header, cols []string) (Row, error) {
	debit := money.ParseAmount(cell(cols, h.index("debit")))
	credit := money.ParseAmount(cell(cols, h.index("credit")))

	amt := debit.Neg()
	if credit.IsPositive() {
		amt = credit
	}
	return Row{
		Description: cell(cols, h.index("description")),
		DateRaw:     cell(cols, h.index("date")),
		Amount:      amt,
	}, nil
}
