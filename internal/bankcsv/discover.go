package bankcsv

import "github.com/ledgerkit-dev/ledgerkit/internal/money"

// Discover credit card:
//
//	Trans. Date,Post Date,Description,Amount,Category
//
// Discover's sign convention is inverted from ours: charges come through
// positive and payments/credits negative, so both flip.
func extractDiscover(h header, cols []string) (Row, error) {
	dateIdx := h.find("trans")
	if dateIdx < 0 {
		dateIdx = 0
	}

	amt := money.ParseAmount(cell(cols, h.index("amount")))
	if amt.IsPositive() {
		amt = amt.Neg()
	} else {
		amt = amt.Abs()
	}
	return Row{
		Description: cell(cols, h.index("description")),
		DateRaw:     cell(cols, dateIdx),
		Amount:      amt,
	}, nil
}
