package bankcsv

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerkit-dev/ledgerkit/internal/money"
)

// The generic dialect locates columns by best-effort substring search on
// header names. When no single signed amount column exists it synthesizes
// one from separate debit/credit columns (credit wins when both are set).
func extractGeneric(h header, cols []string) (Row, error) {
	dateIdx := h.find("date")
	descIdx := h.find("desc", "memo", "name", "payee")
	amtIdx := -1
	if i := h.index("amount"); i >= 0 {
		amtIdx = i
	} else if i := h.index("transaction amount"); i >= 0 {
		amtIdx = i
	}
	debitIdx := h.find("debit", "withdrawal")
	creditIdx := h.find("credit", "deposit")

	amt := decimal.Zero
	switch {
	case amtIdx >= 0:
		amt = money.ParseAmount(cell(cols, amtIdx))
	case debitIdx >= 0 || creditIdx >= 0:
		debit := money.ParseAmount(cell(cols, debitIdx))
		credit := money.ParseAmount(cell(cols, creditIdx))
		amt = debit.Neg()
		if credit.IsPositive() {
			amt = credit
		}
	}

	desc := cell(cols, 1)
	if descIdx >= 0 {
		desc = cell(cols, descIdx)
	}
	return Row{
		Description: desc,
		DateRaw:     cell(cols, dateIdx),
		Amount:      amt,
	}, nil
}
