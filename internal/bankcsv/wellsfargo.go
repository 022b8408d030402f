package bankcsv

import (
	"strings"

	"github.com/ledgerkit-dev/ledgerkit/internal/money"
)

// Wells Fargo (checking & credit) exports carry no header row at all; the
// columns are positional: date, amount, unused, unused, description. Signs
// are already canonical.
func extractWellsFargo(_ header, cols []string) (Row, error) {
	desc := cell(cols, 4)
	if desc == "" {
		desc = cell(cols, 2)
	}
	return Row{
		Description: strings.TrimSpace(strings.ReplaceAll(desc, `"`, "")),
		DateRaw:     strings.TrimSpace(strings.ReplaceAll(cell(cols, 0), `"`, "")),
		Amount:      money.ParseAmount(cell(cols, 1)),
	}, nil
}
