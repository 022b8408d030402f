package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a raw CSV money cell into a decimal value.
// Currency symbols, whitespace and embedded quotes are stripped, and a
// parenthesized value reads as negative (accounting convention). Bare "-",
// "*", empty cells and anything unparsable come back as zero; bank exports
// are full of placeholder and subtotal cells, so this never fails.
func ParseAmount(raw string) decimal.Decimal {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch r {
		case '$', '£', '€', '"', ' ', '\t':
		default:
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" || s == "-" || s == "*" {
		return decimal.Zero
	}

	negative := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	s = strings.NewReplacer("(", "", ")", "", ",", "").Replace(s)

	val, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if negative {
		return val.Neg()
	}
	return val
}
