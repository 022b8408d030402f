package ledger

import (
	"github.com/ledgerkit-dev/ledgerkit/internal/model"
)

// dedupKey is deliberately coarse: calendar date, first 40 characters of
// description, amount at two decimals. Account is ignored so re-exports of
// the same statement under a different label still collide.
func dedupKey(t model.Transaction) string {
	desc := t.Description
	if len(desc) > 40 {
		desc = desc[:40]
	}
	return t.Date.Format("2006-01-02") + "|" + desc + "|" + t.Amount.StringFixed(2)
}

// Dedup drops incoming transactions whose key already exists among stored
// ones. Incoming rows are not compared against each other, so two identical
// rows in one file both survive.
func Dedup(incoming, existing []model.Transaction) []model.Transaction {
	keys := make(map[string]bool, len(existing))
	for _, t := range existing {
		keys[dedupKey(t)] = true
	}

	var unique []model.Transaction
	for _, t := range incoming {
		if !keys[dedupKey(t)] {
			unique = append(unique, t)
		}
	}
	return unique
}
