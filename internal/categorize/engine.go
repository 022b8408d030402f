package categorize

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerkit-dev/ledgerkit/internal/model"
)

// Engine resolves a category for a transaction in three ordered tiers:
// exact merchant substrings, income keyword groups (positive amounts only,
// after a savings-transfer exclusion), then expense keyword groups. First
// match wins at every tier; nothing matching falls to the default.
type Engine struct {
	rules  Ruleset
	income map[string]bool
}

// NewEngine builds an engine over an injected ruleset.
func NewEngine(rules Ruleset) *Engine {
	income := make(map[string]bool, len(rules.IncomeCategoryIDs))
	for _, id := range rules.IncomeCategoryIDs {
		income[id] = true
	}
	return &Engine{rules: rules, income: income}
}

// Categorize returns the category for a description/amount pair.
func (e *Engine) Categorize(description string, amount decimal.Decimal) string {
	desc := strings.ToLower(description)

	for _, entry := range e.rules.MerchantMap {
		if strings.Contains(desc, entry.Substring) {
			return entry.Category
		}
	}

	if amount.IsPositive() {
		if containsAny(desc, e.rules.SavingsTransferKeywords) {
			return e.rules.SavingsTransferCategory
		}
		if cat, ok := firstMatch(desc, e.rules.IncomeRules); ok {
			return cat
		}
	}

	if cat, ok := firstMatch(desc, e.rules.ExpenseRules); ok {
		return cat
	}
	return e.rules.DefaultCategory
}

// IsIncomeCategory reports whether a category ID counts as income.
func (e *Engine) IsIncomeCategory(id string) bool {
	return e.income[id]
}

// Apply categorizes every transaction and derives its IsIncome flag.
func (e *Engine) Apply(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, t := range txns {
		t.Category = e.Categorize(t.Description, t.Amount)
		t.IsIncome = e.income[t.Category]
		out[i] = t
	}
	return out
}

// MigrateLegacyIncome rewrites transactions still on the old generic
// "Income" category to a specific income subcategory by keyword, defaulting
// to W2 Payroll as the most common income type. Run once on load to fix
// data saved before subcategory support existed.
func (e *Engine) MigrateLegacyIncome(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	for i, t := range txns {
		if t.Category == "Income" {
			desc := strings.ToLower(t.Description)
			if cat, ok := firstMatch(desc, e.rules.IncomeRules); ok {
				t.Category = cat
			} else {
				t.Category = "W2 Payroll"
			}
			t.IsIncome = true
		}
		out[i] = t
	}
	return out
}

// firstMatch scans ordered keyword groups and returns the category of the
// first group with a keyword contained in desc. All rule tiers share this
// one helper so tie-break semantics live in a single place.
func firstMatch(desc string, rules []KeywordRule) (string, bool) {
	for _, r := range rules {
		if containsAny(desc, r.Keywords) {
			return r.Category, true
		}
	}
	return "", false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
