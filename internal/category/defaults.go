package category

import "github.com/ledgerkit-dev/ledgerkit/internal/model"

// Builtins returns the built-in category set. IDs are stable names, never
// the transient timestamp form older app versions generated.
func Builtins() []model.Category {
	return []model.Category{
		// Income: excluded from budget, shown on the income side.
		{ID: "W2 Payroll", Name: "W2 Payroll", Color: "#2dd4a7", ExcludeFromBudget: true, IsIncome: true, BuiltIn: true},
		{ID: "Side Income", Name: "Side Income", Color: "#10b981", ExcludeFromBudget: true, IsIncome: true, BuiltIn: true},
		{ID: "Transfer Received", Name: "Transfer Received", Color: "#6ee7b7", ExcludeFromBudget: true, IsIncome: true, BuiltIn: true},
		{ID: "Interest/Dividends", Name: "Interest/Dividends", Color: "#a7f3d0", ExcludeFromBudget: true, IsIncome: true, BuiltIn: true},
		// "Income" stays as a legacy alias so old saved transactions resolve.
		{ID: "Income", Name: "Income", Color: "#2dd4a7", ExcludeFromBudget: true, IsIncome: true, BuiltIn: true},
		// Expenses.
		{ID: "Housing", Name: "Housing", Color: "#e8c547", BuiltIn: true},
		{ID: "Food", Name: "Food", Color: "#f4845f", BuiltIn: true},
		{ID: "Transport", Name: "Transport", Color: "#5f9cf4", BuiltIn: true},
		{ID: "Healthcare", Name: "Healthcare", Color: "#7ed9a8", BuiltIn: true},
		{ID: "Shopping", Name: "Shopping", Color: "#c47ef4", BuiltIn: true},
		{ID: "Entertainment", Name: "Entertainment", Color: "#f47eb4", BuiltIn: true},
		{ID: "Phone/Internet", Name: "Phone/Internet", Color: "#60a5fa", BuiltIn: true},
		{ID: "Insurance", Name: "Insurance", Color: "#fb923c", BuiltIn: true},
		{ID: "Education", Name: "Education", Color: "#a78bfa", BuiltIn: true},
		{ID: "Giving", Name: "Giving", Color: "#f472b6", BuiltIn: true},
		// Custom categories promoted to built-ins from real spending history.
		{ID: "Coffee / Tea", Name: "Coffee / Tea", Color: "#a78bfa", BuiltIn: true},
		{ID: "Landscape", Name: "Landscape", Color: "#10b981", BuiltIn: true},
		{ID: "Utilities", Name: "Utilities", Color: "#e8c547", BuiltIn: true},
		{ID: "Vacation", Name: "Vacation", Color: "#f59e0b", BuiltIn: true},
		// Pass-through: excluded from budget totals.
		{ID: "Investments", Name: "Investments", Color: "#34d399", ExcludeFromBudget: true, BuiltIn: true},
		{ID: "Savings Transfer", Name: "Savings Transfer", Color: "#4ecdc4", ExcludeFromBudget: true, BuiltIn: true},
		{ID: "CC Payment", Name: "CC Payment", Color: "#64748b", ExcludeFromBudget: true, BuiltIn: true},
		{ID: "Other", Name: "Other", Color: "#94a3b8", BuiltIn: true},
	}
}

// LegacyAliases is the frozen alias table for timestamp-based category IDs
// written by older app versions. Hidden from management UIs but resolvable
// forever so historical transactions keep rendering correctly.
func LegacyAliases() []model.Category {
	return []model.Category{
		{ID: "Coffee-/-Tea-1771459649923", Name: "Coffee / Tea", Color: "#a78bfa", Legacy: true},
		{ID: "Landscape-1771459661164", Name: "Landscape", Color: "#10b981", Legacy: true},
		{ID: "Utilities-1771459840619", Name: "Utilities", Color: "#e8c547", Legacy: true},
		{ID: "Vacation-1771462459054", Name: "Vacation", Color: "#f59e0b", Legacy: true},
	}
}

// ForcedFlags corrects stale flags persisted by older app versions.
type ForcedFlags struct {
	IncomeIDs   []string
	ExcludedIDs []string
}

// DefaultForcedFlags lists the category IDs whose IsIncome and
// ExcludeFromBudget flags are always forced true at load.
func DefaultForcedFlags() ForcedFlags {
	return ForcedFlags{
		IncomeIDs: []string{
			"W2 Payroll", "Side Income", "Transfer Received", "Interest/Dividends", "Income",
		},
		ExcludedIDs: []string{
			"W2 Payroll", "Side Income", "Transfer Received", "Interest/Dividends", "Income",
			"Investments", "Savings Transfer", "CC Payment",
		},
	}
}
