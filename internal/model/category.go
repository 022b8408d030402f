package model

// Category is a budget category definition.
type Category struct {
	ID                string
	Name              string
	Color             string
	ExcludeFromBudget bool
	IsIncome          bool
	BuiltIn           bool // protected from deletion
	Legacy            bool // alias kept only so old transactions resolve
}

// MerchantRules maps a merchant key to a category ID. Created by user
// bulk-reclassification; last write wins, never auto-deleted.
type MerchantRules map[string]string
