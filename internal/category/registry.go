package category

import "github.com/ledgerkit-dev/ledgerkit/internal/model"

// Registry provides category lookup with a guaranteed non-failing fallback.
// Legacy aliases are indexed first so a built-in with the same ID wins.
type Registry struct {
	categories []model.Category
	byID       map[string]model.Category
}

// NewRegistry builds a registry over a reconciled category list.
func NewRegistry(categories []model.Category) *Registry {
	byID := make(map[string]model.Category, len(categories))
	for _, c := range LegacyAliases() {
		byID[c.ID] = c
	}
	for _, c := range categories {
		byID[c.ID] = c
	}
	return &Registry{categories: categories, byID: byID}
}

// Resolve returns the category for an ID. Unknown IDs (deleted custom
// categories, imported data from elsewhere) resolve to a neutral grey
// fallback named after the ID itself, never an error.
func (r *Registry) Resolve(id string) model.Category {
	if c, ok := r.byID[id]; ok {
		return c
	}
	return model.Category{ID: id, Name: id, Color: "#94a3b8"}
}

// All returns the active category list (legacy aliases excluded).
func (r *Registry) All() []model.Category {
	return r.categories
}

// IsIncome reports whether an ID resolves to an income category.
func (r *Registry) IsIncome(id string) bool {
	return r.Resolve(id).IsIncome
}

// Reconcile merges loaded categories with the built-in set and force-corrects
// known income/excluded flags. Pure: inputs are not mutated, and it runs once
// at load so nothing patches shared state afterwards.
func Reconcile(loaded, builtins []model.Category, forced ForcedFlags) []model.Category {
	seen := make(map[string]bool, len(loaded))
	merged := make([]model.Category, 0, len(loaded)+len(builtins))
	for _, c := range loaded {
		seen[c.ID] = true
		merged = append(merged, c)
	}
	for _, c := range builtins {
		if !seen[c.ID] {
			merged = append(merged, c)
		}
	}

	income := make(map[string]bool, len(forced.IncomeIDs))
	for _, id := range forced.IncomeIDs {
		income[id] = true
	}
	excluded := make(map[string]bool, len(forced.ExcludedIDs))
	for _, id := range forced.ExcludedIDs {
		excluded[id] = true
	}

	out := make([]model.Category, len(merged))
	for i, c := range merged {
		if income[c.ID] {
			c.IsIncome = true
		}
		if excluded[c.ID] {
			c.ExcludeFromBudget = true
		}
		out[i] = c
	}
	return out
}
