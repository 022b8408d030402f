package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit-dev/ledgerkit/internal/model"
)

func newTestRegistry() *Registry {
	return NewRegistry(Reconcile(nil, Builtins(), DefaultForcedFlags()))
}

func TestResolve_Builtin(t *testing.T) {
	r := newTestRegistry()
	c := r.Resolve("Food")
	assert.Equal(t, "Food", c.Name)
	assert.Equal(t, "#f4845f", c.Color)
	assert.False(t, c.IsIncome)
}

func TestResolve_UnknownNeverFails(t *testing.T) {
	r := newTestRegistry()
	c := r.Resolve("Deleted-Custom-123")
	assert.Equal(t, "Deleted-Custom-123", c.ID)
	assert.Equal(t, "Deleted-Custom-123", c.Name)
	assert.Equal(t, "#94a3b8", c.Color)
	assert.False(t, c.ExcludeFromBudget)
	assert.False(t, c.IsIncome)
}

func TestResolve_LegacyAlias(t *testing.T) {
	r := newTestRegistry()
	c := r.Resolve("Coffee-/-Tea-1771459649923")
	assert.Equal(t, "Coffee / Tea", c.Name)
	assert.True(t, c.Legacy)
}

func TestResolve_ActiveWinsOverLegacy(t *testing.T) {
	// A loaded category with the same ID as a legacy alias takes priority.
	loaded := []model.Category{{ID: "Utilities-1771459840619", Name: "Renamed", Color: "#ffffff"}}
	r := NewRegistry(Reconcile(loaded, Builtins(), DefaultForcedFlags()))
	assert.Equal(t, "Renamed", r.Resolve("Utilities-1771459840619").Name)
}

func TestReconcile_AddsMissingBuiltins(t *testing.T) {
	loaded := []model.Category{{ID: "My Custom", Name: "My Custom", Color: "#111111"}}
	out := Reconcile(loaded, Builtins(), DefaultForcedFlags())

	ids := make(map[string]bool)
	for _, c := range out {
		ids[c.ID] = true
	}
	assert.True(t, ids["My Custom"])
	assert.True(t, ids["Food"])
	assert.True(t, ids["W2 Payroll"])
}

func TestReconcile_PrefersLoadedOverBuiltin(t *testing.T) {
	loaded := []model.Category{{ID: "Food", Name: "Groceries & Dining", Color: "#123456"}}
	out := Reconcile(loaded, Builtins(), DefaultForcedFlags())

	count := 0
	for _, c := range out {
		if c.ID == "Food" {
			count++
			assert.Equal(t, "Groceries & Dining", c.Name)
		}
	}
	assert.Equal(t, 1, count)
}

func TestReconcile_ForcesFlags(t *testing.T) {
	// Stale data from an old version: income flag lost, exclusion lost.
	loaded := []model.Category{
		{ID: "W2 Payroll", Name: "W2 Payroll", Color: "#2dd4a7"},
		{ID: "CC Payment", Name: "CC Payment", Color: "#64748b"},
	}
	out := Reconcile(loaded, Builtins(), DefaultForcedFlags())

	for _, c := range out {
		switch c.ID {
		case "W2 Payroll":
			assert.True(t, c.IsIncome)
			assert.True(t, c.ExcludeFromBudget)
		case "CC Payment":
			assert.False(t, c.IsIncome)
			assert.True(t, c.ExcludeFromBudget)
		}
	}
}

func TestReconcile_DoesNotMutateInputs(t *testing.T) {
	loaded := []model.Category{{ID: "W2 Payroll", Name: "W2 Payroll"}}
	_ = Reconcile(loaded, Builtins(), DefaultForcedFlags())
	assert.False(t, loaded[0].IsIncome, "input slice must stay untouched")
}

func TestBuiltins_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Builtins() {
		require.False(t, seen[c.ID], "duplicate builtin id %s", c.ID)
		seen[c.ID] = true
		assert.True(t, c.BuiltIn)
	}
}
