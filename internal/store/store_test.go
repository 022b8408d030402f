package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkit-dev/ledgerkit/internal/model"
)

// eachStore runs the same contract test against both implementations.
func eachStore(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, NewMemory())
	})
	t.Run("sqlite", func(t *testing.T) {
		s, err := Open(filepath.Join(t.TempDir(), "ledger.db"))
		require.NoError(t, err)
		defer s.Close()
		fn(t, s)
	})
}

func sampleTxn(id string, day int, amount string) model.Transaction {
	date := time.Date(2024, time.March, day, 0, 0, 0, 0, time.Local)
	return model.Transaction{
		ID:          id,
		Date:        date,
		Month:       "2024-03",
		Description: "COFFEE SHOP " + id,
		Amount:      decimal.RequireFromString(amount),
		Category:    "Coffee/Tea",
		Account:     "checking",
		BankSource:  "Chase",
	}
}

func TestTransactionsRoundTrip(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		loaded, err := s.LoadTransactions()
		require.NoError(t, err)
		assert.Empty(t, loaded)

		a := sampleTxn("a", 2, "-4.50")
		a.Note = "morning"
		a.Excluded = true
		b := sampleTxn("b", 5, "1250.00")
		b.Category = "W2 Payroll"
		b.IsIncome = true

		require.NoError(t, s.SaveTransactions([]model.Transaction{b, a}))

		loaded, err = s.LoadTransactions()
		require.NoError(t, err)
		require.Len(t, loaded, 2)

		// Ordered by date regardless of save order.
		got := loaded[0]
		assert.Equal(t, "a", got.ID)
		assert.True(t, got.Date.Equal(a.Date))
		assert.Equal(t, "2024-03", got.Month)
		assert.Equal(t, "COFFEE SHOP a", got.Description)
		assert.True(t, got.Amount.Equal(a.Amount))
		assert.Equal(t, "Coffee/Tea", got.Category)
		assert.Equal(t, "checking", got.Account)
		assert.Equal(t, "Chase", got.BankSource)
		assert.Equal(t, "morning", got.Note)
		assert.True(t, got.Excluded)
		assert.False(t, got.IsIncome)
		assert.True(t, loaded[1].IsIncome)
	})
}

func TestSaveTransactionsReplaces(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		require.NoError(t, s.SaveTransactions([]model.Transaction{
			sampleTxn("a", 1, "-1.00"), sampleTxn("b", 2, "-2.00"),
		}))
		require.NoError(t, s.SaveTransactions([]model.Transaction{
			sampleTxn("c", 3, "-3.00"),
		}))
		loaded, err := s.LoadTransactions()
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "c", loaded[0].ID)
	})
}

func TestStagedIsSeparateFromHistory(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		require.NoError(t, s.SaveTransactions([]model.Transaction{sampleTxn("hist", 1, "-1.00")}))
		require.NoError(t, s.SaveStaged([]model.Transaction{sampleTxn("staged", 2, "-2.00")}))

		history, err := s.LoadTransactions()
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "hist", history[0].ID)

		staged, err := s.LoadStaged()
		require.NoError(t, err)
		require.Len(t, staged, 1)
		assert.Equal(t, "staged", staged[0].ID)

		// Clearing the staging area leaves history alone.
		require.NoError(t, s.SaveStaged(nil))
		staged, err = s.LoadStaged()
		require.NoError(t, err)
		assert.Empty(t, staged)
		history, err = s.LoadTransactions()
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})
}

func TestMerchantRulesRoundTrip(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		rules, err := s.LoadMerchantRules()
		require.NoError(t, err)
		assert.Empty(t, rules)

		require.NoError(t, s.SaveMerchantRules(model.MerchantRules{
			"starbucks":  "Coffee/Tea",
			"amazon.com": "Shopping",
		}))
		rules, err = s.LoadMerchantRules()
		require.NoError(t, err)
		assert.Equal(t, model.MerchantRules{
			"starbucks":  "Coffee/Tea",
			"amazon.com": "Shopping",
		}, rules)

		require.NoError(t, s.SaveMerchantRules(model.MerchantRules{"starbucks": "Food"}))
		rules, err = s.LoadMerchantRules()
		require.NoError(t, err)
		assert.Equal(t, model.MerchantRules{"starbucks": "Food"}, rules)
	})
}

func TestCategoriesRoundTrip(t *testing.T) {
	eachStore(t, func(t *testing.T, s Store) {
		cats := []model.Category{
			{ID: "Food", Name: "Food", Color: "#f59e0b", BuiltIn: true},
			{ID: "W2 Payroll", Name: "W2 Payroll", Color: "#22c55e", IsIncome: true, ExcludeFromBudget: true, BuiltIn: true},
			{ID: "1700000000001", Name: "Old Food", Legacy: true},
		}
		require.NoError(t, s.SaveCategories(cats))

		loaded, err := s.LoadCategories()
		require.NoError(t, err)
		require.Len(t, loaded, 3)
		// Insertion order survives.
		assert.Equal(t, "Food", loaded[0].ID)
		assert.True(t, loaded[1].IsIncome)
		assert.True(t, loaded[1].ExcludeFromBudget)
		assert.True(t, loaded[2].Legacy)
	})
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.SaveTransactions([]model.Transaction{sampleTxn("a", 1, "-1.00")}))

	loaded, err := m.LoadTransactions()
	require.NoError(t, err)
	loaded[0].Category = "Mutated"

	again, err := m.LoadTransactions()
	require.NoError(t, err)
	assert.Equal(t, "Coffee/Tea", again[0].Category)
}
