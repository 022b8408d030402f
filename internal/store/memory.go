package store

import (
	"sort"
	"sync"

	"github.com/ledgerkit-dev/ledgerkit/internal/model"
)

// Memory is an in-process Store. It backs tests and the degraded mode the
// service falls into when the database cannot be opened.
type Memory struct {
	mu           sync.Mutex
	transactions []model.Transaction
	staged       []model.Transaction
	rules        model.MerchantRules
	categories   []model.Category
}

func NewMemory() *Memory {
	return &Memory{rules: make(model.MerchantRules)}
}

func (m *Memory) LoadTransactions() ([]model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortTxns(copyTxns(m.transactions)), nil
}

func (m *Memory) SaveTransactions(txns []model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions = copyTxns(txns)
	return nil
}

func (m *Memory) LoadStaged() ([]model.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sortTxns(copyTxns(m.staged)), nil
}

func (m *Memory) SaveStaged(txns []model.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.staged = copyTxns(txns)
	return nil
}

func (m *Memory) LoadMerchantRules() (model.MerchantRules, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rules := make(model.MerchantRules, len(m.rules))
	for k, v := range m.rules {
		rules[k] = v
	}
	return rules, nil
}

func (m *Memory) SaveMerchantRules(rules model.MerchantRules) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rules = make(model.MerchantRules, len(rules))
	for k, v := range rules {
		m.rules[k] = v
	}
	return nil
}

func (m *Memory) LoadCategories() ([]model.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Category, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

func (m *Memory) SaveCategories(cats []model.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories = make([]model.Category, len(cats))
	copy(m.categories, cats)
	return nil
}

func (m *Memory) Close() error { return nil }

func copyTxns(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	return out
}

// sortTxns matches the sqlite load order: date then id.
func sortTxns(txns []model.Transaction) []model.Transaction {
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.Before(txns[j].Date)
		}
		return txns[i].ID < txns[j].ID
	})
	return txns
}
