// Package store persists ledger state: transaction history, a staging area
// for not-yet-committed imports, merchant rules, and the category list.
package store

import "github.com/ledgerkit-dev/ledgerkit/internal/model"

// Store is the persistence boundary. Save calls replace the whole named
// collection; the ledger service owns merging and always works from a full
// in-memory copy.
type Store interface {
	LoadTransactions() ([]model.Transaction, error)
	SaveTransactions([]model.Transaction) error

	// Staged transactions are parsed but not yet merged into history.
	LoadStaged() ([]model.Transaction, error)
	SaveStaged([]model.Transaction) error

	LoadMerchantRules() (model.MerchantRules, error)
	SaveMerchantRules(model.MerchantRules) error

	LoadCategories() ([]model.Category, error)
	SaveCategories([]model.Category) error

	Close() error
}
