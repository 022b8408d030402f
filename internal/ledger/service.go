// Package ledger orchestrates the pipeline: parse, categorize, apply stored
// merchant rules, dedup against history, merge. It owns all mutation of the
// transaction store.
package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/ledgerkit-dev/ledgerkit/internal/bankcsv"
	"github.com/ledgerkit-dev/ledgerkit/internal/categorize"
	"github.com/ledgerkit-dev/ledgerkit/internal/category"
	"github.com/ledgerkit-dev/ledgerkit/internal/model"
	"github.com/ledgerkit-dev/ledgerkit/internal/retail"
	"github.com/ledgerkit-dev/ledgerkit/internal/store"
)

var (
	// ErrNoTransactions means a parse produced nothing usable; the import is
	// rejected whole, no partial merge.
	ErrNoTransactions = errors.New("no transactions found")

	// ErrNothingStaged means MergeStaged ran with an empty staging area.
	ErrNothingStaged = errors.New("nothing staged")

	// ErrNotFound means an edit referenced an unknown transaction ID.
	ErrNotFound = errors.New("transaction not found")

	// ErrNoRetailCharges means reconciliation found no matching bank charges.
	ErrNoRetailCharges = errors.New("no matching bank charges found")
)

// ImportResult carries the diagnostic counts reported after an import.
type ImportResult struct {
	BankDetected string
	Added        int
	DupesSkipped int
	RuleHits     int
	Errors       []string
}

// Service wires the parser, the categorization engine, the category registry
// and the store together.
type Service struct {
	store  store.Store
	engine *categorize.Engine
	reg    *category.Registry
	log    zerolog.Logger
}

// New builds a Service over a store and runs the one-time load migrations:
// category reconciliation and legacy income migration.
func New(st store.Store, log zerolog.Logger) (*Service, error) {
	s := &Service{
		store:  st,
		engine: categorize.NewEngine(categorize.DefaultRuleset()),
		log:    log,
	}

	loaded, err := st.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	reconciled := category.Reconcile(loaded, category.Builtins(), category.DefaultForcedFlags())
	if err := st.SaveCategories(reconciled); err != nil {
		return nil, fmt.Errorf("save categories: %w", err)
	}
	s.reg = category.NewRegistry(reconciled)

	if err := s.migrateLegacyIncome(); err != nil {
		return nil, err
	}
	return s, nil
}

// Categories exposes the reconciled registry for display commands.
func (s *Service) Categories() *category.Registry {
	return s.reg
}

// migrateLegacyIncome rewrites transactions still on the pre-subcategory
// "Income" category. Saves only when something actually changed.
func (s *Service) migrateLegacyIncome() error {
	txns, err := s.store.LoadTransactions()
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}

	legacy := 0
	for _, t := range txns {
		if t.Category == "Income" {
			legacy++
		}
	}
	if legacy == 0 {
		return nil
	}

	migrated := s.engine.MigrateLegacyIncome(txns)
	if err := s.store.SaveTransactions(migrated); err != nil {
		return fmt.Errorf("save migrated transactions: %w", err)
	}
	s.log.Info().Int("migrated", legacy).Msg("legacy income categories migrated")
	return nil
}

// Import runs the full pipeline on one CSV and merges the survivors into
// history. An import that yields zero transactions fails without touching
// the store.
func (s *Service) Import(text, account string) (ImportResult, error) {
	parsed := bankcsv.Parse(text, account)
	res := ImportResult{BankDetected: parsed.BankDetected, Errors: parsed.Errors}
	if len(parsed.Transactions) == 0 {
		return res, ErrNoTransactions
	}

	txns := s.engine.Apply(parsed.Transactions)
	res.RuleHits, _ = s.applyMerchantRules(txns)

	existing, err := s.store.LoadTransactions()
	if err != nil {
		return res, fmt.Errorf("load transactions: %w", err)
	}
	unique := Dedup(txns, existing)
	res.DupesSkipped = len(txns) - len(unique)
	res.Added = len(unique)

	if err := s.store.SaveTransactions(append(existing, unique...)); err != nil {
		return res, fmt.Errorf("save transactions: %w", err)
	}

	s.log.Info().
		Str("bank", res.BankDetected).
		Str("account", account).
		Int("added", res.Added).
		Int("dupes_skipped", res.DupesSkipped).
		Int("rule_hits", res.RuleHits).
		Int("row_errors", len(res.Errors)).
		Msg("import complete")
	return res, nil
}

// applyMerchantRules overrides engine categories with stored rules. Rules
// always win over automatic categorization but only touch new imports, never
// stored history. Returns the number of transactions a rule changed.
func (s *Service) applyMerchantRules(txns []model.Transaction) (int, error) {
	rules, err := s.store.LoadMerchantRules()
	if err != nil {
		s.log.Warn().Err(err).Msg("merchant rules unavailable, engine categories kept")
		return 0, err
	}

	hits := 0
	for i, t := range txns {
		cat, ok := rules[categorize.MerchantKey(t.Description)]
		if !ok || cat == t.Category {
			continue
		}
		txns[i].Category = cat
		txns[i].IsIncome = s.reg.IsIncome(cat)
		hits++
	}
	return hits, nil
}

// StageMonth parses a CSV into the staging area under the "New Month" label
// without merging it into history. A later MergeStaged commits it.
func (s *Service) StageMonth(text string) (ImportResult, error) {
	parsed := bankcsv.Parse(text, "New Month")
	res := ImportResult{BankDetected: parsed.BankDetected, Errors: parsed.Errors}
	if len(parsed.Transactions) == 0 {
		return res, ErrNoTransactions
	}

	txns := s.engine.Apply(parsed.Transactions)
	if err := s.store.SaveStaged(txns); err != nil {
		return res, fmt.Errorf("save staged: %w", err)
	}
	res.Added = len(txns)
	return res, nil
}

// Staged returns the current staging batch.
func (s *Service) Staged() ([]model.Transaction, error) {
	return s.store.LoadStaged()
}

// MergeStaged commits the staging batch into history with the same dedup
// rules as a direct import, then clears the staging area.
func (s *Service) MergeStaged() (added, skipped int, err error) {
	staged, err := s.store.LoadStaged()
	if err != nil {
		return 0, 0, fmt.Errorf("load staged: %w", err)
	}
	if len(staged) == 0 {
		return 0, 0, ErrNothingStaged
	}

	existing, err := s.store.LoadTransactions()
	if err != nil {
		return 0, 0, fmt.Errorf("load transactions: %w", err)
	}
	unique := Dedup(staged, existing)

	if err := s.store.SaveTransactions(append(existing, unique...)); err != nil {
		return 0, 0, fmt.Errorf("save transactions: %w", err)
	}
	if err := s.store.SaveStaged(nil); err != nil {
		return 0, 0, fmt.Errorf("clear staged: %w", err)
	}
	return len(unique), len(staged) - len(unique), nil
}

// Transactions returns stored history.
func (s *Service) Transactions() ([]model.Transaction, error) {
	return s.store.LoadTransactions()
}

// Edit is one manual change to a stored transaction.
type Edit struct {
	ID         string
	Category   string
	Note       string
	Excluded   bool
	ApplyToAll bool
}

// ApplyEdit reassigns a transaction's category, optionally propagating the
// category to every transaction sharing its merchant key and persisting the
// mapping as a rule for future imports. Note and excluded only ever touch
// the edited transaction. Returns the affected count, edited one included.
func (s *Service) ApplyEdit(e Edit) (int, error) {
	txns, err := s.store.LoadTransactions()
	if err != nil {
		return 0, fmt.Errorf("load transactions: %w", err)
	}

	idx := -1
	for i, t := range txns {
		if t.ID == e.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, ErrNotFound
	}

	isIncome := s.reg.IsIncome(e.Category)
	affected := 0
	mKey := categorize.MerchantKey(txns[idx].Description)

	if e.ApplyToAll && mKey != "" {
		for i, t := range txns {
			if t.ID == e.ID || categorize.MerchantKey(t.Description) == mKey {
				txns[i].Category = e.Category
				txns[i].IsIncome = isIncome
				affected++
			}
		}
		txns[idx].Note = e.Note
		txns[idx].Excluded = e.Excluded

		rules, err := s.store.LoadMerchantRules()
		if err != nil {
			return 0, fmt.Errorf("load merchant rules: %w", err)
		}
		rules[mKey] = e.Category
		if err := s.store.SaveMerchantRules(rules); err != nil {
			return 0, fmt.Errorf("save merchant rules: %w", err)
		}
		s.log.Info().Str("merchant_key", mKey).Str("category", e.Category).Msg("merchant rule saved")
	} else {
		txns[idx].Category = e.Category
		txns[idx].IsIncome = isIncome
		txns[idx].Note = e.Note
		txns[idx].Excluded = e.Excluded
		affected = 1
	}

	if err := s.store.SaveTransactions(txns); err != nil {
		return 0, fmt.Errorf("save transactions: %w", err)
	}
	return affected, nil
}

// MerchantMatches returns the merchant key of a stored transaction and how
// many other transactions share it, for the "apply to all" prompt.
func (s *Service) MerchantMatches(id string) (string, int, error) {
	txns, err := s.store.LoadTransactions()
	if err != nil {
		return "", 0, fmt.Errorf("load transactions: %w", err)
	}

	var key string
	found := false
	for _, t := range txns {
		if t.ID == id {
			key = categorize.MerchantKey(t.Description)
			found = true
			break
		}
	}
	if !found {
		return "", 0, ErrNotFound
	}

	count := 0
	for _, t := range txns {
		if t.ID != id && categorize.MerchantKey(t.Description) == key {
			count++
		}
	}
	return key, count, nil
}

// ReconcileResult reports a Walmart reconciliation run.
type ReconcileResult struct {
	Updated  int
	Dominant string
}

var twenty = decimal.NewFromInt(20)

// ReconcileWalmart re-points Walmart/Target bank charges at the dominant
// non-Transport subcategory of the parsed order items. A Walmart charge with
// non-integer magnitude over $20 is assumed to be a pump charge and goes to
// Transport instead. Heuristic, kept exactly as observed to work.
func (s *Service) ReconcileWalmart(items []model.OrderItem) (ReconcileResult, error) {
	summary := retail.SummarizeWalmart(items)

	split := make(map[string]decimal.Decimal)
	for _, b := range summary.ByCategory {
		split[b.LedgerCategory] = split[b.LedgerCategory].Add(b.Total)
	}

	dominant := "Food"
	best := decimal.Zero
	for cat, total := range split {
		if cat == "Transport" {
			continue
		}
		if total.GreaterThan(best) || (total.Equal(best) && cat < dominant) {
			dominant, best = cat, total
		}
	}

	txns, err := s.store.LoadTransactions()
	if err != nil {
		return ReconcileResult{}, fmt.Errorf("load transactions: %w", err)
	}

	updated := 0
	for i, t := range txns {
		d := strings.ToLower(t.Description)
		isRetailCharge := strings.Contains(d, "wal-mart") || strings.Contains(d, "walmart") || strings.Contains(d, "target")
		if !isRetailCharge || t.Excluded {
			continue
		}

		if strings.Contains(d, "walmart") && t.Amount.Abs().GreaterThan(twenty) && !t.Amount.IsInteger() {
			txns[i].Category = "Transport"
			txns[i].Note = appendNote(t.Note, "Walmart gas (auto-reconciled)")
		} else {
			txns[i].Category = dominant
			txns[i].Note = appendNote(t.Note, "Walmart order reconciled")
		}
		updated++
	}
	if updated == 0 {
		return ReconcileResult{Dominant: dominant}, ErrNoRetailCharges
	}

	if err := s.store.SaveTransactions(txns); err != nil {
		return ReconcileResult{}, fmt.Errorf("save transactions: %w", err)
	}
	return ReconcileResult{Updated: updated, Dominant: dominant}, nil
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + " · " + note
}
