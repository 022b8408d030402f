package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/ledgerkit-dev/ledgerkit/internal/model"
)

//go:embed schema.sql
var schema string

const dateLayout = "2006-01-02"

// SQLite is a Store backed by a single sqlite database file.
type SQLite struct {
	db *sql.DB
}

// Open opens or creates the database at the given path and applies the
// schema.
func Open(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("execute schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) LoadTransactions() ([]model.Transaction, error) {
	return s.loadTransactions(false)
}

func (s *SQLite) SaveTransactions(txns []model.Transaction) error {
	return s.saveTransactions(txns, false)
}

func (s *SQLite) LoadStaged() ([]model.Transaction, error) {
	return s.loadTransactions(true)
}

func (s *SQLite) SaveStaged(txns []model.Transaction) error {
	return s.saveTransactions(txns, true)
}

func (s *SQLite) loadTransactions(staged bool) ([]model.Transaction, error) {
	rows, err := s.db.Query(`
		SELECT id, date, month, description, amount, category,
		       account, bank_source, note, excluded, is_income
		FROM transactions
		WHERE staged = ?
		ORDER BY date, id
	`, boolInt(staged))
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txns []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var date, amount string
		var excluded, isIncome int
		if err := rows.Scan(&t.ID, &date, &t.Month, &t.Description, &amount,
			&t.Category, &t.Account, &t.BankSource, &t.Note, &excluded, &isIncome); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t.Date, err = time.ParseInLocation(dateLayout, date, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parse date %q: %w", date, err)
		}
		t.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parse amount %q: %w", amount, err)
		}
		t.Excluded = excluded != 0
		t.IsIncome = isIncome != 0
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

// saveTransactions replaces one partition (history or staging) atomically.
func (s *SQLite) saveTransactions(txns []model.Transaction, staged bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM transactions WHERE staged = ?`, boolInt(staged)); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO transactions (
			id, date, month, description, amount, category,
			account, bank_source, note, excluded, is_income, staged
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range txns {
		if _, err := stmt.Exec(t.ID, t.Date.Format(dateLayout), t.Month,
			t.Description, t.Amount.String(), t.Category,
			t.Account, t.BankSource, t.Note,
			boolInt(t.Excluded), boolInt(t.IsIncome), boolInt(staged)); err != nil {
			return fmt.Errorf("insert transaction %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLite) LoadMerchantRules() (model.MerchantRules, error) {
	rows, err := s.db.Query(`SELECT merchant_key, category FROM merchant_rules`)
	if err != nil {
		return nil, fmt.Errorf("query merchant rules: %w", err)
	}
	defer rows.Close()

	rules := make(model.MerchantRules)
	for rows.Next() {
		var key, category string
		if err := rows.Scan(&key, &category); err != nil {
			return nil, fmt.Errorf("scan merchant rule: %w", err)
		}
		rules[key] = category
	}
	return rules, rows.Err()
}

func (s *SQLite) SaveMerchantRules(rules model.MerchantRules) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM merchant_rules`); err != nil {
		return fmt.Errorf("clear merchant rules: %w", err)
	}
	for key, category := range rules {
		if _, err := tx.Exec(`INSERT INTO merchant_rules (merchant_key, category) VALUES (?, ?)`,
			key, category); err != nil {
			return fmt.Errorf("insert merchant rule %q: %w", key, err)
		}
	}
	return tx.Commit()
}

func (s *SQLite) LoadCategories() ([]model.Category, error) {
	rows, err := s.db.Query(`
		SELECT id, name, color, exclude_from_budget, is_income, built_in, legacy
		FROM categories
		ORDER BY rowid
	`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var cats []model.Category
	for rows.Next() {
		var c model.Category
		var exclude, isIncome, builtIn, legacy int
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &exclude, &isIncome, &builtIn, &legacy); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		c.ExcludeFromBudget = exclude != 0
		c.IsIncome = isIncome != 0
		c.BuiltIn = builtIn != 0
		c.Legacy = legacy != 0
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (s *SQLite) SaveCategories(cats []model.Category) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM categories`); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}
	for _, c := range cats {
		if _, err := tx.Exec(`
			INSERT INTO categories (id, name, color, exclude_from_budget, is_income, built_in, legacy)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, c.ID, c.Name, c.Color, boolInt(c.ExcludeFromBudget), boolInt(c.IsIncome),
			boolInt(c.BuiltIn), boolInt(c.Legacy)); err != nil {
			return fmt.Errorf("insert category %s: %w", c.ID, err)
		}
	}
	return tx.Commit()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
