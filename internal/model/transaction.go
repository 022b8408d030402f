package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UncategorizedID is the sentinel category assigned before the engine runs.
const UncategorizedID = "Uncategorized"

// Transaction is the canonical record produced by the import pipeline.
type Transaction struct {
	ID          string
	Date        time.Time // calendar date, local midnight
	Month       string    // "YYYY-MM", derived from Date at build time
	Description string
	Amount      decimal.Decimal // negative = expense, positive = income
	Category    string          // category ID
	Account     string          // free-text label supplied at upload
	BankSource  string          // detected dialect name, diagnostic only
	Note        string
	Excluded    bool // omitted from aggregates, retained in storage
	IsIncome    bool
}

// MonthBucket formats a date as the zero-padded "YYYY-MM" bucket.
func MonthBucket(date time.Time) string {
	return date.Format("2006-01")
}
