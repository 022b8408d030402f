package bankcsv

import (
	"fmt"
	"strings"

	"github.com/ledgerkit-dev/ledgerkit/internal/id"
	"github.com/ledgerkit-dev/ledgerkit/internal/model"
	"github.com/ledgerkit-dev/ledgerkit/internal/money"
)

// Result is the output of parsing one statement: the transactions in file
// order plus a diagnostic summary. Errors holds one "Row N: msg" string per
// row whose extraction failed; rows with unparsable dates or zero amounts
// are expected noise (header repeats, subtotal lines) and are skipped
// without comment.
type Result struct {
	Transactions []model.Transaction
	BankDetected string
	Errors       []string
}

// Parse turns raw statement text plus an account label into canonical
// transactions. Dialect detection never fails; a file from which nothing can
// be extracted simply yields an empty result.
func Parse(text, accountLabel string) Result {
	var lines []string
	for _, l := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(strings.TrimSuffix(l, "\r")) != "" {
			lines = append(lines, strings.TrimSuffix(l, "\r"))
		}
	}
	if len(lines) == 0 {
		return Result{BankDetected: "Unknown"}
	}

	dialect, headers, dataStart := Detect(lines)

	res := Result{BankDetected: dialect.Name()}
	for i := dataStart; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		cols := SplitLine(line)
		if len(cols) < 2 {
			continue
		}

		row, err := extractRow(dialect, headers, cols)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			continue
		}

		date, ok := money.ParseDate(row.DateRaw)
		if !ok || row.Amount.IsZero() {
			continue
		}

		res.Transactions = append(res.Transactions, model.Transaction{
			ID:          id.NewTransactionID(accountLabel, i),
			Date:        date,
			Month:       model.MonthBucket(date),
			Description: strings.TrimSpace(row.Description),
			Amount:      row.Amount,
			Category:    model.UncategorizedID,
			Account:     accountLabel,
			BankSource:  dialect.Name(),
		})
	}
	return res
}
