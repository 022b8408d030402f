package bankcsv

import (
	"regexp"
	"strings"
)

// Dialect identifies a known bank CSV layout. Each dialect carries its own
// column semantics and sign convention; the detector picks one per file and
// it is threaded explicitly through row extraction.
type Dialect int

const (
	DialectGeneric Dialect = iota
	DialectCapitalOne
	DialectChase
	DialectCiti
	DialectDiscover
	DialectWellsFargo
)

// Name returns the display name, stored on transactions as BankSource.
func (d Dialect) Name() string {
	switch d {
	case DialectCapitalOne:
		return "Capital One"
	case DialectChase:
		return "Chase"
	case DialectCiti:
		return "Citi"
	case DialectDiscover:
		return "Discover"
	case DialectWellsFargo:
		return "Wells Fargo"
	default:
		return "Generic"
	}
}

// extractor returns the row extractor for the dialect.
func (d Dialect) extractor() extractFunc {
	switch d {
	case DialectCapitalOne:
		return extractCapitalOne
	case DialectChase:
		return extractChase
	case DialectCiti:
		return extractCiti
	case DialectDiscover:
		return extractDiscover
	case DialectWellsFargo:
		return extractWellsFargo
	default:
		return extractGeneric
	}
}

var bareSlashDateRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)

// Detect inspects the first lines of a statement and selects a dialect.
// It never fails: worst case is the generic dialect, whose extractor does
// best-effort substring search on header names.
//
// A bare M/D/YYYY date in the very first cell means there is no header row
// at all (Wells Fargo exports: date, amount, unused, unused, description).
// Otherwise the first line containing a "date" token within the first ten
// lines is the header; all later lines are data.
func Detect(lines []string) (Dialect, header, int) {
	firstCell := strings.TrimSpace(strings.ReplaceAll(cell(SplitLine(lines[0]), 0), `"`, ""))
	if bareSlashDateRe.MatchString(firstCell) {
		return DialectWellsFargo, nil, 0
	}

	var h header
	dataStart := 1
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	for i := 0; i < limit; i++ {
		if strings.Contains(strings.ToLower(lines[i]), "date") {
			h = normalizeHeader(SplitLine(lines[i]))
			dataStart = i + 1
			break
		}
	}
	if h == nil {
		h = normalizeHeader(SplitLine(lines[0]))
	}

	return matchSignature(h), h, dataStart
}

// matchSignature tests the header token set against dialect signatures in a
// fixed order; the first match wins.
func matchSignature(h header) Dialect {
	joined := h.joined()
	has := func(subs ...string) bool {
		for _, s := range subs {
			if !strings.Contains(joined, s) {
				return false
			}
		}
		return true
	}

	switch {
	case has("transaction description", "transaction type", "transaction amount"):
		return DialectCapitalOne
	case has("transaction date", "post date", "memo"):
		return DialectChase
	case has("status", "debit", "credit", "member name"):
		return DialectCiti
	case has("trans. date") || has("trans", "post date", "category"):
		return DialectDiscover
	default:
		return DialectGeneric
	}
}

func normalizeHeader(cells []string) header {
	h := make(header, len(cells))
	for i, c := range cells {
		h[i] = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(c, `"`, "")))
	}
	return h
}
