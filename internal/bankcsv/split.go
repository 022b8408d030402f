package bankcsv

import "strings"

// SplitLine splits one CSV line into trimmed cells. Quoted cells may contain
// commas, and a doubled quote inside a quoted cell is an escaped quote.
// Unlike encoding/csv this tolerates stray quotes and ragged field counts:
// bank exports are not clean RFC 4180 and a bad cell must not abort the
// whole file.
func SplitLine(line string) []string {
	var cells []string
	var cur strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	cells = append(cells, strings.TrimSpace(cur.String()))
	return cells
}

// cell returns cols[i], or "" when the index is missing or out of range.
func cell(cols []string, i int) string {
	if i < 0 || i >= len(cols) {
		return ""
	}
	return cols[i]
}

// header is the lower-cased, trimmed header row of a statement.
type header []string

// index returns the position of an exactly matching header cell, or -1.
func (h header) index(name string) int {
	for i, c := range h {
		if c == name {
			return i
		}
	}
	return -1
}

// find returns the first header cell containing any of the substrings, or -1.
func (h header) find(substrings ...string) int {
	for i, c := range h {
		for _, sub := range substrings {
			if strings.Contains(c, sub) {
				return i
			}
		}
	}
	return -1
}

// joined returns the header cells as one comma-joined string, used by the
// dialect signature predicates.
func (h header) joined() string {
	return strings.Join(h, ",")
}
