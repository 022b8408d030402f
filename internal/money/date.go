package money

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	slashDateRe      = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
	slashShortDateRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2}$`)
	isoDateRe        = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Layouts tried when a cell matches none of the common bank date shapes.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"01/02/2006 15:04",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
}

// ParseDate converts a raw CSV date cell into a local-midnight calendar
// date. Recognized shapes: M/D/YYYY, M/D/YY (years below 50 map to the
// 2000s), and ISO YYYY-MM-DD. ISO dates are interpreted in local time, not
// UTC, to avoid off-by-one-day shifts. The second return is false when the
// cell is unparsable; callers skip such rows.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))
	if s == "" {
		return time.Time{}, false
	}

	switch {
	case slashDateRe.MatchString(s):
		m, d, y := splitSlashDate(s)
		return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), true
	case slashShortDateRe.MatchString(s):
		m, d, y := splitSlashDate(s)
		if y < 50 {
			y += 2000
		} else {
			y += 1900
		}
		return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), true
	case isoDateRe.MatchString(s):
		t, err := time.ParseInLocation("2006-01-02", s, time.Local)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return midnight(t), true
		}
	}
	return time.Time{}, false
}

func splitSlashDate(s string) (m, d, y int) {
	parts := strings.SplitN(s, "/", 3)
	m, _ = strconv.Atoi(parts[0])
	d, _ = strconv.Atoi(parts[1])
	y, _ = strconv.Atoi(parts[2])
	return m, d, y
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
