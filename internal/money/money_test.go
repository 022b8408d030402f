package money

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAmount_CurrencySymbols(t *testing.T) {
	assert.Equal(t, "1234.56", ParseAmount("$1,234.56").StringFixed(2))
	assert.Equal(t, "99.00", ParseAmount("£99").StringFixed(2))
	assert.Equal(t, "10.50", ParseAmount(`"€10.50"`).StringFixed(2))
}

func TestParseAmount_Parentheses(t *testing.T) {
	assert.Equal(t, "-123.45", ParseAmount("(123.45)").StringFixed(2))
	assert.Equal(t, "-1000.00", ParseAmount("($1,000.00)").StringFixed(2))
}

func TestParseAmount_Placeholders(t *testing.T) {
	assert.True(t, ParseAmount("-").IsZero())
	assert.True(t, ParseAmount("*").IsZero())
	assert.True(t, ParseAmount("").IsZero())
	assert.True(t, ParseAmount("   ").IsZero())
}

func TestParseAmount_Unparsable(t *testing.T) {
	assert.True(t, ParseAmount("N/A").IsZero())
	assert.True(t, ParseAmount("pending").IsZero())
}

func TestParseAmount_PlainNegative(t *testing.T) {
	assert.Equal(t, "-5.75", ParseAmount("-5.75").StringFixed(2))
}

func TestParseDate_SlashFullYear(t *testing.T) {
	d, ok := ParseDate("3/4/2024")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.Month(3), d.Month())
	assert.Equal(t, 4, d.Day())
}

func TestParseDate_SlashShortYear(t *testing.T) {
	d, ok := ParseDate("3/4/24")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())

	// Years at or above 50 land in the 1900s.
	d, ok = ParseDate("3/4/99")
	assert.True(t, ok)
	assert.Equal(t, 1999, d.Year())
}

func TestParseDate_ISOLocalMidnight(t *testing.T) {
	d, ok := ParseDate("2024-03-04")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.Month(3), d.Month())
	assert.Equal(t, 4, d.Day())
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, time.Local, d.Location())
}

func TestParseDate_Quoted(t *testing.T) {
	d, ok := ParseDate(`"12/31/2023"`)
	assert.True(t, ok)
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, 31, d.Day())
}

func TestParseDate_Fallbacks(t *testing.T) {
	d, ok := ParseDate("Jan 5, 2024")
	assert.True(t, ok)
	assert.Equal(t, 5, d.Day())
	assert.Equal(t, 0, d.Hour())
}

func TestParseDate_Unparsable(t *testing.T) {
	_, ok := ParseDate("not a date")
	assert.False(t, ok)
	_, ok = ParseDate("")
	assert.False(t, ok)
}
