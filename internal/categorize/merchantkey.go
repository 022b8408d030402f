package categorize

import (
	"regexp"
	"strings"
)

var (
	longDigitRunRe  = regexp.MustCompile(`\b\d{4,}\b`)
	trailingStateRe = regexp.MustCompile(`\b[A-Z]{2}$`)
	punctRe         = regexp.MustCompile(`\*+|[#@]`)
	spaceRunRe      = regexp.MustCompile(`\s+`)
)

// MerchantKey derives a normalized merchant fingerprint from a transaction
// description: reference numbers (4+ digit runs), a trailing state
// abbreviation, and asterisk/hash/at noise are stripped, then the first up
// to three tokens longer than one character are lower-cased and joined.
// The transform must stay deterministic: it indexes the merchant rule
// store and finds matching transactions at edit time, so the same
// description must always produce the same key.
func MerchantKey(description string) string {
	if description == "" {
		return ""
	}
	s := longDigitRunRe.ReplaceAllString(description, "")
	s = punctRe.ReplaceAllString(s, " ")
	s = spaceRunRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	s = trailingStateRe.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)

	var words []string
	for _, w := range strings.Split(s, " ") {
		if len(w) > 1 {
			words = append(words, w)
		}
		if len(words) == 3 {
			break
		}
	}
	return strings.ToLower(strings.Join(words, " "))
}
