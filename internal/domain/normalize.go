package domain

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMark matches the Combining Diacritical Marks block (U+0300..U+036F).
var combiningMark = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
})

// Normalize folds an answer for comparison: lower case, accents stripped,
// hyphens turned into spaces, surrounding whitespace trimmed.
func Normalize(s string) string {
	lowered := strings.ToLower(s)

	// transform chains keep state, so one is built per call.
	stripper := transform.Chain(norm.NFD, runes.Remove(combiningMark))
	folded, _, err := transform.String(stripper, lowered)
	if err != nil {
		folded = lowered
	}

	return strings.TrimSpace(strings.ReplaceAll(folded, "-", " "))
}

// SameAnswer reports whether two free-text answers are equal after Normalize.
func SameAnswer(a, b string) bool {
	return Normalize(a) == Normalize(b)
}
