package domain

import "strings"

// NormalizeAnswer prepares an answer for comparison: trims leading and
// trailing whitespace and lowercases. Nothing else — punctuation and
// diacritics are significant, and inner whitespace is preserved.
func NormalizeAnswer(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// ScoreAnswer compares a submitted answer against the expected value.
// Both sides are normalized identically; comparison is exact string
// equality afterwards. No fuzzy matching, no partial credit.
func ScoreAnswer(expected, submitted string) bool {
	return NormalizeAnswer(expected) == NormalizeAnswer(submitted)
}
