package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a user-owned vocabulary entry: one original/translation pair
// bucketed into a per-language deck.
type Word struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	OriginalWord   string
	Translation    string
	SourceLanguage LanguageCode
	TargetLanguage LanguageCode
	// LanguageCode groups the word into a deck. Legacy rows predate the
	// column; the store adapter resolves those to TargetLanguage before a
	// Word reaches this layer, so core logic can rely on it being set.
	LanguageCode LanguageCode
	AudioURL     *string
	CreatedAt    time.Time
}

// ResolveLanguageCode returns the canonical grouping code for a word,
// falling back to the legacy target-language field when the grouping
// column is empty.
func ResolveLanguageCode(languageCode, targetLanguage LanguageCode) LanguageCode {
	if languageCode != "" {
		return languageCode
	}
	return targetLanguage
}

// LanguageCount is one row of the per-language deck summary.
type LanguageCount struct {
	LanguageCode LanguageCode
	Count        int
}
