package word

import (
	"strings"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
)

const (
	maxWordLen = 512
	maxLangLen = 16
)

// AddWordInput holds parameters for adding a word.
// Translation may be empty when a translation provider is configured;
// the service fills it in.
type AddWordInput struct {
	OriginalWord   string
	Translation    string
	SourceLanguage string
	TargetLanguage string
	LanguageCode   string
	AudioURL       *string
}

// Validate validates the add input.
func (i AddWordInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.OriginalWord) == "" {
		errs = append(errs, domain.FieldError{Field: "original_word", Message: "required"})
	} else if len(i.OriginalWord) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "original_word", Message: "too long"})
	}

	if len(i.Translation) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "too long"})
	}

	if strings.TrimSpace(i.SourceLanguage) == "" {
		errs = append(errs, domain.FieldError{Field: "source_language", Message: "required"})
	} else if len(i.SourceLanguage) > maxLangLen {
		errs = append(errs, domain.FieldError{Field: "source_language", Message: "too long"})
	}

	if strings.TrimSpace(i.TargetLanguage) == "" {
		errs = append(errs, domain.FieldError{Field: "target_language", Message: "required"})
	} else if len(i.TargetLanguage) > maxLangLen {
		errs = append(errs, domain.FieldError{Field: "target_language", Message: "too long"})
	}

	if len(i.LanguageCode) > maxLangLen {
		errs = append(errs, domain.FieldError{Field: "language_code", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateWordInput holds parameters for editing a word's texts.
type UpdateWordInput struct {
	WordID       uuid.UUID
	OriginalWord string
	Translation  string
}

// Validate validates the update input.
func (i UpdateWordInput) Validate() error {
	var errs []domain.FieldError

	if i.WordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "word_id", Message: "required"})
	}
	if strings.TrimSpace(i.OriginalWord) == "" {
		errs = append(errs, domain.FieldError{Field: "original_word", Message: "required"})
	} else if len(i.OriginalWord) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "original_word", Message: "too long"})
	}
	if strings.TrimSpace(i.Translation) == "" {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "required"})
	} else if len(i.Translation) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "translation", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TranslateInput holds parameters for a standalone translation request.
type TranslateInput struct {
	Text           string
	SourceLanguage string
	TargetLanguage string
}

// Validate validates the translate input.
func (i TranslateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if len(i.Text) > maxWordLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}
	if strings.TrimSpace(i.SourceLanguage) == "" {
		errs = append(errs, domain.FieldError{Field: "source_language", Message: "required"})
	}
	if strings.TrimSpace(i.TargetLanguage) == "" {
		errs = append(errs, domain.FieldError{Field: "target_language", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
