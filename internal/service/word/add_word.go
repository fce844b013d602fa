package word

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
	"github.com/wordwell/backend/pkg/ctxutil"
)

// AddWord creates a new vocabulary entry for the current user.
// When the translation is empty and a provider is configured, the
// translation is produced automatically; without a provider an empty
// translation is a validation error.
func (s *Service) AddWord(ctx context.Context, input AddWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	original := strings.TrimSpace(input.OriginalWord)
	translation := strings.TrimSpace(input.Translation)

	if translation == "" {
		if s.translate == nil {
			return nil, domain.NewValidationError("translation", "required (no translation provider configured)")
		}
		translated, err := s.translate.Translate(ctx, original, input.SourceLanguage, input.TargetLanguage)
		if err != nil {
			return nil, fmt.Errorf("translate %q: %w", original, err)
		}
		translation = translated
	}

	code := domain.ResolveLanguageCode(strings.TrimSpace(input.LanguageCode), strings.TrimSpace(input.TargetLanguage))

	created, err := s.words.Create(ctx, &domain.Word{
		ID:             uuid.New(),
		UserID:         userID,
		OriginalWord:   original,
		Translation:    translation,
		SourceLanguage: strings.TrimSpace(input.SourceLanguage),
		TargetLanguage: strings.TrimSpace(input.TargetLanguage),
		LanguageCode:   code,
		AudioURL:       input.AudioURL,
	})
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	s.log.InfoContext(ctx, "word added",
		slog.String("user_id", userID.String()),
		slog.String("word_id", created.ID.String()),
		slog.String("language_code", created.LanguageCode),
	)

	return created, nil
}

// TranslateText translates a text without storing anything.
// Returns domain.ErrUnsupported when no provider is configured.
func (s *Service) TranslateText(ctx context.Context, input TranslateInput) (string, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return "", domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return "", err
	}

	if s.translate == nil {
		return "", fmt.Errorf("translation provider: %w", domain.ErrUnsupported)
	}

	translated, err := s.translate.Translate(ctx,
		strings.TrimSpace(input.Text), input.SourceLanguage, input.TargetLanguage)
	if err != nil {
		return "", fmt.Errorf("translate text: %w", err)
	}

	return translated, nil
}
