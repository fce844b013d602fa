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

// DeleteWord removes a single word.
func (s *Service) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if wordID == uuid.Nil {
		return domain.NewValidationError("word_id", "required")
	}

	if err := s.words.Delete(ctx, userID, wordID); err != nil {
		return fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted",
		slog.String("user_id", userID.String()),
		slog.String("word_id", wordID.String()),
	)

	return nil
}

// DeleteLanguage removes an entire language deck and returns how many
// words were deleted. Existing session snapshots keep their word-id
// lists; missing words are skipped when a deck is rebuilt.
func (s *Service) DeleteLanguage(ctx context.Context, code domain.LanguageCode) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return 0, domain.NewValidationError("language_code", "required")
	}

	deleted, err := s.words.DeleteByLanguage(ctx, userID, code)
	if err != nil {
		return 0, fmt.Errorf("delete language deck: %w", err)
	}

	s.log.InfoContext(ctx, "language deck deleted",
		slog.String("user_id", userID.String()),
		slog.String("language_code", code),
		slog.Int64("deleted_count", deleted),
	)

	return deleted, nil
}
