package word

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wordwell/backend/internal/domain"
	"github.com/wordwell/backend/pkg/ctxutil"
)

// UpdateWord edits a word's original text and translation.
func (s *Service) UpdateWord(ctx context.Context, input UpdateWordInput) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.words.UpdateTexts(ctx, userID, input.WordID,
		strings.TrimSpace(input.OriginalWord), strings.TrimSpace(input.Translation))
	if err != nil {
		return nil, fmt.Errorf("update word: %w", err)
	}

	s.log.InfoContext(ctx, "word updated",
		slog.String("user_id", userID.String()),
		slog.String("word_id", input.WordID.String()),
	)

	return updated, nil
}
