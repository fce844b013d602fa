package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
	"github.com/wordwell/backend/pkg/ctxutil"
)

// StartSession creates a new session over the user's deck for one
// language. The deck snapshot keeps the repository's newest-first order
// and is capped at domain.DeckCap words. An empty deck is a validation
// error and writes nothing.
func (s *Service) StartSession(ctx context.Context, input StartSessionInput) (*StartResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	code := strings.TrimSpace(input.LanguageCode)

	words, err := s.words.ListByLanguage(ctx, userID, code)
	if err != nil {
		return nil, fmt.Errorf("load words for language %s: %w", code, err)
	}
	if len(words) == 0 {
		return nil, domain.NewValidationError("language_code", "no words for this language")
	}

	deck := domain.CapDeck(words)
	wordIDs := make([]uuid.UUID, len(deck))
	for i, w := range deck {
		wordIDs[i] = w.ID
	}

	created, err := s.sessions.Create(ctx, &domain.LearningSession{
		ID:          uuid.New(),
		UserID:      userID,
		WordIDs:     wordIDs,
		SessionKind: input.SessionKind,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.InfoContext(ctx, "session started",
		slog.String("user_id", userID.String()),
		slog.String("session_id", created.ID.String()),
		slog.String("session_type", created.SessionKind.String()),
		slog.Int("deck_size", len(deck)),
	)

	return &StartResult{Session: created, Words: deck}, nil
}
