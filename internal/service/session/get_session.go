package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
	"github.com/wordwell/backend/pkg/ctxutil"
)

// GetSession returns a session with its deck words and current position.
// Deck words deleted after the session was created are skipped, so the
// word list can be shorter than the stored id snapshot. Position indexes
// into Words: Words[Position] is the item SubmitAnswer expects next, and
// Position equals len(Words) when nothing answerable remains.
func (s *Service) GetSession(ctx context.Context, sessionID uuid.UUID) (*SessionState, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	words, err := s.words.GetByIDs(ctx, userID, session.WordIDs)
	if err != nil {
		return nil, fmt.Errorf("load session words: %w", err)
	}

	resultCount, err := s.results.CountBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("count session results: %w", err)
	}

	// Results land strictly in deck order, so the first resultCount
	// snapshot members are done. The current item is the first surviving
	// member after them; deleted members occupy no slot in Words and are
	// passed over, mirroring how SubmitAnswer advances past them.
	live := make(map[uuid.UUID]struct{}, len(words))
	for _, w := range words {
		live[w.ID] = struct{}{}
	}
	position := 0
	for i, id := range session.WordIDs {
		if _, ok := live[id]; !ok {
			continue
		}
		if i >= resultCount {
			break
		}
		position++
	}

	return &SessionState{Session: session, Words: words, Position: position}, nil
}

// ListSessions returns the user's session history, newest-first.
func (s *Service) ListSessions(ctx context.Context, input ListSessionsInput) ([]*domain.LearningSession, int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	sessions, total, err := s.sessions.GetByUserID(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}

	return sessions, total, nil
}

// GetSummary returns the aggregate result of a completed session.
// Returns domain.ErrConflict while the session is still in progress.
func (s *Service) GetSummary(ctx context.Context, sessionID uuid.UUID) (*domain.SessionSummary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetByID(ctx, userID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !session.Completed {
		return nil, fmt.Errorf("session %s not completed: %w", session.ID, domain.ErrConflict)
	}

	results, err := s.results.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("load session results: %w", err)
	}

	summary := domain.NewSessionSummary(session.ID, results)
	return &summary, nil
}
