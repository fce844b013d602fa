package session

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
	"github.com/wordwell/backend/pkg/ctxutil"
)

// SubmitAnswer scores the answer for the session's current deck item,
// records the result, and completes the session when the last item's
// result lands. The deck advances strictly in order: the submitted word
// must be the one at the current position, and a failed insert leaves
// the position unchanged.
//
// Deck members deleted after the session started cannot be answered.
// They are recorded as skipped (incorrect, empty answer) together with
// the next live submission, in the same transaction, so the position
// keeps moving and the session stays finishable.
//
// A listen-write answer is scored against the word's translation, a
// read-speak answer against the original word. Scoring is exact string
// equality after trimming and lowercasing.
func (s *Service) SubmitAnswer(ctx context.Context, input SubmitAnswerInput) (*SubmitResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	session, err := s.sessions.GetByID(ctx, userID, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session.Completed {
		return nil, fmt.Errorf("session %s already completed: %w", session.ID, domain.ErrConflict)
	}

	// The number of recorded results is the current deck position.
	position, err := s.results.CountBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("count session results: %w", err)
	}
	total := len(session.WordIDs)
	if position >= total {
		// Every item already has a result; nothing is left to submit.
		// The completed flag may still be false here if an earlier
		// completion write was lost. That is not repaired on this path,
		// the submission is simply refused.
		return nil, fmt.Errorf("session %s has no remaining items: %w", session.ID, domain.ErrConflict)
	}

	deckWords, err := s.words.GetByIDs(ctx, userID, session.WordIDs)
	if err != nil {
		return nil, fmt.Errorf("load session words: %w", err)
	}
	live := make(map[uuid.UUID]domain.Word, len(deckWords))
	for _, w := range deckWords {
		live[w.ID] = w
	}

	// Walk past deck members deleted since the session started. They get
	// skipped results below; the current item is the first surviving one.
	idx := position
	var skipped []uuid.UUID
	for idx < total {
		if _, ok := live[session.WordIDs[idx]]; ok {
			break
		}
		skipped = append(skipped, session.WordIDs[idx])
		idx++
	}
	if idx >= total {
		return nil, fmt.Errorf("session %s: every remaining deck word was deleted: %w",
			session.ID, domain.ErrConflict)
	}

	currentID := session.WordIDs[idx]
	if input.WordID != currentID {
		return nil, domain.NewValidationError("word_id",
			fmt.Sprintf("out of order: current item is %s", currentID))
	}
	word := live[currentID]

	expected := word.Translation
	if input.TestKind == domain.TestKindReadSpeak {
		expected = word.OriginalWord
	}
	correct := domain.ScoreAnswer(expected, input.Answer)

	// When nothing live follows this item, any deleted stragglers behind
	// it are skipped in the same transaction and the session completes.
	isLast := true
	var trailing []uuid.UUID
	for _, id := range session.WordIDs[idx+1:] {
		if _, ok := live[id]; ok {
			isLast = false
			trailing = nil
			break
		}
		trailing = append(trailing, id)
	}

	var recorded *domain.TestResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, id := range skipped {
			if err := s.recordSkipped(txCtx, session.ID, id, input.TestKind); err != nil {
				return err
			}
		}

		recorded, err = s.results.Create(txCtx, &domain.TestResult{
			ID:         uuid.New(),
			SessionID:  session.ID,
			WordID:     input.WordID,
			TestKind:   input.TestKind,
			Correct:    correct,
			UserAnswer: input.Answer,
		})
		if err != nil {
			return fmt.Errorf("record result: %w", err)
		}

		for _, id := range trailing {
			if err := s.recordSkipped(txCtx, session.ID, id, input.TestKind); err != nil {
				return err
			}
		}

		if isLast {
			if _, err := s.sessions.MarkCompleted(txCtx, userID, session.ID); err != nil {
				return fmt.Errorf("complete session: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if n := len(skipped) + len(trailing); n > 0 {
		s.log.InfoContext(ctx, "skipped deleted deck words",
			slog.String("session_id", session.ID.String()),
			slog.Int("count", n),
		)
	}

	result := &SubmitResult{
		Result:    recorded,
		Correct:   correct,
		Position:  idx + 1 + len(trailing),
		Total:     total,
		Completed: isLast,
	}

	if isLast {
		results, err := s.results.ListBySession(ctx, session.ID)
		if err != nil {
			return nil, fmt.Errorf("load session results: %w", err)
		}
		summary := domain.NewSessionSummary(session.ID, results)
		result.Summary = &summary

		s.log.InfoContext(ctx, "session completed",
			slog.String("user_id", userID.String()),
			slog.String("session_id", session.ID.String()),
			slog.Int("correct", summary.CorrectCount),
			slog.Int("total", summary.Total),
		)
	}

	return result, nil
}

// recordSkipped writes an incorrect, empty-answer result for a deck
// word deleted mid-session, so the sequential position keeps moving.
func (s *Service) recordSkipped(ctx context.Context, sessionID, wordID uuid.UUID, kind domain.TestKind) error {
	if _, err := s.results.Create(ctx, &domain.TestResult{
		ID:         uuid.New(),
		SessionID:  sessionID,
		WordID:     wordID,
		TestKind:   kind,
		Correct:    false,
		UserAnswer: "",
	}); err != nil {
		return fmt.Errorf("record skipped word %s: %w", wordID, err)
	}
	return nil
}
