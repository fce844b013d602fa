package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeckCap is the maximum number of words in one session's deck.
const DeckCap = 20

// LearningSession is a bounded snapshot of one study or test activity.
// The word set is fixed at creation: later edits or deletions of the
// underlying words do not change the session's membership.
type LearningSession struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WordIDs     []uuid.UUID
	SessionKind SessionKind
	Completed   bool
	CreatedAt   time.Time
}

// CapDeck truncates a word list to the first DeckCap entries, preserving
// input order. Safe on nil and short slices.
func CapDeck(words []Word) []Word {
	if len(words) <= DeckCap {
		return words
	}
	return words[:DeckCap]
}

// TestResult is one scored answer within a session. Immutable once created.
type TestResult struct {
	ID         uuid.UUID
	SessionID  uuid.UUID
	WordID     uuid.UUID
	TestKind   TestKind
	Correct    bool
	UserAnswer string
	CreatedAt  time.Time
}

// SessionSummary aggregates the ordered results of a completed session.
type SessionSummary struct {
	SessionID    uuid.UUID
	Total        int
	CorrectCount int
	// AccuracyPct is CorrectCount/Total as a percentage, rounded to the
	// nearest integer. Zero when Total is zero.
	AccuracyPct int
	Results     []TestResult
}

// NewSessionSummary computes the aggregate for an ordered result list.
func NewSessionSummary(sessionID uuid.UUID, results []TestResult) SessionSummary {
	correct := 0
	for _, r := range results {
		if r.Correct {
			correct++
		}
	}

	pct := 0
	if len(results) > 0 {
		pct = int(float64(correct)/float64(len(results))*100 + 0.5)
	}

	return SessionSummary{
		SessionID:    sessionID,
		Total:        len(results),
		CorrectCount: correct,
		AccuracyPct:  pct,
		Results:      results,
	}
}
