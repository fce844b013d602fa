package session

import "github.com/wordwell/backend/internal/domain"

// StartResult is returned by StartSession: the created session plus the
// deck words in session order.
type StartResult struct {
	Session *domain.LearningSession
	Words   []domain.Word
}

// SubmitResult is returned by SubmitAnswer.
// Summary is non-nil only on the submission that completes the session.
type SubmitResult struct {
	Result    *domain.TestResult
	Correct   bool
	Position  int // deck items with a recorded result, skips included
	Total     int
	Completed bool
	Summary   *domain.SessionSummary
}

// SessionState describes a session for the read endpoints. Words holds
// the surviving deck words in session order; Position indexes the item
// to answer next within Words, or len(Words) when none remains.
type SessionState struct {
	Session  *domain.LearningSession
	Words    []domain.Word
	Position int
}
