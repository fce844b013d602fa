// Package session implements the study/test session workflow: starting
// a session over a language deck, scoring submitted answers item by
// item, and completing the session once every deck word has a recorded
// result.
package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
)

// DefaultListLimit bounds session history pages.
const DefaultListLimit = 20

type wordRepo interface {
	ListByLanguage(ctx context.Context, userID uuid.UUID, code domain.LanguageCode) ([]domain.Word, error)
	GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Word, error)
}

type sessionRepo interface {
	GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.LearningSession, int, error)
	Create(ctx context.Context, session *domain.LearningSession) (*domain.LearningSession, error)
	MarkCompleted(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error)
}

type resultRepo interface {
	Create(ctx context.Context, result *domain.TestResult) (*domain.TestResult, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.TestResult, error)
	CountBySession(ctx context.Context, sessionID uuid.UUID) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides session workflow operations.
type Service struct {
	words    wordRepo
	sessions sessionRepo
	results  resultRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Session service.
func NewService(
	log *slog.Logger,
	words wordRepo,
	sessions sessionRepo,
	results resultRepo,
	tx txManager,
) *Service {
	return &Service{
		words:    words,
		sessions: sessions,
		results:  results,
		tx:       tx,
		log:      log.With("service", "session"),
	}
}
