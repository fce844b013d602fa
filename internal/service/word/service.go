// Package word implements vocabulary management: adding, listing,
// editing and deleting words, plus per-language deck statistics and
// machine translation of new entries.
package word

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
)

type wordRepo interface {
	GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Word, error)
	ListByLanguage(ctx context.Context, userID uuid.UUID, code domain.LanguageCode) ([]domain.Word, error)
	CountByLanguage(ctx context.Context, userID uuid.UUID) ([]domain.LanguageCount, error)
	Create(ctx context.Context, word *domain.Word) (*domain.Word, error)
	UpdateTexts(ctx context.Context, userID, wordID uuid.UUID, original, translation string) (*domain.Word, error)
	Delete(ctx context.Context, userID, wordID uuid.UUID) error
	DeleteByLanguage(ctx context.Context, userID uuid.UUID, code domain.LanguageCode) (int64, error)
}

// translator produces a target-language rendering of a source text.
// Implementations may be unavailable at runtime (no API key configured).
type translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// Service provides word management operations.
// translate may be nil when no translation provider is configured.
type Service struct {
	words     wordRepo
	translate translator
	log       *slog.Logger
}

// NewService creates a new Word service.
func NewService(log *slog.Logger, words wordRepo, translate translator) *Service {
	return &Service{
		words:     words,
		translate: translate,
		log:       log.With("service", "word"),
	}
}

// TranslateAvailable reports whether a translation provider is configured.
// Feeds the capabilities endpoint.
func (s *Service) TranslateAvailable() bool {
	return s.translate != nil
}
