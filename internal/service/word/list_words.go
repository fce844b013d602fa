package word

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
	"github.com/wordwell/backend/pkg/ctxutil"
)

// GetWord returns a single word by ID.
func (s *Service) GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	w, err := s.words.GetByID(ctx, userID, wordID)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}

	return w, nil
}

// ListWords returns all of the user's words, newest-first.
func (s *Service) ListWords(ctx context.Context) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	words, err := s.words.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	return words, nil
}

// ListByLanguage returns the user's words for one language deck, newest-first.
func (s *Service) ListByLanguage(ctx context.Context, code domain.LanguageCode) ([]domain.Word, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.NewValidationError("language_code", "required")
	}

	words, err := s.words.ListByLanguage(ctx, userID, code)
	if err != nil {
		return nil, fmt.Errorf("list words by language: %w", err)
	}

	return words, nil
}

// LanguageCounts returns per-deck word counts for the current user.
func (s *Service) LanguageCounts(ctx context.Context) ([]domain.LanguageCount, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	counts, err := s.words.CountByLanguage(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count words by language: %w", err)
	}

	return counts, nil
}
