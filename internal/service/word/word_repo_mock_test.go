package word

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	GetByIDFunc          func(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error)
	ListByUserFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.Word, error)
	ListByLanguageFunc   func(ctx context.Context, userID uuid.UUID, code domain.LanguageCode) ([]domain.Word, error)
	CountByLanguageFunc  func(ctx context.Context, userID uuid.UUID) ([]domain.LanguageCount, error)
	CreateFunc           func(ctx context.Context, word *domain.Word) (*domain.Word, error)
	UpdateTextsFunc      func(ctx context.Context, userID, wordID uuid.UUID, original, translation string) (*domain.Word, error)
	DeleteFunc           func(ctx context.Context, userID, wordID uuid.UUID) error
	DeleteByLanguageFunc func(ctx context.Context, userID uuid.UUID, code domain.LanguageCode) (int64, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Word *domain.Word
		}
		DeleteByLanguage []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Code   domain.LanguageCode
		}
	}
	lockCreate           sync.RWMutex
	lockDeleteByLanguage sync.RWMutex
}

func (mock *wordRepoMock) GetByID(ctx context.Context, userID, wordID uuid.UUID) (*domain.Word, error) {
	if mock.GetByIDFunc == nil {
		panic("wordRepoMock.GetByIDFunc: method is nil but wordRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, wordID)
}

func (mock *wordRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Word, error) {
	if mock.ListByUserFunc == nil {
		panic("wordRepoMock.ListByUserFunc: method is nil but wordRepo.ListByUser was just called")
	}
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *wordRepoMock) ListByLanguage(ctx context.Context, userID uuid.UUID, code domain.LanguageCode) ([]domain.Word, error) {
	if mock.ListByLanguageFunc == nil {
		panic("wordRepoMock.ListByLanguageFunc: method is nil but wordRepo.ListByLanguage was just called")
	}
	return mock.ListByLanguageFunc(ctx, userID, code)
}

func (mock *wordRepoMock) CountByLanguage(ctx context.Context, userID uuid.UUID) ([]domain.LanguageCount, error) {
	if mock.CountByLanguageFunc == nil {
		panic("wordRepoMock.CountByLanguageFunc: method is nil but wordRepo.CountByLanguage was just called")
	}
	return mock.CountByLanguageFunc(ctx, userID)
}

func (mock *wordRepoMock) Create(ctx context.Context, word *domain.Word) (*domain.Word, error) {
	if mock.CreateFunc == nil {
		panic("wordRepoMock.CreateFunc: method is nil but wordRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Word *domain.Word
	}{Ctx: ctx, Word: word}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, word)
}

func (mock *wordRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Word *domain.Word
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *wordRepoMock) UpdateTexts(ctx context.Context, userID, wordID uuid.UUID, original, translation string) (*domain.Word, error) {
	if mock.UpdateTextsFunc == nil {
		panic("wordRepoMock.UpdateTextsFunc: method is nil but wordRepo.UpdateTexts was just called")
	}
	return mock.UpdateTextsFunc(ctx, userID, wordID, original, translation)
}

func (mock *wordRepoMock) Delete(ctx context.Context, userID, wordID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("wordRepoMock.DeleteFunc: method is nil but wordRepo.Delete was just called")
	}
	return mock.DeleteFunc(ctx, userID, wordID)
}

func (mock *wordRepoMock) DeleteByLanguage(ctx context.Context, userID uuid.UUID, code domain.LanguageCode) (int64, error) {
	if mock.DeleteByLanguageFunc == nil {
		panic("wordRepoMock.DeleteByLanguageFunc: method is nil but wordRepo.DeleteByLanguage was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Code   domain.LanguageCode
	}{Ctx: ctx, UserID: userID, Code: code}
	mock.lockDeleteByLanguage.Lock()
	mock.calls.DeleteByLanguage = append(mock.calls.DeleteByLanguage, callInfo)
	mock.lockDeleteByLanguage.Unlock()
	return mock.DeleteByLanguageFunc(ctx, userID, code)
}

func (mock *wordRepoMock) DeleteByLanguageCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Code   domain.LanguageCode
} {
	mock.lockDeleteByLanguage.RLock()
	calls := mock.calls.DeleteByLanguage
	mock.lockDeleteByLanguage.RUnlock()
	return calls
}

var _ translator = &translatorMock{}

type translatorMock struct {
	TranslateFunc func(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	calls struct {
		Translate []struct {
			Text       string
			SourceLang string
			TargetLang string
		}
	}
	lockTranslate sync.RWMutex
}

func (mock *translatorMock) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if mock.TranslateFunc == nil {
		panic("translatorMock.TranslateFunc: method is nil but translator.Translate was just called")
	}
	callInfo := struct {
		Text       string
		SourceLang string
		TargetLang string
	}{Text: text, SourceLang: sourceLang, TargetLang: targetLang}
	mock.lockTranslate.Lock()
	mock.calls.Translate = append(mock.calls.Translate, callInfo)
	mock.lockTranslate.Unlock()
	return mock.TranslateFunc(ctx, text, sourceLang, targetLang)
}

func (mock *translatorMock) TranslateCalls() []struct {
	Text       string
	SourceLang string
	TargetLang string
} {
	mock.lockTranslate.RLock()
	calls := mock.calls.Translate
	mock.lockTranslate.RUnlock()
	return calls
}
