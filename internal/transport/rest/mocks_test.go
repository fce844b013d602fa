package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
	"github.com/wordwell/backend/internal/service/auth"
	"github.com/wordwell/backend/internal/service/session"
	"github.com/wordwell/backend/internal/service/word"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
	}
	lockRegister sync.RWMutex
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{ctx, input})
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	defer mock.lockRegister.RUnlock()
	return mock.calls.Register
}

func (mock *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	return mock.LoginFunc(ctx, input)
}

var _ wordService = &wordServiceMock{}

type wordServiceMock struct {
	AddWordFunc        func(ctx context.Context, input word.AddWordInput) (*domain.Word, error)
	GetWordFunc        func(ctx context.Context, wordID uuid.UUID) (*domain.Word, error)
	ListWordsFunc      func(ctx context.Context) ([]domain.Word, error)
	ListByLanguageFunc func(ctx context.Context, code domain.LanguageCode) ([]domain.Word, error)
	LanguageCountsFunc func(ctx context.Context) ([]domain.LanguageCount, error)
	UpdateWordFunc     func(ctx context.Context, input word.UpdateWordInput) (*domain.Word, error)
	DeleteWordFunc     func(ctx context.Context, wordID uuid.UUID) error
	DeleteLanguageFunc func(ctx context.Context, code domain.LanguageCode) (int64, error)
	TranslateTextFunc  func(ctx context.Context, input word.TranslateInput) (string, error)

	calls struct {
		AddWord []struct {
			Ctx   context.Context
			Input word.AddWordInput
		}
		DeleteLanguage []struct {
			Ctx  context.Context
			Code domain.LanguageCode
		}
	}
	lockAddWord        sync.RWMutex
	lockDeleteLanguage sync.RWMutex
}

func (mock *wordServiceMock) AddWord(ctx context.Context, input word.AddWordInput) (*domain.Word, error) {
	if mock.AddWordFunc == nil {
		panic("wordServiceMock.AddWordFunc: method is nil but wordService.AddWord was just called")
	}
	mock.lockAddWord.Lock()
	mock.calls.AddWord = append(mock.calls.AddWord, struct {
		Ctx   context.Context
		Input word.AddWordInput
	}{ctx, input})
	mock.lockAddWord.Unlock()
	return mock.AddWordFunc(ctx, input)
}

func (mock *wordServiceMock) AddWordCalls() []struct {
	Ctx   context.Context
	Input word.AddWordInput
} {
	mock.lockAddWord.RLock()
	defer mock.lockAddWord.RUnlock()
	return mock.calls.AddWord
}

func (mock *wordServiceMock) GetWord(ctx context.Context, wordID uuid.UUID) (*domain.Word, error) {
	if mock.GetWordFunc == nil {
		panic("wordServiceMock.GetWordFunc: method is nil but wordService.GetWord was just called")
	}
	return mock.GetWordFunc(ctx, wordID)
}

func (mock *wordServiceMock) ListWords(ctx context.Context) ([]domain.Word, error) {
	if mock.ListWordsFunc == nil {
		panic("wordServiceMock.ListWordsFunc: method is nil but wordService.ListWords was just called")
	}
	return mock.ListWordsFunc(ctx)
}

func (mock *wordServiceMock) ListByLanguage(ctx context.Context, code domain.LanguageCode) ([]domain.Word, error) {
	if mock.ListByLanguageFunc == nil {
		panic("wordServiceMock.ListByLanguageFunc: method is nil but wordService.ListByLanguage was just called")
	}
	return mock.ListByLanguageFunc(ctx, code)
}

func (mock *wordServiceMock) LanguageCounts(ctx context.Context) ([]domain.LanguageCount, error) {
	if mock.LanguageCountsFunc == nil {
		panic("wordServiceMock.LanguageCountsFunc: method is nil but wordService.LanguageCounts was just called")
	}
	return mock.LanguageCountsFunc(ctx)
}

func (mock *wordServiceMock) UpdateWord(ctx context.Context, input word.UpdateWordInput) (*domain.Word, error) {
	if mock.UpdateWordFunc == nil {
		panic("wordServiceMock.UpdateWordFunc: method is nil but wordService.UpdateWord was just called")
	}
	return mock.UpdateWordFunc(ctx, input)
}

func (mock *wordServiceMock) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	if mock.DeleteWordFunc == nil {
		panic("wordServiceMock.DeleteWordFunc: method is nil but wordService.DeleteWord was just called")
	}
	return mock.DeleteWordFunc(ctx, wordID)
}

func (mock *wordServiceMock) DeleteLanguage(ctx context.Context, code domain.LanguageCode) (int64, error) {
	if mock.DeleteLanguageFunc == nil {
		panic("wordServiceMock.DeleteLanguageFunc: method is nil but wordService.DeleteLanguage was just called")
	}
	mock.lockDeleteLanguage.Lock()
	mock.calls.DeleteLanguage = append(mock.calls.DeleteLanguage, struct {
		Ctx  context.Context
		Code domain.LanguageCode
	}{ctx, code})
	mock.lockDeleteLanguage.Unlock()
	return mock.DeleteLanguageFunc(ctx, code)
}

func (mock *wordServiceMock) DeleteLanguageCalls() []struct {
	Ctx  context.Context
	Code domain.LanguageCode
} {
	mock.lockDeleteLanguage.RLock()
	defer mock.lockDeleteLanguage.RUnlock()
	return mock.calls.DeleteLanguage
}

func (mock *wordServiceMock) TranslateText(ctx context.Context, input word.TranslateInput) (string, error) {
	if mock.TranslateTextFunc == nil {
		panic("wordServiceMock.TranslateTextFunc: method is nil but wordService.TranslateText was just called")
	}
	return mock.TranslateTextFunc(ctx, input)
}

var _ sessionService = &sessionServiceMock{}

type sessionServiceMock struct {
	StartSessionFunc func(ctx context.Context, input session.StartSessionInput) (*session.StartResult, error)
	GetSessionFunc   func(ctx context.Context, sessionID uuid.UUID) (*session.SessionState, error)
	ListSessionsFunc func(ctx context.Context, input session.ListSessionsInput) ([]*domain.LearningSession, int, error)
	SubmitAnswerFunc func(ctx context.Context, input session.SubmitAnswerInput) (*session.SubmitResult, error)
	GetSummaryFunc   func(ctx context.Context, sessionID uuid.UUID) (*domain.SessionSummary, error)

	calls struct {
		SubmitAnswer []struct {
			Ctx   context.Context
			Input session.SubmitAnswerInput
		}
	}
	lockSubmitAnswer sync.RWMutex
}

func (mock *sessionServiceMock) StartSession(ctx context.Context, input session.StartSessionInput) (*session.StartResult, error) {
	if mock.StartSessionFunc == nil {
		panic("sessionServiceMock.StartSessionFunc: method is nil but sessionService.StartSession was just called")
	}
	return mock.StartSessionFunc(ctx, input)
}

func (mock *sessionServiceMock) GetSession(ctx context.Context, sessionID uuid.UUID) (*session.SessionState, error) {
	if mock.GetSessionFunc == nil {
		panic("sessionServiceMock.GetSessionFunc: method is nil but sessionService.GetSession was just called")
	}
	return mock.GetSessionFunc(ctx, sessionID)
}

func (mock *sessionServiceMock) ListSessions(ctx context.Context, input session.ListSessionsInput) ([]*domain.LearningSession, int, error) {
	if mock.ListSessionsFunc == nil {
		panic("sessionServiceMock.ListSessionsFunc: method is nil but sessionService.ListSessions was just called")
	}
	return mock.ListSessionsFunc(ctx, input)
}

func (mock *sessionServiceMock) SubmitAnswer(ctx context.Context, input session.SubmitAnswerInput) (*session.SubmitResult, error) {
	if mock.SubmitAnswerFunc == nil {
		panic("sessionServiceMock.SubmitAnswerFunc: method is nil but sessionService.SubmitAnswer was just called")
	}
	mock.lockSubmitAnswer.Lock()
	mock.calls.SubmitAnswer = append(mock.calls.SubmitAnswer, struct {
		Ctx   context.Context
		Input session.SubmitAnswerInput
	}{ctx, input})
	mock.lockSubmitAnswer.Unlock()
	return mock.SubmitAnswerFunc(ctx, input)
}

func (mock *sessionServiceMock) SubmitAnswerCalls() []struct {
	Ctx   context.Context
	Input session.SubmitAnswerInput
} {
	mock.lockSubmitAnswer.RLock()
	defer mock.lockSubmitAnswer.RUnlock()
	return mock.calls.SubmitAnswer
}

func (mock *sessionServiceMock) GetSummary(ctx context.Context, sessionID uuid.UUID) (*domain.SessionSummary, error) {
	if mock.GetSummaryFunc == nil {
		panic("sessionServiceMock.GetSummaryFunc: method is nil but sessionService.GetSummary was just called")
	}
	return mock.GetSummaryFunc(ctx, sessionID)
}
