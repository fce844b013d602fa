package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wordwell/backend/internal/domain"
)

var _ wordRepo = &wordRepoMock{}

type wordRepoMock struct {
	ListByLanguageFunc func(ctx context.Context, userID uuid.UUID, code domain.LanguageCode) ([]domain.Word, error)
	GetByIDsFunc       func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Word, error)

	calls struct {
		ListByLanguage []struct {
			UserID uuid.UUID
			Code   domain.LanguageCode
		}
	}
	lockListByLanguage sync.RWMutex
}

func (mock *wordRepoMock) ListByLanguage(ctx context.Context, userID uuid.UUID, code domain.LanguageCode) ([]domain.Word, error) {
	if mock.ListByLanguageFunc == nil {
		panic("wordRepoMock.ListByLanguageFunc: method is nil but wordRepo.ListByLanguage was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Code   domain.LanguageCode
	}{UserID: userID, Code: code}
	mock.lockListByLanguage.Lock()
	mock.calls.ListByLanguage = append(mock.calls.ListByLanguage, callInfo)
	mock.lockListByLanguage.Unlock()
	return mock.ListByLanguageFunc(ctx, userID, code)
}

func (mock *wordRepoMock) ListByLanguageCalls() []struct {
	UserID uuid.UUID
	Code   domain.LanguageCode
} {
	mock.lockListByLanguage.RLock()
	calls := mock.calls.ListByLanguage
	mock.lockListByLanguage.RUnlock()
	return calls
}

func (mock *wordRepoMock) GetByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Word, error) {
	if mock.GetByIDsFunc == nil {
		panic("wordRepoMock.GetByIDsFunc: method is nil but wordRepo.GetByIDs was just called")
	}
	return mock.GetByIDsFunc(ctx, userID, ids)
}

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	GetByIDFunc       func(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error)
	GetByUserIDFunc   func(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.LearningSession, int, error)
	CreateFunc        func(ctx context.Context, session *domain.LearningSession) (*domain.LearningSession, error)
	MarkCompletedFunc func(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error)

	calls struct {
		Create []struct {
			Session *domain.LearningSession
		}
		MarkCompleted []struct {
			UserID    uuid.UUID
			SessionID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockMarkCompleted sync.RWMutex
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	return mock.GetByIDFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.LearningSession, int, error) {
	if mock.GetByUserIDFunc == nil {
		panic("sessionRepoMock.GetByUserIDFunc: method is nil but sessionRepo.GetByUserID was just called")
	}
	return mock.GetByUserIDFunc(ctx, userID, limit, offset)
}

func (mock *sessionRepoMock) Create(ctx context.Context, session *domain.LearningSession) (*domain.LearningSession, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Session *domain.LearningSession
	}{Session: session}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, session)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Session *domain.LearningSession
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) MarkCompleted(ctx context.Context, userID, sessionID uuid.UUID) (*domain.LearningSession, error) {
	if mock.MarkCompletedFunc == nil {
		panic("sessionRepoMock.MarkCompletedFunc: method is nil but sessionRepo.MarkCompleted was just called")
	}
	callInfo := struct {
		UserID    uuid.UUID
		SessionID uuid.UUID
	}{UserID: userID, SessionID: sessionID}
	mock.lockMarkCompleted.Lock()
	mock.calls.MarkCompleted = append(mock.calls.MarkCompleted, callInfo)
	mock.lockMarkCompleted.Unlock()
	return mock.MarkCompletedFunc(ctx, userID, sessionID)
}

func (mock *sessionRepoMock) MarkCompletedCalls() []struct {
	UserID    uuid.UUID
	SessionID uuid.UUID
} {
	mock.lockMarkCompleted.RLock()
	calls := mock.calls.MarkCompleted
	mock.lockMarkCompleted.RUnlock()
	return calls
}

var _ resultRepo = &resultRepoMock{}

type resultRepoMock struct {
	CreateFunc         func(ctx context.Context, result *domain.TestResult) (*domain.TestResult, error)
	ListBySessionFunc  func(ctx context.Context, sessionID uuid.UUID) ([]domain.TestResult, error)
	CountBySessionFunc func(ctx context.Context, sessionID uuid.UUID) (int, error)

	calls struct {
		Create []struct {
			Result *domain.TestResult
		}
	}
	lockCreate sync.RWMutex
}

func (mock *resultRepoMock) Create(ctx context.Context, result *domain.TestResult) (*domain.TestResult, error) {
	if mock.CreateFunc == nil {
		panic("resultRepoMock.CreateFunc: method is nil but resultRepo.Create was just called")
	}
	callInfo := struct {
		Result *domain.TestResult
	}{Result: result}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, result)
}

func (mock *resultRepoMock) CreateCalls() []struct {
	Result *domain.TestResult
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *resultRepoMock) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]domain.TestResult, error) {
	if mock.ListBySessionFunc == nil {
		panic("resultRepoMock.ListBySessionFunc: method is nil but resultRepo.ListBySession was just called")
	}
	return mock.ListBySessionFunc(ctx, sessionID)
}

func (mock *resultRepoMock) CountBySession(ctx context.Context, sessionID uuid.UUID) (int, error) {
	if mock.CountBySessionFunc == nil {
		panic("resultRepoMock.CountBySessionFunc: method is nil but resultRepo.CountBySession was just called")
	}
	return mock.CountBySessionFunc(ctx, sessionID)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}
