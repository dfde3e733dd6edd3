package comment

import (
	"context"
	"sync"

	"github.com/heartmarshall/brainboard/internal/domain"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	CreateFunc     func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	GetByIDFunc    func(ctx context.Context, commentID string) (*domain.Comment, error)
	ListByIdeaFunc func(ctx context.Context, ideaID string) ([]domain.Comment, error)

	calls struct {
		Create []struct {
			Ctx     context.Context
			Comment *domain.Comment
		}
		GetByID []struct {
			Ctx       context.Context
			CommentID string
		}
		ListByIdea []struct {
			Ctx    context.Context
			IdeaID string
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockListByIdea sync.RWMutex
}

func (mock *commentRepoMock) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	if mock.CreateFunc == nil {
		panic("commentRepoMock.CreateFunc: method is nil but commentRepo.Create was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Comment *domain.Comment
	}{Ctx: ctx, Comment: comment}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, comment)
}

func (mock *commentRepoMock) CreateCalls() []struct {
	Ctx     context.Context
	Comment *domain.Comment
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *commentRepoMock) GetByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	if mock.GetByIDFunc == nil {
		panic("commentRepoMock.GetByIDFunc: method is nil but commentRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		CommentID string
	}{Ctx: ctx, CommentID: commentID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, commentID)
}

func (mock *commentRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	CommentID string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *commentRepoMock) ListByIdea(ctx context.Context, ideaID string) ([]domain.Comment, error) {
	if mock.ListByIdeaFunc == nil {
		panic("commentRepoMock.ListByIdeaFunc: method is nil but commentRepo.ListByIdea was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID string
	}{Ctx: ctx, IdeaID: ideaID}
	mock.lockListByIdea.Lock()
	mock.calls.ListByIdea = append(mock.calls.ListByIdea, callInfo)
	mock.lockListByIdea.Unlock()
	return mock.ListByIdeaFunc(ctx, ideaID)
}

func (mock *commentRepoMock) ListByIdeaCalls() []struct {
	Ctx    context.Context
	IdeaID string
} {
	mock.lockListByIdea.RLock()
	calls := mock.calls.ListByIdea
	mock.lockListByIdea.RUnlock()
	return calls
}

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	GetByIDFunc func(ctx context.Context, ideaID string) (*domain.Idea, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			IdeaID string
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *ideaRepoMock) GetByID(ctx context.Context, ideaID string) (*domain.Idea, error) {
	if mock.GetByIDFunc == nil {
		panic("ideaRepoMock.GetByIDFunc: method is nil but ideaRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID string
	}{Ctx: ctx, IdeaID: ideaID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, ideaID)
}

func (mock *ideaRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	IdeaID string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID string) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	LogFunc func(ctx context.Context, record domain.ActivityRecord) error

	calls struct {
		Log []struct {
			Ctx    context.Context
			Record domain.ActivityRecord
		}
	}
	lockLog sync.RWMutex
}

func (mock *auditLoggerMock) Log(ctx context.Context, record domain.ActivityRecord) error {
	if mock.LogFunc == nil {
		panic("auditLoggerMock.LogFunc: method is nil but auditLogger.Log was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Record domain.ActivityRecord
	}{Ctx: ctx, Record: record}
	mock.lockLog.Lock()
	mock.calls.Log = append(mock.calls.Log, callInfo)
	mock.lockLog.Unlock()
	return mock.LogFunc(ctx, record)
}

func (mock *auditLoggerMock) LogCalls() []struct {
	Ctx    context.Context
	Record domain.ActivityRecord
} {
	mock.lockLog.RLock()
	calls := mock.calls.Log
	mock.lockLog.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct {
			Ctx context.Context
			Fn  func(ctx context.Context) error
		}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Fn  func(ctx context.Context) error
	}{Ctx: ctx, Fn: fn}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, callInfo)
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct {
	Ctx context.Context
	Fn  func(ctx context.Context) error
} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}
