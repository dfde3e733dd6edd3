package idea

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/brainboard/internal/domain"
)

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	CreateFunc      func(ctx context.Context, idea *domain.Idea) (*domain.Idea, error)
	GetByIDFunc     func(ctx context.Context, ideaID string) (*domain.Idea, error)
	ListByTopicFunc func(ctx context.Context, topicID string) ([]domain.Idea, error)
	ToggleVoteFunc  func(ctx context.Context, ideaID string, userID string, now time.Time) (*domain.Idea, bool, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Idea *domain.Idea
		}
		GetByID []struct {
			Ctx    context.Context
			IdeaID string
		}
		ListByTopic []struct {
			Ctx     context.Context
			TopicID string
		}
		ToggleVote []struct {
			Ctx    context.Context
			IdeaID string
			UserID string
			Now    time.Time
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockListByTopic sync.RWMutex
	lockToggleVote  sync.RWMutex
}

func (mock *ideaRepoMock) Create(ctx context.Context, idea *domain.Idea) (*domain.Idea, error) {
	if mock.CreateFunc == nil {
		panic("ideaRepoMock.CreateFunc: method is nil but ideaRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Idea *domain.Idea
	}{Ctx: ctx, Idea: idea}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, idea)
}

func (mock *ideaRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Idea *domain.Idea
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *ideaRepoMock) ListByTopic(ctx context.Context, topicID string) ([]domain.Idea, error) {
	if mock.ListByTopicFunc == nil {
		panic("ideaRepoMock.ListByTopicFunc: method is nil but ideaRepo.ListByTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID string
	}{Ctx: ctx, TopicID: topicID}
	mock.lockListByTopic.Lock()
	mock.calls.ListByTopic = append(mock.calls.ListByTopic, callInfo)
	mock.lockListByTopic.Unlock()
	return mock.ListByTopicFunc(ctx, topicID)
}

func (mock *ideaRepoMock) ListByTopicCalls() []struct {
	Ctx     context.Context
	TopicID string
} {
	mock.lockListByTopic.RLock()
	calls := mock.calls.ListByTopic
	mock.lockListByTopic.RUnlock()
	return calls
}

func (mock *ideaRepoMock) ToggleVote(ctx context.Context, ideaID string, userID string, now time.Time) (*domain.Idea, bool, error) {
	if mock.ToggleVoteFunc == nil {
		panic("ideaRepoMock.ToggleVoteFunc: method is nil but ideaRepo.ToggleVote was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		IdeaID string
		UserID string
		Now    time.Time
	}{Ctx: ctx, IdeaID: ideaID, UserID: userID, Now: now}
	mock.lockToggleVote.Lock()
	mock.calls.ToggleVote = append(mock.calls.ToggleVote, callInfo)
	mock.lockToggleVote.Unlock()
	return mock.ToggleVoteFunc(ctx, ideaID, userID, now)
}

func (mock *ideaRepoMock) ToggleVoteCalls() []struct {
	Ctx    context.Context
	IdeaID string
	UserID string
	Now    time.Time
} {
	mock.lockToggleVote.RLock()
	calls := mock.calls.ToggleVote
	mock.lockToggleVote.RUnlock()
	return calls
}

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	GetByIDFunc func(ctx context.Context, topicID string) (*domain.Topic, error)

	calls struct {
		GetByID []struct {
			Ctx     context.Context
			TopicID string
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *topicRepoMock) GetByID(ctx context.Context, topicID string) (*domain.Topic, error) {
	if mock.GetByIDFunc == nil {
		panic("topicRepoMock.GetByIDFunc: method is nil but topicRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID string
	}{Ctx: ctx, TopicID: topicID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, topicID)
}

func (mock *topicRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	TopicID string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID string) (*domain.User, error)
	ListFunc    func(ctx context.Context) ([]domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID string
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
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

func (mock *userRepoMock) List(ctx context.Context) ([]domain.User, error) {
	if mock.ListFunc == nil {
		panic("userRepoMock.ListFunc: method is nil but userRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *userRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

var _ commentCounter = &commentCounterMock{}

type commentCounterMock struct {
	CountByIdeaIDsFunc func(ctx context.Context, ideaIDs []string) (map[string]int, error)

	calls struct {
		CountByIdeaIDs []struct {
			Ctx     context.Context
			IdeaIDs []string
		}
	}
	lockCountByIdeaIDs sync.RWMutex
}

func (mock *commentCounterMock) CountByIdeaIDs(ctx context.Context, ideaIDs []string) (map[string]int, error) {
	if mock.CountByIdeaIDsFunc == nil {
		panic("commentCounterMock.CountByIdeaIDsFunc: method is nil but commentCounter.CountByIdeaIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		IdeaIDs []string
	}{Ctx: ctx, IdeaIDs: ideaIDs}
	mock.lockCountByIdeaIDs.Lock()
	mock.calls.CountByIdeaIDs = append(mock.calls.CountByIdeaIDs, callInfo)
	mock.lockCountByIdeaIDs.Unlock()
	return mock.CountByIdeaIDsFunc(ctx, ideaIDs)
}

func (mock *commentCounterMock) CountByIdeaIDsCalls() []struct {
	Ctx     context.Context
	IdeaIDs []string
} {
	mock.lockCountByIdeaIDs.RLock()
	calls := mock.calls.CountByIdeaIDs
	mock.lockCountByIdeaIDs.RUnlock()
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
