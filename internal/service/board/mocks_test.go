package board

import (
	"context"
	"sync"

	"github.com/heartmarshall/brainboard/internal/domain"
)

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

var _ ideaRepo = &ideaRepoMock{}

type ideaRepoMock struct {
	ListByTopicFunc func(ctx context.Context, topicID string) ([]domain.Idea, error)

	calls struct {
		ListByTopic []struct {
			Ctx     context.Context
			TopicID string
		}
	}
	lockListByTopic sync.RWMutex
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

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ListFunc func(ctx context.Context) ([]domain.User, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
	}
	lockList sync.RWMutex
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

var _ activityRepo = &activityRepoMock{}

type activityRepoMock struct {
	ListRecentFunc  func(ctx context.Context, limit int) ([]domain.ActivityRecord, error)
	ListByTopicFunc func(ctx context.Context, topicID string, limit int) ([]domain.ActivityRecord, error)

	calls struct {
		ListRecent []struct {
			Ctx   context.Context
			Limit int
		}
		ListByTopic []struct {
			Ctx     context.Context
			TopicID string
			Limit   int
		}
	}
	lockListRecent  sync.RWMutex
	lockListByTopic sync.RWMutex
}

func (mock *activityRepoMock) ListRecent(ctx context.Context, limit int) ([]domain.ActivityRecord, error) {
	if mock.ListRecentFunc == nil {
		panic("activityRepoMock.ListRecentFunc: method is nil but activityRepo.ListRecent was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Limit int
	}{Ctx: ctx, Limit: limit}
	mock.lockListRecent.Lock()
	mock.calls.ListRecent = append(mock.calls.ListRecent, callInfo)
	mock.lockListRecent.Unlock()
	return mock.ListRecentFunc(ctx, limit)
}

func (mock *activityRepoMock) ListRecentCalls() []struct {
	Ctx   context.Context
	Limit int
} {
	mock.lockListRecent.RLock()
	calls := mock.calls.ListRecent
	mock.lockListRecent.RUnlock()
	return calls
}

func (mock *activityRepoMock) ListByTopic(ctx context.Context, topicID string, limit int) ([]domain.ActivityRecord, error) {
	if mock.ListByTopicFunc == nil {
		panic("activityRepoMock.ListByTopicFunc: method is nil but activityRepo.ListByTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID string
		Limit   int
	}{Ctx: ctx, TopicID: topicID, Limit: limit}
	mock.lockListByTopic.Lock()
	mock.calls.ListByTopic = append(mock.calls.ListByTopic, callInfo)
	mock.lockListByTopic.Unlock()
	return mock.ListByTopicFunc(ctx, topicID, limit)
}

func (mock *activityRepoMock) ListByTopicCalls() []struct {
	Ctx     context.Context
	TopicID string
	Limit   int
} {
	mock.lockListByTopic.RLock()
	calls := mock.calls.ListByTopic
	mock.lockListByTopic.RUnlock()
	return calls
}
