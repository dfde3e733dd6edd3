package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/brainboard/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.User, error)
	ListFunc    func(ctx context.Context) ([]domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			Id  string
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  string
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  string
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

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	ListByParticipantFunc func(ctx context.Context, userID string) ([]domain.Topic, error)

	calls struct {
		ListByParticipant []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockListByParticipant sync.RWMutex
}

func (mock *topicRepoMock) ListByParticipant(ctx context.Context, userID string) ([]domain.Topic, error) {
	if mock.ListByParticipantFunc == nil {
		panic("topicRepoMock.ListByParticipantFunc: method is nil but topicRepo.ListByParticipant was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockListByParticipant.Lock()
	mock.calls.ListByParticipant = append(mock.calls.ListByParticipant, callInfo)
	mock.lockListByParticipant.Unlock()
	return mock.ListByParticipantFunc(ctx, userID)
}

func (mock *topicRepoMock) ListByParticipantCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockListByParticipant.RLock()
	calls := mock.calls.ListByParticipant
	mock.lockListByParticipant.RUnlock()
	return calls
}
