package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hangyeol/codestudy-backend/internal/domain"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc      func(ctx context.Context, sess domain.Session) (domain.Session, error)
	GetByIDFunc     func(ctx context.Context, sessionID uuid.UUID) (domain.Session, error)
	UpdateStateFunc func(ctx context.Context, sess domain.Session) (domain.Session, error)
	TouchFunc       func(ctx context.Context, sessionID uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx  context.Context
			Sess domain.Session
		}
		GetByID []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
		UpdateState []struct {
			Ctx  context.Context
			Sess domain.Session
		}
		Touch []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
	}
	lockCreate      sync.RWMutex
	lockGetByID     sync.RWMutex
	lockUpdateState sync.RWMutex
	lockTouch       sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, sess domain.Session) (domain.Session, error) {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Sess domain.Session
	}{Ctx: ctx, Sess: sess}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, sess)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Sess domain.Session
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, sessionID uuid.UUID) (domain.Session, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{Ctx: ctx, SessionID: sessionID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, sessionID)
}

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *sessionRepoMock) UpdateState(ctx context.Context, sess domain.Session) (domain.Session, error) {
	if mock.UpdateStateFunc == nil {
		panic("sessionRepoMock.UpdateStateFunc: method is nil but sessionRepo.UpdateState was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Sess domain.Session
	}{Ctx: ctx, Sess: sess}
	mock.lockUpdateState.Lock()
	mock.calls.UpdateState = append(mock.calls.UpdateState, callInfo)
	mock.lockUpdateState.Unlock()
	return mock.UpdateStateFunc(ctx, sess)
}

func (mock *sessionRepoMock) UpdateStateCalls() []struct {
	Ctx  context.Context
	Sess domain.Session
} {
	mock.lockUpdateState.RLock()
	defer mock.lockUpdateState.RUnlock()
	return mock.calls.UpdateState
}

func (mock *sessionRepoMock) Touch(ctx context.Context, sessionID uuid.UUID) error {
	if mock.TouchFunc == nil {
		panic("sessionRepoMock.TouchFunc: method is nil but sessionRepo.Touch was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{Ctx: ctx, SessionID: sessionID}
	mock.lockTouch.Lock()
	mock.calls.Touch = append(mock.calls.Touch, callInfo)
	mock.lockTouch.Unlock()
	return mock.TouchFunc(ctx, sessionID)
}

func (mock *sessionRepoMock) TouchCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockTouch.RLock()
	defer mock.lockTouch.RUnlock()
	return mock.calls.Touch
}
