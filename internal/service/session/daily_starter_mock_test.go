package session

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ dailyStarter = &dailyStarterMock{}

type dailyStarterMock struct {
	StartInitialDailyFunc func(ctx context.Context, sessionID uuid.UUID) error

	calls struct {
		StartInitialDaily []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
	}
	lockStartInitialDaily sync.RWMutex
}

func (mock *dailyStarterMock) StartInitialDaily(ctx context.Context, sessionID uuid.UUID) error {
	if mock.StartInitialDailyFunc == nil {
		panic("dailyStarterMock.StartInitialDailyFunc: method is nil but dailyStarter.StartInitialDaily was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{Ctx: ctx, SessionID: sessionID}
	mock.lockStartInitialDaily.Lock()
	mock.calls.StartInitialDaily = append(mock.calls.StartInitialDaily, callInfo)
	mock.lockStartInitialDaily.Unlock()
	return mock.StartInitialDailyFunc(ctx, sessionID)
}

func (mock *dailyStarterMock) StartInitialDailyCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockStartInitialDaily.RLock()
	defer mock.lockStartInitialDaily.RUnlock()
	return mock.calls.StartInitialDaily
}
