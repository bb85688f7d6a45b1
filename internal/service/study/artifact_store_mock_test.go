package study

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/hangyeol/codestudy-backend/internal/domain"
)

var _ artifactStore = &artifactStoreMock{}

type artifactStoreMock struct {
	UpsertFunc        func(ctx context.Context, sessionID uuid.UUID, a domain.Artifact) error
	ListBySessionFunc func(ctx context.Context, sessionID uuid.UUID) (map[domain.Feature]domain.Artifact, error)

	calls struct {
		Upsert []struct {
			Ctx       context.Context
			SessionID uuid.UUID
			A         domain.Artifact
		}
		ListBySession []struct {
			Ctx       context.Context
			SessionID uuid.UUID
		}
	}
	lockUpsert        sync.RWMutex
	lockListBySession sync.RWMutex
}

func (mock *artifactStoreMock) Upsert(ctx context.Context, sessionID uuid.UUID, a domain.Artifact) error {
	if mock.UpsertFunc == nil {
		panic("artifactStoreMock.UpsertFunc: method is nil but artifactStore.Upsert was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
		A         domain.Artifact
	}{Ctx: ctx, SessionID: sessionID, A: a}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, sessionID, a)
}

func (mock *artifactStoreMock) UpsertCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
	A         domain.Artifact
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *artifactStoreMock) ListBySession(ctx context.Context, sessionID uuid.UUID) (map[domain.Feature]domain.Artifact, error) {
	if mock.ListBySessionFunc == nil {
		panic("artifactStoreMock.ListBySessionFunc: method is nil but artifactStore.ListBySession was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		SessionID uuid.UUID
	}{Ctx: ctx, SessionID: sessionID}
	mock.lockListBySession.Lock()
	mock.calls.ListBySession = append(mock.calls.ListBySession, callInfo)
	mock.lockListBySession.Unlock()
	return mock.ListBySessionFunc(ctx, sessionID)
}

func (mock *artifactStoreMock) ListBySessionCalls() []struct {
	Ctx       context.Context
	SessionID uuid.UUID
} {
	mock.lockListBySession.RLock()
	calls := mock.calls.ListBySession
	mock.lockListBySession.RUnlock()
	return calls
}
