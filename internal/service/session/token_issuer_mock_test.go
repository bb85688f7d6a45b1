package session

import (
	"sync"

	"github.com/google/uuid"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateSessionTokenFunc func(sessionID uuid.UUID) (string, error)

	calls struct {
		GenerateSessionToken []struct {
			SessionID uuid.UUID
		}
	}
	lockGenerateSessionToken sync.RWMutex
}

func (mock *tokenIssuerMock) GenerateSessionToken(sessionID uuid.UUID) (string, error) {
	if mock.GenerateSessionTokenFunc == nil {
		panic("tokenIssuerMock.GenerateSessionTokenFunc: method is nil but tokenIssuer.GenerateSessionToken was just called")
	}
	callInfo := struct {
		SessionID uuid.UUID
	}{SessionID: sessionID}
	mock.lockGenerateSessionToken.Lock()
	mock.calls.GenerateSessionToken = append(mock.calls.GenerateSessionToken, callInfo)
	mock.lockGenerateSessionToken.Unlock()
	return mock.GenerateSessionTokenFunc(sessionID)
}

func (mock *tokenIssuerMock) GenerateSessionTokenCalls() []struct {
	SessionID uuid.UUID
} {
	mock.lockGenerateSessionToken.RLock()
	defer mock.lockGenerateSessionToken.RUnlock()
	return mock.calls.GenerateSessionToken
}
