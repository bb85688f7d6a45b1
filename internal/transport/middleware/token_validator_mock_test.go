package middleware

import (
	"sync"

	"github.com/google/uuid"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	ValidateSessionTokenFunc func(token string) (uuid.UUID, error)

	calls struct {
		ValidateSessionToken []struct {
			Token string
		}
	}
	lockValidateSessionToken sync.RWMutex
}

func (mock *tokenValidatorMock) ValidateSessionToken(token string) (uuid.UUID, error) {
	if mock.ValidateSessionTokenFunc == nil {
		panic("tokenValidatorMock.ValidateSessionTokenFunc: method is nil but tokenValidator.ValidateSessionToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateSessionToken.Lock()
	mock.calls.ValidateSessionToken = append(mock.calls.ValidateSessionToken, callInfo)
	mock.lockValidateSessionToken.Unlock()
	return mock.ValidateSessionTokenFunc(token)
}

func (mock *tokenValidatorMock) ValidateSessionTokenCalls() []struct {
	Token string
} {
	mock.lockValidateSessionToken.RLock()
	calls := mock.calls.ValidateSessionToken
	mock.lockValidateSessionToken.RUnlock()
	return calls
}
