package study

import (
	"context"
	"sync"

	"github.com/hangyeol/codestudy-backend/internal/domain"
)

var _ generator = &generatorMock{}

type generatorMock struct {
	GenerateFunc func(ctx context.Context, f domain.Feature) (domain.Artifact, error)

	calls struct {
		Generate []struct {
			Ctx context.Context
			F   domain.Feature
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *generatorMock) Generate(ctx context.Context, f domain.Feature) (domain.Artifact, error) {
	if mock.GenerateFunc == nil {
		panic("generatorMock.GenerateFunc: method is nil but generator.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.Feature
	}{Ctx: ctx, F: f}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, f)
}

func (mock *generatorMock) GenerateCalls() []struct {
	Ctx context.Context
	F   domain.Feature
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
