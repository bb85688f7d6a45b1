package speech

import (
	"context"
	"sync"
)

var _ synthesizer = &synthesizerMock{}

type synthesizerMock struct {
	SynthesizeFunc func(ctx context.Context, text, lang string) ([]byte, error)

	calls struct {
		Synthesize []struct {
			Ctx  context.Context
			Text string
			Lang string
		}
	}
	lockSynthesize sync.RWMutex
}

func (mock *synthesizerMock) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if mock.SynthesizeFunc == nil {
		panic("synthesizerMock.SynthesizeFunc: method is nil but synthesizer.Synthesize was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
		Lang string
	}{Ctx: ctx, Text: text, Lang: lang}
	mock.lockSynthesize.Lock()
	mock.calls.Synthesize = append(mock.calls.Synthesize, callInfo)
	mock.lockSynthesize.Unlock()
	return mock.SynthesizeFunc(ctx, text, lang)
}

func (mock *synthesizerMock) SynthesizeCalls() []struct {
	Ctx  context.Context
	Text string
	Lang string
} {
	mock.lockSynthesize.RLock()
	defer mock.lockSynthesize.RUnlock()
	return mock.calls.Synthesize
}
