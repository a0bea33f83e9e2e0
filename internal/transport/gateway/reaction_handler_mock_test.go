package gateway

import (
	"context"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"github.com/UTT-Alumni/boarding-duck/internal/service/reaction"
	"sync"
)

var _ reactionHandler = &reactionHandlerMock{}

type reactionHandlerMock struct {
	HandleFunc func(ctx context.Context, ev domain.ReactionEvent) (reaction.Outcome, error)

	calls struct {
		Handle []struct {
			Ctx context.Context
			Ev  domain.ReactionEvent
		}
	}
	lockHandle sync.RWMutex
}

func (mock *reactionHandlerMock) Handle(ctx context.Context, ev domain.ReactionEvent) (reaction.Outcome, error) {
	if mock.HandleFunc == nil {
		panic("reactionHandlerMock.HandleFunc: method is nil but reactionHandler.Handle was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ev  domain.ReactionEvent
	}{
		Ctx: ctx,
		Ev:  ev,
	}
	mock.lockHandle.Lock()
	mock.calls.Handle = append(mock.calls.Handle, callInfo)
	mock.lockHandle.Unlock()
	return mock.HandleFunc(ctx, ev)
}

func (mock *reactionHandlerMock) HandleCalls() []struct {
	Ctx context.Context
	Ev  domain.ReactionEvent
} {
	mock.lockHandle.RLock()
	calls := mock.calls.Handle
	mock.lockHandle.RUnlock()
	return calls
}
