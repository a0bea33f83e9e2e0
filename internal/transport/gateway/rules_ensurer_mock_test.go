package gateway

import (
	"context"
	"sync"
)

var _ rulesEnsurer = &rulesEnsurerMock{}

type rulesEnsurerMock struct {
	EnsureRulesMessageFunc func(ctx context.Context) (bool, error)

	calls struct {
		EnsureRulesMessage []struct {
			Ctx context.Context
		}
	}
	lockEnsureRulesMessage sync.RWMutex
}

func (mock *rulesEnsurerMock) EnsureRulesMessage(ctx context.Context) (bool, error) {
	if mock.EnsureRulesMessageFunc == nil {
		panic("rulesEnsurerMock.EnsureRulesMessageFunc: method is nil but rulesEnsurer.EnsureRulesMessage was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockEnsureRulesMessage.Lock()
	mock.calls.EnsureRulesMessage = append(mock.calls.EnsureRulesMessage, callInfo)
	mock.lockEnsureRulesMessage.Unlock()
	return mock.EnsureRulesMessageFunc(ctx)
}

func (mock *rulesEnsurerMock) EnsureRulesMessageCalls() []struct {
	Ctx context.Context
} {
	mock.lockEnsureRulesMessage.RLock()
	calls := mock.calls.EnsureRulesMessage
	mock.lockEnsureRulesMessage.RUnlock()
	return calls
}
