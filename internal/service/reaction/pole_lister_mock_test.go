package reaction

import (
	"context"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"sync"
)

var _ poleLister = &poleListerMock{}

type poleListerMock struct {
	ListByRolesChannelFunc func(ctx context.Context, channelID string) ([]domain.Pole, error)

	calls struct {
		ListByRolesChannel []struct {
			Ctx       context.Context
			ChannelID string
		}
	}
	lockListByRolesChannel sync.RWMutex
}

func (mock *poleListerMock) ListByRolesChannel(ctx context.Context, channelID string) ([]domain.Pole, error) {
	if mock.ListByRolesChannelFunc == nil {
		panic("poleListerMock.ListByRolesChannelFunc: method is nil but poleLister.ListByRolesChannel was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ChannelID string
	}{
		Ctx:       ctx,
		ChannelID: channelID,
	}
	mock.lockListByRolesChannel.Lock()
	mock.calls.ListByRolesChannel = append(mock.calls.ListByRolesChannel, callInfo)
	mock.lockListByRolesChannel.Unlock()
	return mock.ListByRolesChannelFunc(ctx, channelID)
}

func (mock *poleListerMock) ListByRolesChannelCalls() []struct {
	Ctx       context.Context
	ChannelID string
} {
	mock.lockListByRolesChannel.RLock()
	calls := mock.calls.ListByRolesChannel
	mock.lockListByRolesChannel.RUnlock()
	return calls
}
