package hierarchy

import (
	"context"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ poleRepo = &poleRepoMock{}

type poleRepoMock struct {
	CreateFunc             func(ctx context.Context, p *domain.Pole) (*domain.Pole, error)
	DeleteFunc             func(ctx context.Context, id uuid.UUID) error
	GetByNameFunc          func(ctx context.Context, name string) (*domain.Pole, error)
	ListFunc               func(ctx context.Context) ([]domain.Pole, error)
	ListByRolesChannelFunc func(ctx context.Context, channelID string) ([]domain.Pole, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Pole
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetByName []struct {
			Ctx  context.Context
			Name string
		}
		List []struct {
			Ctx context.Context
		}
		ListByRolesChannel []struct {
			Ctx       context.Context
			ChannelID string
		}
	}
	lockCreate             sync.RWMutex
	lockDelete             sync.RWMutex
	lockGetByName          sync.RWMutex
	lockList               sync.RWMutex
	lockListByRolesChannel sync.RWMutex
}

func (mock *poleRepoMock) Create(ctx context.Context, p *domain.Pole) (*domain.Pole, error) {
	if mock.CreateFunc == nil {
		panic("poleRepoMock.CreateFunc: method is nil but poleRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Pole
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *poleRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Pole
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *poleRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("poleRepoMock.DeleteFunc: method is nil but poleRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *poleRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *poleRepoMock) GetByName(ctx context.Context, name string) (*domain.Pole, error) {
	if mock.GetByNameFunc == nil {
		panic("poleRepoMock.GetByNameFunc: method is nil but poleRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{
		Ctx:  ctx,
		Name: name,
	}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, name)
}

func (mock *poleRepoMock) GetByNameCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *poleRepoMock) List(ctx context.Context) ([]domain.Pole, error) {
	if mock.ListFunc == nil {
		panic("poleRepoMock.ListFunc: method is nil but poleRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *poleRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *poleRepoMock) ListByRolesChannel(ctx context.Context, channelID string) ([]domain.Pole, error) {
	if mock.ListByRolesChannelFunc == nil {
		panic("poleRepoMock.ListByRolesChannelFunc: method is nil but poleRepo.ListByRolesChannel was just called")
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

func (mock *poleRepoMock) ListByRolesChannelCalls() []struct {
	Ctx       context.Context
	ChannelID string
} {
	mock.lockListByRolesChannel.RLock()
	calls := mock.calls.ListByRolesChannel
	mock.lockListByRolesChannel.RUnlock()
	return calls
}
