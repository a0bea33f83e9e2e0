package hierarchy

import (
	"context"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ thematicRepo = &thematicRepoMock{}

type thematicRepoMock struct {
	CreateFunc       func(ctx context.Context, t *domain.Thematic) (*domain.Thematic, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	DeleteByPoleFunc func(ctx context.Context, poleID uuid.UUID) (int64, error)
	GetByEmojiFunc   func(ctx context.Context, poleID uuid.UUID, emojiKey string) (*domain.Thematic, error)
	GetByNameFunc    func(ctx context.Context, poleID uuid.UUID, name string) (*domain.Thematic, error)
	ListFunc         func(ctx context.Context) ([]domain.Thematic, error)
	ListByPoleFunc   func(ctx context.Context, poleID uuid.UUID) ([]domain.Thematic, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Thematic
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteByPole []struct {
			Ctx    context.Context
			PoleID uuid.UUID
		}
		GetByEmoji []struct {
			Ctx      context.Context
			PoleID   uuid.UUID
			EmojiKey string
		}
		GetByName []struct {
			Ctx    context.Context
			PoleID uuid.UUID
			Name   string
		}
		List []struct {
			Ctx context.Context
		}
		ListByPole []struct {
			Ctx    context.Context
			PoleID uuid.UUID
		}
	}
	lockCreate       sync.RWMutex
	lockDelete       sync.RWMutex
	lockDeleteByPole sync.RWMutex
	lockGetByEmoji   sync.RWMutex
	lockGetByName    sync.RWMutex
	lockList         sync.RWMutex
	lockListByPole   sync.RWMutex
}

func (mock *thematicRepoMock) Create(ctx context.Context, t *domain.Thematic) (*domain.Thematic, error) {
	if mock.CreateFunc == nil {
		panic("thematicRepoMock.CreateFunc: method is nil but thematicRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Thematic
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *thematicRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Thematic
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *thematicRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("thematicRepoMock.DeleteFunc: method is nil but thematicRepo.Delete was just called")
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

func (mock *thematicRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *thematicRepoMock) DeleteByPole(ctx context.Context, poleID uuid.UUID) (int64, error) {
	if mock.DeleteByPoleFunc == nil {
		panic("thematicRepoMock.DeleteByPoleFunc: method is nil but thematicRepo.DeleteByPole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PoleID uuid.UUID
	}{
		Ctx:    ctx,
		PoleID: poleID,
	}
	mock.lockDeleteByPole.Lock()
	mock.calls.DeleteByPole = append(mock.calls.DeleteByPole, callInfo)
	mock.lockDeleteByPole.Unlock()
	return mock.DeleteByPoleFunc(ctx, poleID)
}

func (mock *thematicRepoMock) DeleteByPoleCalls() []struct {
	Ctx    context.Context
	PoleID uuid.UUID
} {
	mock.lockDeleteByPole.RLock()
	calls := mock.calls.DeleteByPole
	mock.lockDeleteByPole.RUnlock()
	return calls
}

func (mock *thematicRepoMock) GetByEmoji(ctx context.Context, poleID uuid.UUID, emojiKey string) (*domain.Thematic, error) {
	if mock.GetByEmojiFunc == nil {
		panic("thematicRepoMock.GetByEmojiFunc: method is nil but thematicRepo.GetByEmoji was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		PoleID   uuid.UUID
		EmojiKey string
	}{
		Ctx:      ctx,
		PoleID:   poleID,
		EmojiKey: emojiKey,
	}
	mock.lockGetByEmoji.Lock()
	mock.calls.GetByEmoji = append(mock.calls.GetByEmoji, callInfo)
	mock.lockGetByEmoji.Unlock()
	return mock.GetByEmojiFunc(ctx, poleID, emojiKey)
}

func (mock *thematicRepoMock) GetByEmojiCalls() []struct {
	Ctx      context.Context
	PoleID   uuid.UUID
	EmojiKey string
} {
	mock.lockGetByEmoji.RLock()
	calls := mock.calls.GetByEmoji
	mock.lockGetByEmoji.RUnlock()
	return calls
}

func (mock *thematicRepoMock) GetByName(ctx context.Context, poleID uuid.UUID, name string) (*domain.Thematic, error) {
	if mock.GetByNameFunc == nil {
		panic("thematicRepoMock.GetByNameFunc: method is nil but thematicRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PoleID uuid.UUID
		Name   string
	}{
		Ctx:    ctx,
		PoleID: poleID,
		Name:   name,
	}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, poleID, name)
}

func (mock *thematicRepoMock) GetByNameCalls() []struct {
	Ctx    context.Context
	PoleID uuid.UUID
	Name   string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *thematicRepoMock) List(ctx context.Context) ([]domain.Thematic, error) {
	if mock.ListFunc == nil {
		panic("thematicRepoMock.ListFunc: method is nil but thematicRepo.List was just called")
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

func (mock *thematicRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *thematicRepoMock) ListByPole(ctx context.Context, poleID uuid.UUID) ([]domain.Thematic, error) {
	if mock.ListByPoleFunc == nil {
		panic("thematicRepoMock.ListByPoleFunc: method is nil but thematicRepo.ListByPole was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PoleID uuid.UUID
	}{
		Ctx:    ctx,
		PoleID: poleID,
	}
	mock.lockListByPole.Lock()
	mock.calls.ListByPole = append(mock.calls.ListByPole, callInfo)
	mock.lockListByPole.Unlock()
	return mock.ListByPoleFunc(ctx, poleID)
}

func (mock *thematicRepoMock) ListByPoleCalls() []struct {
	Ctx    context.Context
	PoleID uuid.UUID
} {
	mock.lockListByPole.RLock()
	calls := mock.calls.ListByPole
	mock.lockListByPole.RUnlock()
	return calls
}
