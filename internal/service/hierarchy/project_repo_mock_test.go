package hierarchy

import (
	"context"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ projectRepo = &projectRepoMock{}

type projectRepoMock struct {
	CreateFunc           func(ctx context.Context, p *domain.Project) (*domain.Project, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	DeleteByPoleFunc     func(ctx context.Context, poleID uuid.UUID) (int64, error)
	DeleteByThematicFunc func(ctx context.Context, thematicID uuid.UUID) (int64, error)
	GetByNameFunc        func(ctx context.Context, thematicID uuid.UUID, name string) (*domain.Project, error)
	ListFunc             func(ctx context.Context) ([]domain.Project, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.Project
		}
		Delete []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteByPole []struct {
			Ctx    context.Context
			PoleID uuid.UUID
		}
		DeleteByThematic []struct {
			Ctx        context.Context
			ThematicID uuid.UUID
		}
		GetByName []struct {
			Ctx        context.Context
			ThematicID uuid.UUID
			Name       string
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockCreate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockDeleteByPole     sync.RWMutex
	lockDeleteByThematic sync.RWMutex
	lockGetByName        sync.RWMutex
	lockList             sync.RWMutex
}

func (mock *projectRepoMock) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if mock.CreateFunc == nil {
		panic("projectRepoMock.CreateFunc: method is nil but projectRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.Project
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *projectRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.Project
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *projectRepoMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("projectRepoMock.DeleteFunc: method is nil but projectRepo.Delete was just called")
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

func (mock *projectRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *projectRepoMock) DeleteByPole(ctx context.Context, poleID uuid.UUID) (int64, error) {
	if mock.DeleteByPoleFunc == nil {
		panic("projectRepoMock.DeleteByPoleFunc: method is nil but projectRepo.DeleteByPole was just called")
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

func (mock *projectRepoMock) DeleteByPoleCalls() []struct {
	Ctx    context.Context
	PoleID uuid.UUID
} {
	mock.lockDeleteByPole.RLock()
	calls := mock.calls.DeleteByPole
	mock.lockDeleteByPole.RUnlock()
	return calls
}

func (mock *projectRepoMock) DeleteByThematic(ctx context.Context, thematicID uuid.UUID) (int64, error) {
	if mock.DeleteByThematicFunc == nil {
		panic("projectRepoMock.DeleteByThematicFunc: method is nil but projectRepo.DeleteByThematic was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ThematicID uuid.UUID
	}{
		Ctx:        ctx,
		ThematicID: thematicID,
	}
	mock.lockDeleteByThematic.Lock()
	mock.calls.DeleteByThematic = append(mock.calls.DeleteByThematic, callInfo)
	mock.lockDeleteByThematic.Unlock()
	return mock.DeleteByThematicFunc(ctx, thematicID)
}

func (mock *projectRepoMock) DeleteByThematicCalls() []struct {
	Ctx        context.Context
	ThematicID uuid.UUID
} {
	mock.lockDeleteByThematic.RLock()
	calls := mock.calls.DeleteByThematic
	mock.lockDeleteByThematic.RUnlock()
	return calls
}

func (mock *projectRepoMock) GetByName(ctx context.Context, thematicID uuid.UUID, name string) (*domain.Project, error) {
	if mock.GetByNameFunc == nil {
		panic("projectRepoMock.GetByNameFunc: method is nil but projectRepo.GetByName was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		ThematicID uuid.UUID
		Name       string
	}{
		Ctx:        ctx,
		ThematicID: thematicID,
		Name:       name,
	}
	mock.lockGetByName.Lock()
	mock.calls.GetByName = append(mock.calls.GetByName, callInfo)
	mock.lockGetByName.Unlock()
	return mock.GetByNameFunc(ctx, thematicID, name)
}

func (mock *projectRepoMock) GetByNameCalls() []struct {
	Ctx        context.Context
	ThematicID uuid.UUID
	Name       string
} {
	mock.lockGetByName.RLock()
	calls := mock.calls.GetByName
	mock.lockGetByName.RUnlock()
	return calls
}

func (mock *projectRepoMock) List(ctx context.Context) ([]domain.Project, error) {
	if mock.ListFunc == nil {
		panic("projectRepoMock.ListFunc: method is nil but projectRepo.List was just called")
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

func (mock *projectRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
