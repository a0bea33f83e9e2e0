package gateway

import (
	"context"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"github.com/UTT-Alumni/boarding-duck/internal/service/hierarchy"
	"sync"
)

var _ hierarchyService = &hierarchyServiceMock{}

type hierarchyServiceMock struct {
	AddPoleFunc        func(ctx context.Context, input hierarchy.AddPoleInput) (*hierarchy.AddPoleResult, error)
	AddProjectFunc     func(ctx context.Context, input hierarchy.AddProjectInput) (*domain.Project, error)
	AddThematicFunc    func(ctx context.Context, input hierarchy.AddThematicInput) (*hierarchy.AddThematicResult, error)
	DeletePoleFunc     func(ctx context.Context, input hierarchy.DeletePoleInput) (*hierarchy.DeletePoleResult, error)
	DeleteProjectFunc  func(ctx context.Context, input hierarchy.DeleteProjectInput) error
	DeleteThematicFunc func(ctx context.Context, input hierarchy.DeleteThematicInput) (*hierarchy.DeleteThematicResult, error)
	GetFormattedFunc   func(ctx context.Context) (string, error)

	calls struct {
		AddPole []struct {
			Ctx   context.Context
			Input hierarchy.AddPoleInput
		}
		AddProject []struct {
			Ctx   context.Context
			Input hierarchy.AddProjectInput
		}
		AddThematic []struct {
			Ctx   context.Context
			Input hierarchy.AddThematicInput
		}
		DeletePole []struct {
			Ctx   context.Context
			Input hierarchy.DeletePoleInput
		}
		DeleteProject []struct {
			Ctx   context.Context
			Input hierarchy.DeleteProjectInput
		}
		DeleteThematic []struct {
			Ctx   context.Context
			Input hierarchy.DeleteThematicInput
		}
		GetFormatted []struct {
			Ctx context.Context
		}
	}
	lockAddPole        sync.RWMutex
	lockAddProject     sync.RWMutex
	lockAddThematic    sync.RWMutex
	lockDeletePole     sync.RWMutex
	lockDeleteProject  sync.RWMutex
	lockDeleteThematic sync.RWMutex
	lockGetFormatted   sync.RWMutex
}

func (mock *hierarchyServiceMock) AddPole(ctx context.Context, input hierarchy.AddPoleInput) (*hierarchy.AddPoleResult, error) {
	if mock.AddPoleFunc == nil {
		panic("hierarchyServiceMock.AddPoleFunc: method is nil but hierarchyService.AddPole was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input hierarchy.AddPoleInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddPole.Lock()
	mock.calls.AddPole = append(mock.calls.AddPole, callInfo)
	mock.lockAddPole.Unlock()
	return mock.AddPoleFunc(ctx, input)
}

func (mock *hierarchyServiceMock) AddPoleCalls() []struct {
	Ctx   context.Context
	Input hierarchy.AddPoleInput
} {
	mock.lockAddPole.RLock()
	calls := mock.calls.AddPole
	mock.lockAddPole.RUnlock()
	return calls
}

func (mock *hierarchyServiceMock) AddProject(ctx context.Context, input hierarchy.AddProjectInput) (*domain.Project, error) {
	if mock.AddProjectFunc == nil {
		panic("hierarchyServiceMock.AddProjectFunc: method is nil but hierarchyService.AddProject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input hierarchy.AddProjectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddProject.Lock()
	mock.calls.AddProject = append(mock.calls.AddProject, callInfo)
	mock.lockAddProject.Unlock()
	return mock.AddProjectFunc(ctx, input)
}

func (mock *hierarchyServiceMock) AddProjectCalls() []struct {
	Ctx   context.Context
	Input hierarchy.AddProjectInput
} {
	mock.lockAddProject.RLock()
	calls := mock.calls.AddProject
	mock.lockAddProject.RUnlock()
	return calls
}

func (mock *hierarchyServiceMock) AddThematic(ctx context.Context, input hierarchy.AddThematicInput) (*hierarchy.AddThematicResult, error) {
	if mock.AddThematicFunc == nil {
		panic("hierarchyServiceMock.AddThematicFunc: method is nil but hierarchyService.AddThematic was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input hierarchy.AddThematicInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAddThematic.Lock()
	mock.calls.AddThematic = append(mock.calls.AddThematic, callInfo)
	mock.lockAddThematic.Unlock()
	return mock.AddThematicFunc(ctx, input)
}

func (mock *hierarchyServiceMock) AddThematicCalls() []struct {
	Ctx   context.Context
	Input hierarchy.AddThematicInput
} {
	mock.lockAddThematic.RLock()
	calls := mock.calls.AddThematic
	mock.lockAddThematic.RUnlock()
	return calls
}

func (mock *hierarchyServiceMock) DeletePole(ctx context.Context, input hierarchy.DeletePoleInput) (*hierarchy.DeletePoleResult, error) {
	if mock.DeletePoleFunc == nil {
		panic("hierarchyServiceMock.DeletePoleFunc: method is nil but hierarchyService.DeletePole was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input hierarchy.DeletePoleInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeletePole.Lock()
	mock.calls.DeletePole = append(mock.calls.DeletePole, callInfo)
	mock.lockDeletePole.Unlock()
	return mock.DeletePoleFunc(ctx, input)
}

func (mock *hierarchyServiceMock) DeletePoleCalls() []struct {
	Ctx   context.Context
	Input hierarchy.DeletePoleInput
} {
	mock.lockDeletePole.RLock()
	calls := mock.calls.DeletePole
	mock.lockDeletePole.RUnlock()
	return calls
}

func (mock *hierarchyServiceMock) DeleteProject(ctx context.Context, input hierarchy.DeleteProjectInput) error {
	if mock.DeleteProjectFunc == nil {
		panic("hierarchyServiceMock.DeleteProjectFunc: method is nil but hierarchyService.DeleteProject was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input hierarchy.DeleteProjectInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteProject.Lock()
	mock.calls.DeleteProject = append(mock.calls.DeleteProject, callInfo)
	mock.lockDeleteProject.Unlock()
	return mock.DeleteProjectFunc(ctx, input)
}

func (mock *hierarchyServiceMock) DeleteProjectCalls() []struct {
	Ctx   context.Context
	Input hierarchy.DeleteProjectInput
} {
	mock.lockDeleteProject.RLock()
	calls := mock.calls.DeleteProject
	mock.lockDeleteProject.RUnlock()
	return calls
}

func (mock *hierarchyServiceMock) DeleteThematic(ctx context.Context, input hierarchy.DeleteThematicInput) (*hierarchy.DeleteThematicResult, error) {
	if mock.DeleteThematicFunc == nil {
		panic("hierarchyServiceMock.DeleteThematicFunc: method is nil but hierarchyService.DeleteThematic was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input hierarchy.DeleteThematicInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDeleteThematic.Lock()
	mock.calls.DeleteThematic = append(mock.calls.DeleteThematic, callInfo)
	mock.lockDeleteThematic.Unlock()
	return mock.DeleteThematicFunc(ctx, input)
}

func (mock *hierarchyServiceMock) DeleteThematicCalls() []struct {
	Ctx   context.Context
	Input hierarchy.DeleteThematicInput
} {
	mock.lockDeleteThematic.RLock()
	calls := mock.calls.DeleteThematic
	mock.lockDeleteThematic.RUnlock()
	return calls
}

func (mock *hierarchyServiceMock) GetFormatted(ctx context.Context) (string, error) {
	if mock.GetFormattedFunc == nil {
		panic("hierarchyServiceMock.GetFormattedFunc: method is nil but hierarchyService.GetFormatted was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGetFormatted.Lock()
	mock.calls.GetFormatted = append(mock.calls.GetFormatted, callInfo)
	mock.lockGetFormatted.Unlock()
	return mock.GetFormattedFunc(ctx)
}

func (mock *hierarchyServiceMock) GetFormattedCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetFormatted.RLock()
	calls := mock.calls.GetFormatted
	mock.lockGetFormatted.RUnlock()
	return calls
}
