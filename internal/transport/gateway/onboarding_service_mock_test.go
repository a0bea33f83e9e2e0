package gateway

import (
	"context"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"sync"
)

var _ onboardingService = &onboardingServiceMock{}

type onboardingServiceMock struct {
	RegisterFunc          func(ctx context.Context, userID string, answers map[string]string) (string, error)
	RegistrationModalFunc func() domain.Modal

	calls struct {
		Register []struct {
			Ctx     context.Context
			UserID  string
			Answers map[string]string
		}
		RegistrationModal []struct{}
	}
	lockRegister          sync.RWMutex
	lockRegistrationModal sync.RWMutex
}

func (mock *onboardingServiceMock) Register(ctx context.Context, userID string, answers map[string]string) (string, error) {
	if mock.RegisterFunc == nil {
		panic("onboardingServiceMock.RegisterFunc: method is nil but onboardingService.Register was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  string
		Answers map[string]string
	}{
		Ctx:     ctx,
		UserID:  userID,
		Answers: answers,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, userID, answers)
}

func (mock *onboardingServiceMock) RegisterCalls() []struct {
	Ctx     context.Context
	UserID  string
	Answers map[string]string
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *onboardingServiceMock) RegistrationModal() domain.Modal {
	if mock.RegistrationModalFunc == nil {
		panic("onboardingServiceMock.RegistrationModalFunc: method is nil but onboardingService.RegistrationModal was just called")
	}
	callInfo := struct{}{}
	mock.lockRegistrationModal.Lock()
	mock.calls.RegistrationModal = append(mock.calls.RegistrationModal, callInfo)
	mock.lockRegistrationModal.Unlock()
	return mock.RegistrationModalFunc()
}

func (mock *onboardingServiceMock) RegistrationModalCalls() []struct{} {
	mock.lockRegistrationModal.RLock()
	calls := mock.calls.RegistrationModal
	mock.lockRegistrationModal.RUnlock()
	return calls
}
