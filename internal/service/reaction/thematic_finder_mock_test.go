package reaction

import (
	"context"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"github.com/google/uuid"
	"sync"
)

var _ thematicFinder = &thematicFinderMock{}

type thematicFinderMock struct {
	GetByEmojiFunc func(ctx context.Context, poleID uuid.UUID, emojiKey string) (*domain.Thematic, error)

	calls struct {
		GetByEmoji []struct {
			Ctx      context.Context
			PoleID   uuid.UUID
			EmojiKey string
		}
	}
	lockGetByEmoji sync.RWMutex
}

func (mock *thematicFinderMock) GetByEmoji(ctx context.Context, poleID uuid.UUID, emojiKey string) (*domain.Thematic, error) {
	if mock.GetByEmojiFunc == nil {
		panic("thematicFinderMock.GetByEmojiFunc: method is nil but thematicFinder.GetByEmoji was just called")
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

func (mock *thematicFinderMock) GetByEmojiCalls() []struct {
	Ctx      context.Context
	PoleID   uuid.UUID
	EmojiKey string
} {
	mock.lockGetByEmoji.RLock()
	calls := mock.calls.GetByEmoji
	mock.lockGetByEmoji.RUnlock()
	return calls
}
