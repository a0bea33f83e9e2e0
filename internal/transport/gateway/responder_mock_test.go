package gateway

import (
	"github.com/bwmarrin/discordgo"
	"sync"
)

var _ responder = &responderMock{}

type responderMock struct {
	InteractionRespondFunc      func(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEditFunc func(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)

	calls struct {
		InteractionRespond []struct {
			Interaction *discordgo.Interaction
			Resp        *discordgo.InteractionResponse
			Options     []discordgo.RequestOption
		}
		InteractionResponseEdit []struct {
			Interaction *discordgo.Interaction
			Newresp     *discordgo.WebhookEdit
			Options     []discordgo.RequestOption
		}
	}
	lockInteractionRespond      sync.RWMutex
	lockInteractionResponseEdit sync.RWMutex
}

func (mock *responderMock) InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error {
	if mock.InteractionRespondFunc == nil {
		panic("responderMock.InteractionRespondFunc: method is nil but responder.InteractionRespond was just called")
	}
	callInfo := struct {
		Interaction *discordgo.Interaction
		Resp        *discordgo.InteractionResponse
		Options     []discordgo.RequestOption
	}{
		Interaction: interaction,
		Resp:        resp,
		Options:     options,
	}
	mock.lockInteractionRespond.Lock()
	mock.calls.InteractionRespond = append(mock.calls.InteractionRespond, callInfo)
	mock.lockInteractionRespond.Unlock()
	return mock.InteractionRespondFunc(interaction, resp, options...)
}

func (mock *responderMock) InteractionRespondCalls() []struct {
	Interaction *discordgo.Interaction
	Resp        *discordgo.InteractionResponse
	Options     []discordgo.RequestOption
} {
	mock.lockInteractionRespond.RLock()
	calls := mock.calls.InteractionRespond
	mock.lockInteractionRespond.RUnlock()
	return calls
}

func (mock *responderMock) InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	if mock.InteractionResponseEditFunc == nil {
		panic("responderMock.InteractionResponseEditFunc: method is nil but responder.InteractionResponseEdit was just called")
	}
	callInfo := struct {
		Interaction *discordgo.Interaction
		Newresp     *discordgo.WebhookEdit
		Options     []discordgo.RequestOption
	}{
		Interaction: interaction,
		Newresp:     newresp,
		Options:     options,
	}
	mock.lockInteractionResponseEdit.Lock()
	mock.calls.InteractionResponseEdit = append(mock.calls.InteractionResponseEdit, callInfo)
	mock.lockInteractionResponseEdit.Unlock()
	return mock.InteractionResponseEditFunc(interaction, newresp, options...)
}

func (mock *responderMock) InteractionResponseEditCalls() []struct {
	Interaction *discordgo.Interaction
	Newresp     *discordgo.WebhookEdit
	Options     []discordgo.RequestOption
} {
	mock.lockInteractionResponseEdit.RLock()
	calls := mock.calls.InteractionResponseEdit
	mock.lockInteractionResponseEdit.RUnlock()
	return calls
}
