package gateway

import (
	"github.com/bwmarrin/discordgo"

	"github.com/UTT-Alumni/boarding-duck/internal/service/onboarding"
)

// Request is an interaction classified once at the boundary. The set of
// implementations is closed.
type Request interface {
	kind() string
}

// CommandRequest is an admin slash command.
type CommandRequest struct {
	Command Command
}

// AcceptRulesRequest is a click on a button of the rules channel.
type AcceptRulesRequest struct{}

// RegisterRequest is a submitted registration form, answers keyed by field id.
type RegisterRequest struct {
	Answers map[string]string
}

// UnsupportedRequest is any other interaction. It is acknowledged and logged.
type UnsupportedRequest struct {
	Type discordgo.InteractionType
}

func (CommandRequest) kind() string     { return "command" }
func (AcceptRulesRequest) kind() string { return "accept_rules" }
func (RegisterRequest) kind() string    { return "register" }
func (UnsupportedRequest) kind() string { return "unsupported" }

// Invocation is one interaction as seen by the handlers.
type Invocation struct {
	ID        string
	UserID    string
	UserName  string
	ChannelID string
	RoleIDs   []string
	Request   Request
	// Err is set when the payload could not be parsed into a Request.
	Err error
}

// Name identifies the invocation in logs.
func (inv *Invocation) Name() string {
	if c, ok := inv.Request.(CommandRequest); ok {
		return c.Command.commandName()
	}
	if inv.Request == nil {
		return "invalid"
	}
	return inv.Request.kind()
}

// Classify turns a raw interaction into an Invocation. Buttons count as
// accepting the rules only in the rules channel.
func Classify(i *discordgo.Interaction, rulesChannelID string) *Invocation {
	inv := &Invocation{ID: i.ID, ChannelID: i.ChannelID}
	switch {
	case i.Member != nil && i.Member.User != nil:
		inv.UserID = i.Member.User.ID
		inv.UserName = i.Member.DisplayName()
		inv.RoleIDs = i.Member.Roles
	case i.User != nil:
		inv.UserID = i.User.ID
		inv.UserName = i.User.Username
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		cmd, err := ParseCommand(i.ApplicationCommandData())
		if err != nil {
			inv.Err = err
			return inv
		}
		inv.Request = CommandRequest{Command: cmd}

	case discordgo.InteractionMessageComponent:
		if i.ChannelID == rulesChannelID && i.MessageComponentData().ComponentType == discordgo.ButtonComponent {
			inv.Request = AcceptRulesRequest{}
		} else {
			inv.Request = UnsupportedRequest{Type: i.Type}
		}

	case discordgo.InteractionModalSubmit:
		data := i.ModalSubmitData()
		if data.CustomID == onboarding.RegisterModalID {
			inv.Request = RegisterRequest{Answers: modalAnswers(data.Components)}
		} else {
			inv.Request = UnsupportedRequest{Type: i.Type}
		}

	default:
		inv.Request = UnsupportedRequest{Type: i.Type}
	}
	return inv
}

// modalAnswers collects the text inputs of a modal, looking inside rows.
func modalAnswers(components []discordgo.MessageComponent) map[string]string {
	answers := make(map[string]string)
	var walk func([]discordgo.MessageComponent)
	walk = func(cs []discordgo.MessageComponent) {
		for _, c := range cs {
			switch v := c.(type) {
			case *discordgo.ActionsRow:
				walk(v.Components)
			case *discordgo.TextInput:
				answers[v.CustomID] = v.Value
			}
		}
	}
	walk(components)
	return answers
}
