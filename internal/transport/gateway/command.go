package gateway

import (
	"github.com/bwmarrin/discordgo"
)

// Slash command names.
const (
	CommandPole           = "pole"
	CommandThematic       = "thematic"
	CommandProject        = "project"
	CommandRemovePole     = "remove-pole"
	CommandRemoveThematic = "remove-thematic"
	CommandRemoveProject  = "remove-project"
	CommandGet            = "get"
)

// Command is a parsed admin slash command. The set of implementations is
// closed: the dispatcher switches over them exhaustively.
type Command interface {
	commandName() string
}

// AddPole creates a Pole.
type AddPole struct {
	Name      string
	Emoji     string
	ChannelID *string
}

// AddThematic creates a Thematic under a Pole.
type AddThematic struct {
	Pole      string
	Name      string
	Emoji     string
	ChannelID *string
}

// AddProject creates a Project under a Thematic.
type AddProject struct {
	Pole          string
	Thematic      string
	Name          string
	ChannelID     *string
	CreateChannel bool
}

// RemovePole deletes a Pole.
type RemovePole struct {
	Pole string
}

// RemoveThematic deletes a Thematic.
type RemoveThematic struct {
	Pole     string
	Thematic string
}

// RemoveProject deletes a Project.
type RemoveProject struct {
	Pole     string
	Thematic string
	Project  string
}

// GetTree renders the hierarchy.
type GetTree struct{}

func (AddPole) commandName() string        { return CommandPole }
func (AddThematic) commandName() string    { return CommandThematic }
func (AddProject) commandName() string     { return CommandProject }
func (RemovePole) commandName() string     { return CommandRemovePole }
func (RemoveThematic) commandName() string { return CommandRemoveThematic }
func (RemoveProject) commandName() string  { return CommandRemoveProject }
func (GetTree) commandName() string        { return CommandGet }

// UsageError reports a command invoked without its required options.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// UnknownCommandError reports a command name the bot does not serve.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string { return "unknown command " + e.Name }

// ParseCommand turns slash command data into a Command.
func ParseCommand(data discordgo.ApplicationCommandInteractionData) (Command, error) {
	opts := newOptions(data.Options)

	switch data.Name {
	case CommandPole:
		cmd := AddPole{Name: opts.str("name"), Emoji: opts.str("emoji"), ChannelID: opts.channel("channel")}
		if cmd.Name == "" || cmd.Emoji == "" {
			return nil, &UsageError{Message: "A name and an emoji must be provided"}
		}
		return cmd, nil

	case CommandThematic:
		cmd := AddThematic{Pole: opts.str("pole"), Name: opts.str("name"), Emoji: opts.str("emoji"), ChannelID: opts.channel("channel")}
		if cmd.Pole == "" || cmd.Name == "" || cmd.Emoji == "" {
			return nil, &UsageError{Message: "A pole name, a thematic name and an emoji must be provided"}
		}
		return cmd, nil

	case CommandProject:
		cmd := AddProject{
			Pole:          opts.str("pole"),
			Thematic:      opts.str("thematic"),
			Name:          opts.str("name"),
			ChannelID:     opts.channel("channel"),
			CreateChannel: opts.boolean("create-channel"),
		}
		if cmd.Pole == "" || cmd.Thematic == "" || cmd.Name == "" {
			return nil, &UsageError{Message: "A pole name, a thematic name and a project name must be provided"}
		}
		return cmd, nil

	case CommandRemovePole:
		cmd := RemovePole{Pole: opts.str("pole")}
		if cmd.Pole == "" {
			return nil, &UsageError{Message: "A pole name must be provided"}
		}
		return cmd, nil

	case CommandRemoveThematic:
		cmd := RemoveThematic{Pole: opts.str("pole"), Thematic: opts.str("thematic")}
		if cmd.Pole == "" || cmd.Thematic == "" {
			return nil, &UsageError{Message: "A pole name and a thematic name must be provided"}
		}
		return cmd, nil

	case CommandRemoveProject:
		cmd := RemoveProject{Pole: opts.str("pole"), Thematic: opts.str("thematic"), Project: opts.str("project")}
		if cmd.Pole == "" || cmd.Thematic == "" || cmd.Project == "" {
			return nil, &UsageError{Message: "A pole name, a thematic name and a project name must be provided"}
		}
		return cmd, nil

	case CommandGet:
		return GetTree{}, nil
	}

	return nil, &UnknownCommandError{Name: data.Name}
}

// options indexes command options by name. Values are read with type
// assertions so that a malformed payload yields zero values, not a panic.
type options map[string]*discordgo.ApplicationCommandInteractionDataOption

func newOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) options {
	m := make(options, len(opts))
	for _, o := range opts {
		if o != nil {
			m[o.Name] = o
		}
	}
	return m
}

func (o options) str(name string) string {
	if opt, ok := o[name]; ok {
		s, _ := opt.Value.(string)
		return s
	}
	return ""
}

func (o options) channel(name string) *string {
	if s := o.str(name); s != "" {
		return &s
	}
	return nil
}

func (o options) boolean(name string) bool {
	if opt, ok := o[name]; ok {
		b, _ := opt.Value.(bool)
		return b
	}
	return false
}
