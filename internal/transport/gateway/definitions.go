package gateway

import "github.com/bwmarrin/discordgo"

// Definitions returns the slash commands registered on the guild.
func Definitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandPole,
			Description: "Add a pole",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("name", "Name of the pole", true),
				stringOption("emoji", "Emoji of the pole", true),
				channelOption("channel", "Roles channel of the pole (created when omitted)"),
			},
		},
		{
			Name:        CommandThematic,
			Description: "Add a thematic to a pole",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("pole", "Name of the pole", true),
				stringOption("name", "Name of the thematic", true),
				stringOption("emoji", "Emoji members react with to join the thematic", true),
				channelOption("channel", "Channel of the thematic"),
			},
		},
		{
			Name:        CommandProject,
			Description: "Add a project to a thematic",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("pole", "Name of the pole", true),
				stringOption("thematic", "Name of the thematic", true),
				stringOption("name", "Name of the project", true),
				channelOption("channel", "Channel of the project"),
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "create-channel",
					Description: "Create a channel named after the project",
				},
			},
		},
		{
			Name:        CommandRemovePole,
			Description: "Remove a pole with its thematics and projects",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("pole", "Name of the pole", true),
			},
		},
		{
			Name:        CommandRemoveThematic,
			Description: "Remove a thematic, its reaction and its role",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("pole", "Name of the pole", true),
				stringOption("thematic", "Name of the thematic", true),
			},
		},
		{
			Name:        CommandRemoveProject,
			Description: "Remove a project",
			Options: []*discordgo.ApplicationCommandOption{
				stringOption("pole", "Name of the pole", true),
				stringOption("thematic", "Name of the thematic", true),
				stringOption("project", "Name of the project", true),
			},
		},
		{
			Name:        CommandGet,
			Description: "Show the poles, thematics and projects",
		},
	}
}

func stringOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func channelOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionChannel,
		Name:        name,
		Description: description,
	}
}
