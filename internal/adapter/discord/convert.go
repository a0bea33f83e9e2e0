package discord

import (
	"sort"

	"github.com/bwmarrin/discordgo"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

const (
	messagePageSize  = 100
	reactionPageSize = 100
)

// ---------------------------------------------------------------------------
// discordgo -> domain
// ---------------------------------------------------------------------------

func toChannel(ch *discordgo.Channel) domain.Channel {
	return domain.Channel{
		ID:      ch.ID,
		GuildID: ch.GuildID,
		Name:    ch.Name,
		Type:    toChannelType(ch.Type),
	}
}

// toChannelType maps every channel that accepts messages and reactions to
// domain.ChannelTypeText.
func toChannelType(t discordgo.ChannelType) domain.ChannelType {
	switch t {
	case discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews:
		return domain.ChannelTypeText
	default:
		return domain.ChannelTypeOther
	}
}

// ToEmoji converts a gateway emoji into its domain form.
func ToEmoji(e discordgo.Emoji) domain.Emoji {
	return domain.Emoji{Name: e.Name, ID: e.ID, Animated: e.Animated}
}

func toEmoji(e *discordgo.Emoji) domain.Emoji {
	if e == nil {
		return domain.Emoji{}
	}
	return ToEmoji(*e)
}

func toMember(m *discordgo.Member) domain.Member {
	member := domain.Member{
		DisplayName: m.Nick,
		RoleIDs:     m.Roles,
	}
	if m.User != nil {
		member.UserID = m.User.ID
		member.DisplayName = m.DisplayName()
	}
	return member
}

// toMessages converts a page of messages and orders it oldest first.
func toMessages(msgs []*discordgo.Message) []domain.Message {
	out := make([]domain.Message, 0, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		msg := domain.Message{
			ID:        m.ID,
			ChannelID: m.ChannelID,
			Content:   m.Content,
		}
		if m.Author != nil {
			msg.AuthorID = m.Author.ID
		}
		for _, r := range m.Reactions {
			if r == nil {
				continue
			}
			msg.Reactions = append(msg.Reactions, domain.Reaction{Emoji: toEmoji(r.Emoji), Count: r.Count})
		}
		out = append(out, msg)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return snowflakeLess(out[i].ID, out[j].ID)
	})
	return out
}

// snowflakeLess orders Discord ids numerically without parsing them.
func snowflakeLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// ---------------------------------------------------------------------------
// domain -> discordgo
// ---------------------------------------------------------------------------

// toComponents puts the buttons on a single action row. Nil when there are none.
func toComponents(buttons []domain.Button) []discordgo.MessageComponent {
	if len(buttons) == 0 {
		return nil
	}

	row := discordgo.ActionsRow{}
	for _, b := range buttons {
		btn := discordgo.Button{
			Label:    b.Label,
			Style:    discordgo.PrimaryButton,
			CustomID: b.CustomID,
		}
		if b.Emoji != "" {
			if e, err := domain.ParseEmoji(b.Emoji); err == nil {
				btn.Emoji = &discordgo.ComponentEmoji{Name: e.Name, ID: e.ID, Animated: e.Animated}
			}
		}
		row.Components = append(row.Components, btn)
	}
	return []discordgo.MessageComponent{row}
}

// ToModal converts a domain modal into the interaction response payload data.
func ToModal(m domain.Modal) *discordgo.InteractionResponseData {
	rows := make([]discordgo.MessageComponent, 0, len(m.Fields))
	for _, f := range m.Fields {
		style := discordgo.TextInputShort
		if f.Paragraph {
			style = discordgo.TextInputParagraph
		}
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    f.ID,
					Label:       f.Label,
					Style:       style,
					Placeholder: f.Placeholder,
					Required:    f.Required,
				},
			},
		})
	}

	return &discordgo.InteractionResponseData{
		CustomID:   m.CustomID,
		Title:      m.Title,
		Components: rows,
	}
}
