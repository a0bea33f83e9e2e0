package domain

// Channel is a chat channel as seen by the bot.
type Channel struct {
	ID      string
	GuildID string
	Name    string
	Type    ChannelType
}

// IsText reports whether messages and reactions can be posted in the channel.
func (c Channel) IsText() bool { return c.Type == ChannelTypeText }

// Message is a posted message with its reactions.
type Message struct {
	ID        string
	ChannelID string
	AuthorID  string
	Content   string
	Reactions []Reaction
}

// Reaction is one emoji on a message and the users who put it.
type Reaction struct {
	Emoji   Emoji
	Count   int
	UserIDs []string
}

// Member is a guild member.
type Member struct {
	UserID      string
	DisplayName string
	RoleIDs     []string
}

// HasRole reports whether the member holds roleID.
func (m Member) HasRole(roleID string) bool {
	for _, id := range m.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

// Button is a clickable component attached to a message.
type Button struct {
	CustomID string
	Label    string
	Emoji    string
}

// Modal is a form shown to a user.
type Modal struct {
	CustomID string
	Title    string
	Fields   []ModalField
}

// ModalField is a single text input of a Modal.
type ModalField struct {
	ID          string
	Label       string
	Placeholder string
	Required    bool
	Paragraph   bool
}

// ReactionEvent is a reaction toggle delivered by the platform.
type ReactionEvent struct {
	Direction ReactionDirection
	GuildID   string
	ChannelID string
	MessageID string
	UserID    string
	Emoji     Emoji
}

// IsPartial reports whether the platform delivered a stub that must be
// completed before routing.
func (e ReactionEvent) IsPartial() bool {
	return e.GuildID == "" || e.ChannelID == "" || e.Emoji.IsZero()
}
