// Package discord implements the platform adapter on top of discordgo.
// Every REST call is scoped to the configured guild and carries the caller's
// context. Failures are returned as *domain.PlatformError.
package discord

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// Adapter provides chat-platform primitives for a single guild.
type Adapter struct {
	session *discordgo.Session
	guildID string
	timeout time.Duration
	log     *slog.Logger
}

// New creates a new Adapter. A zero timeout leaves request deadlines to the
// caller's context.
func New(session *discordgo.Session, guildID string, timeout time.Duration, log *slog.Logger) *Adapter {
	return &Adapter{
		session: session,
		guildID: guildID,
		timeout: timeout,
		log:     log.With("adapter", "discord"),
	}
}

// GuildID returns the guild the adapter operates on.
func (a *Adapter) GuildID() string { return a.guildID }

// BotUserID returns the user id of the connected bot, empty before the
// gateway reported Ready.
func (a *Adapter) BotUserID() string {
	if a.session.State == nil || a.session.State.User == nil {
		return ""
	}
	return a.session.State.User.ID
}

func (a *Adapter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, a.timeout)
}

// ---------------------------------------------------------------------------
// Roles
// ---------------------------------------------------------------------------

// CreateRole creates a mentionable guild role and returns its id.
func (a *Adapter) CreateRole(ctx context.Context, name string) (string, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	mentionable := true
	role, err := a.session.GuildRoleCreate(a.guildID, &discordgo.RoleParams{
		Name:        name,
		Mentionable: &mentionable,
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", mapError("create role", err)
	}
	return role.ID, nil
}

// DeleteRole deletes a guild role.
func (a *Adapter) DeleteRole(ctx context.Context, roleID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	return mapError("delete role", a.session.GuildRoleDelete(a.guildID, roleID, discordgo.WithContext(ctx)))
}

// GrantRole adds roleID to the member. Granting a role the member already
// holds is a no-op on the platform side.
func (a *Adapter) GrantRole(ctx context.Context, userID, roleID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	return mapError("grant role", a.session.GuildMemberRoleAdd(a.guildID, userID, roleID, discordgo.WithContext(ctx)))
}

// RevokeRole removes roleID from the member. Revoking a role the member does
// not hold is a no-op on the platform side.
func (a *Adapter) RevokeRole(ctx context.Context, userID, roleID string) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	return mapError("revoke role", a.session.GuildMemberRoleRemove(a.guildID, userID, roleID, discordgo.WithContext(ctx)))
}

// FetchMember returns a guild member.
func (a *Adapter) FetchMember(ctx context.Context, userID string) (domain.Member, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	m, err := a.session.GuildMember(a.guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Member{}, mapError("fetch member", err)
	}
	return toMember(m), nil
}

// ---------------------------------------------------------------------------
// Channels
// ---------------------------------------------------------------------------

// CreateChannel creates a text channel in the guild.
func (a *Adapter) CreateChannel(ctx context.Context, name string) (domain.Channel, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	ch, err := a.session.GuildChannelCreate(a.guildID, name, discordgo.ChannelTypeGuildText, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Channel{}, mapError("create channel", err)
	}
	return toChannel(ch), nil
}

// FetchChannel returns a channel by id.
func (a *Adapter) FetchChannel(ctx context.Context, channelID string) (domain.Channel, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	ch, err := a.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Channel{}, mapError("fetch channel", err)
	}
	return toChannel(ch), nil
}

// ---------------------------------------------------------------------------
// Messages and reactions
// ---------------------------------------------------------------------------

// PostMessage sends content to a channel, with buttons on a single row when
// given, and returns the message id.
func (a *Adapter) PostMessage(ctx context.Context, channelID, content string, buttons []domain.Button) (string, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content:    content,
		Components: toComponents(buttons),
	}, discordgo.WithContext(ctx))
	if err != nil {
		return "", mapError("post message", err)
	}
	return msg.ID, nil
}

// FetchMessages returns the oldest page of messages of a channel, oldest first.
func (a *Adapter) FetchMessages(ctx context.Context, channelID string) ([]domain.Message, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msgs, err := a.session.ChannelMessages(channelID, messagePageSize, "", "0", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError("fetch messages", err)
	}
	return toMessages(msgs), nil
}

// AddReaction reacts with emoji on a message.
func (a *Adapter) AddReaction(ctx context.Context, channelID, messageID string, emoji domain.Emoji) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	return mapError("add reaction", a.session.MessageReactionAdd(channelID, messageID, emoji.APIName(), discordgo.WithContext(ctx)))
}

// RemoveReaction removes every reaction with emoji from a message, so that
// nobody can toggle it anymore.
func (a *Adapter) RemoveReaction(ctx context.Context, channelID, messageID string, emoji domain.Emoji) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	return mapError("remove reaction", a.session.MessageReactionsRemoveEmoji(channelID, messageID, emoji.APIName(), discordgo.WithContext(ctx)))
}

// FetchReactions returns every reaction of a message with the users who put it.
func (a *Adapter) FetchReactions(ctx context.Context, channelID, messageID string) ([]domain.Reaction, error) {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	msg, err := a.session.ChannelMessage(channelID, messageID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, mapError("fetch message", err)
	}

	reactions := make([]domain.Reaction, 0, len(msg.Reactions))
	for _, r := range msg.Reactions {
		if r == nil || r.Emoji == nil {
			continue
		}
		users, err := a.session.MessageReactions(channelID, messageID, r.Emoji.APIName(), reactionPageSize, "", "", discordgo.WithContext(ctx))
		if err != nil {
			return nil, mapError("fetch reactions", err)
		}
		reaction := domain.Reaction{Emoji: toEmoji(r.Emoji), Count: r.Count}
		for _, u := range users {
			reaction.UserIDs = append(reaction.UserIDs, u.ID)
		}
		reactions = append(reactions, reaction)
	}
	return reactions, nil
}

// CompleteReaction hydrates a partial reaction event. The guild is resolved
// from the channel. An event without emoji cannot be completed.
func (a *Adapter) CompleteReaction(ctx context.Context, ev domain.ReactionEvent) (domain.ReactionEvent, error) {
	if ev.Emoji.IsZero() {
		return ev, domain.NewPlatformError("complete reaction", domain.NewValidationError("emoji", "missing from event"))
	}
	if ev.ChannelID == "" {
		return ev, domain.NewPlatformError("complete reaction", domain.NewValidationError("channel_id", "missing from event"))
	}
	if ev.GuildID != "" {
		return ev, nil
	}

	ch, err := a.FetchChannel(ctx, ev.ChannelID)
	if err != nil {
		return ev, err
	}
	ev.GuildID = ch.GuildID
	a.log.Debug("reaction event completed",
		slog.String("channel_id", ev.ChannelID),
		slog.String("guild_id", ev.GuildID),
	)
	return ev, nil
}
