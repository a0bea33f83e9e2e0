// Package platformtest provides an in-memory chat platform for tests. It
// follows the same contract as the discord adapter: grant and revoke are
// idempotent, and missing objects fail with domain.ErrUnknownResource.
package platformtest

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"sync"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// Op names accepted by FailOn.
const (
	OpCreateRole     = "create role"
	OpDeleteRole     = "delete role"
	OpCreateChannel  = "create channel"
	OpFetchChannel   = "fetch channel"
	OpPostMessage    = "post message"
	OpFetchMessages  = "fetch messages"
	OpAddReaction    = "add reaction"
	OpRemoveReaction = "remove reaction"
	OpFetchReactions = "fetch reactions"
	OpGrantRole      = "grant role"
	OpRevokeRole     = "revoke role"
	OpFetchMember    = "fetch member"
)

type message struct {
	domain.Message
	buttons []domain.Button
	// emoji key -> users (the bot included) in reaction order
	reactions map[string][]string
	emojis    map[string]domain.Emoji
	order     []string
}

// Platform is a fake guild. The zero value is not usable, call New.
type Platform struct {
	mu sync.Mutex

	guildID   string
	botUserID string
	seq       int

	roles    map[string]string // id -> name
	channels map[string]domain.Channel
	messages map[string]*message // message id -> message
	members  map[string]*domain.Member

	failures map[string]error
	calls    []string
}

// New creates a fake guild whose bot user is botUserID.
func New(guildID, botUserID string) *Platform {
	return &Platform{
		guildID:   guildID,
		botUserID: botUserID,
		roles:     make(map[string]string),
		channels:  make(map[string]domain.Channel),
		messages:  make(map[string]*message),
		members:   make(map[string]*domain.Member),
		failures:  make(map[string]error),
	}
}

// ---------------------------------------------------------------------------
// Test setup and inspection
// ---------------------------------------------------------------------------

// AddChannel registers an existing channel.
func (p *Platform) AddChannel(id, name string, typ domain.ChannelType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.channels[id] = domain.Channel{ID: id, GuildID: p.guildID, Name: name, Type: typ}
}

// AddMember registers a guild member.
func (p *Platform) AddMember(userID, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.members[userID] = &domain.Member{UserID: userID, DisplayName: name}
}

// FailOn makes every following call of op fail with err. A nil err clears it.
func (p *Platform) FailOn(op string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err == nil {
		delete(p.failures, op)
		return
	}
	p.failures[op] = err
}

// Calls returns the operations performed so far, in order.
func (p *Platform) Calls() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.calls)
}

// RoleExists reports whether a role with this id exists.
func (p *Platform) RoleExists(roleID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.roles[roleID]
	return ok
}

// RoleIDByName returns the id of the first role named name.
func (p *Platform) RoleIDByName(name string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, n := range p.roles {
		if n == name {
			return id, true
		}
	}
	return "", false
}

// MemberHasRole reports whether the member currently holds roleID.
func (p *Platform) MemberHasRole(userID, roleID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, ok := p.members[userID]
	return ok && m.HasRole(roleID)
}

// ChannelByName returns the first channel named name.
func (p *Platform) ChannelByName(name string) (domain.Channel, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, ch := range p.channels {
		if ch.Name == name {
			return ch, true
		}
	}
	return domain.Channel{}, false
}

// MessageReactionKeys returns the emoji keys present on a message.
func (p *Platform) MessageReactionKeys(messageID string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	m, ok := p.messages[messageID]
	if !ok {
		return nil
	}
	return slices.Clone(m.order)
}

// MessageButtons returns the buttons attached to a message.
func (p *Platform) MessageButtons(messageID string) []domain.Button {
	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := p.messages[messageID]; ok {
		return slices.Clone(m.buttons)
	}
	return nil
}

// React simulates a member putting emoji on a message and returns the event
// the gateway would deliver.
func (p *Platform) React(userID, channelID, messageID string, emoji domain.Emoji) domain.ReactionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := p.messages[messageID]; ok {
		m.addReaction(userID, emoji)
	}
	return domain.ReactionEvent{
		Direction: domain.ReactionAdd,
		GuildID:   p.guildID,
		ChannelID: channelID,
		MessageID: messageID,
		UserID:    userID,
		Emoji:     emoji,
	}
}

// Unreact simulates a member taking emoji off a message.
func (p *Platform) Unreact(userID, channelID, messageID string, emoji domain.Emoji) domain.ReactionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	if m, ok := p.messages[messageID]; ok {
		m.removeUserReaction(userID, emoji.Key())
	}
	return domain.ReactionEvent{
		Direction: domain.ReactionRemove,
		GuildID:   p.guildID,
		ChannelID: channelID,
		MessageID: messageID,
		UserID:    userID,
		Emoji:     emoji,
	}
}

// ---------------------------------------------------------------------------
// Platform contract
// ---------------------------------------------------------------------------

// BotUserID returns the bot's user id.
func (p *Platform) BotUserID() string { return p.botUserID }

// CreateRole creates a role.
func (p *Platform) CreateRole(_ context.Context, name string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(OpCreateRole); err != nil {
		return "", err
	}
	id := p.nextID("role")
	p.roles[id] = name
	return id, nil
}

// DeleteRole deletes a role and takes it off every member.
func (p *Platform) DeleteRole(_ context.Context, roleID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(OpDeleteRole); err != nil {
		return err
	}
	if _, ok := p.roles[roleID]; !ok {
		return unknown(OpDeleteRole, "role", roleID)
	}
	delete(p.roles, roleID)
	for _, m := range p.members {
		m.RoleIDs = slices.DeleteFunc(m.RoleIDs, func(id string) bool { return id == roleID })
	}
	return nil
}

// CreateChannel creates a text channel.
func (p *Platform) CreateChannel(_ context.Context, name string) (domain.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(OpCreateChannel); err != nil {
		return domain.Channel{}, err
	}
	ch := domain.Channel{ID: p.nextID("channel"), GuildID: p.guildID, Name: name, Type: domain.ChannelTypeText}
	p.channels[ch.ID] = ch
	return ch, nil
}

// FetchChannel returns a channel.
func (p *Platform) FetchChannel(_ context.Context, channelID string) (domain.Channel, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(OpFetchChannel); err != nil {
		return domain.Channel{}, err
	}
	ch, ok := p.channels[channelID]
	if !ok {
		return domain.Channel{}, unknown(OpFetchChannel, "channel", channelID)
	}
	return ch, nil
}

// PostMessage posts a message authored by the bot.
func (p *Platform) PostMessage(_ context.Context, channelID, content string, buttons []domain.Button) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(OpPostMessage); err != nil {
		return "", err
	}
	if _, ok := p.channels[channelID]; !ok {
		return "", unknown(OpPostMessage, "channel", channelID)
	}
	id := p.nextID("message")
	p.messages[id] = &message{
		Message:   domain.Message{ID: id, ChannelID: channelID, AuthorID: p.botUserID, Content: content},
		buttons:   slices.Clone(buttons),
		reactions: make(map[string][]string),
		emojis:    make(map[string]domain.Emoji),
	}
	return id, nil
}

// FetchMessages returns the messages of a channel, oldest first.
func (p *Platform) FetchMessages(_ context.Context, channelID string) ([]domain.Message, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(OpFetchMessages); err != nil {
		return nil, err
	}
	if _, ok := p.channels[channelID]; !ok {
		return nil, unknown(OpFetchMessages, "channel", channelID)
	}

	var out []domain.Message
	for _, m := range p.messages {
		if m.ChannelID == channelID {
			msg := m.Message
			msg.Reactions = m.snapshot()
			out = append(out, msg)
		}
	}
	sort.Slice(out, func(i, j int) bool { return seqOf(out[i].ID) < seqOf(out[j].ID) })
	return out, nil
}

// AddReaction puts the bot's reaction on a message.
func (p *Platform) AddReaction(_ context.Context, _, messageID string, emoji domain.Emoji) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(OpAddReaction); err != nil {
		return err
	}
	m, ok := p.messages[messageID]
	if !ok {
		return unknown(OpAddReaction, "message", messageID)
	}
	m.addReaction(p.botUserID, emoji)
	return nil
}

// RemoveReaction removes every reaction with emoji from a message.
func (p *Platform) RemoveReaction(_ context.Context, _, messageID string, emoji domain.Emoji) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(OpRemoveReaction); err != nil {
		return err
	}
	m, ok := p.messages[messageID]
	if !ok {
		return unknown(OpRemoveReaction, "message", messageID)
	}
	key := emoji.Key()
	if _, ok := m.reactions[key]; !ok {
		return unknown(OpRemoveReaction, "reaction", emoji.String())
	}
	delete(m.reactions, key)
	delete(m.emojis, key)
	m.order = slices.DeleteFunc(m.order, func(k string) bool { return k == key })
	return nil
}

// FetchReactions returns the reactions of a message.
func (p *Platform) FetchReactions(_ context.Context, _, messageID string) ([]domain.Reaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(OpFetchReactions); err != nil {
		return nil, err
	}
	m, ok := p.messages[messageID]
	if !ok {
		return nil, unknown(OpFetchReactions, "message", messageID)
	}
	return m.snapshot(), nil
}

// GrantRole gives roleID to a member. Granting twice is a no-op.
func (p *Platform) GrantRole(_ context.Context, userID, roleID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(OpGrantRole); err != nil {
		return err
	}
	m, err := p.roleTarget(OpGrantRole, userID, roleID)
	if err != nil {
		return err
	}
	if !m.HasRole(roleID) {
		m.RoleIDs = append(m.RoleIDs, roleID)
	}
	return nil
}

// RevokeRole takes roleID from a member. Revoking a missing role is a no-op.
func (p *Platform) RevokeRole(_ context.Context, userID, roleID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(OpRevokeRole); err != nil {
		return err
	}
	m, err := p.roleTarget(OpRevokeRole, userID, roleID)
	if err != nil {
		return err
	}
	m.RoleIDs = slices.DeleteFunc(m.RoleIDs, func(id string) bool { return id == roleID })
	return nil
}

// FetchMember returns a member.
func (p *Platform) FetchMember(_ context.Context, userID string) (domain.Member, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.begin(OpFetchMember); err != nil {
		return domain.Member{}, err
	}
	m, ok := p.members[userID]
	if !ok {
		return domain.Member{}, unknown(OpFetchMember, "member", userID)
	}
	out := *m
	out.RoleIDs = slices.Clone(m.RoleIDs)
	return out, nil
}

// CompleteReaction fills the guild of a partial event.
func (p *Platform) CompleteReaction(_ context.Context, ev domain.ReactionEvent) (domain.ReactionEvent, error) {
	if ev.Emoji.IsZero() || ev.ChannelID == "" {
		return ev, domain.NewPlatformError("complete reaction", domain.NewValidationError("event", "cannot be completed"))
	}
	if ev.GuildID == "" {
		ev.GuildID = p.guildID
	}
	return ev, nil
}

// ---------------------------------------------------------------------------
// Helpers (callers hold p.mu)
// ---------------------------------------------------------------------------

func (p *Platform) begin(op string) error {
	p.calls = append(p.calls, op)
	if err, ok := p.failures[op]; ok {
		return domain.NewPlatformError(op, err)
	}
	return nil
}

func (p *Platform) nextID(kind string) string {
	p.seq++
	return kind + "-" + strconv.Itoa(p.seq)
}

func (p *Platform) roleTarget(op, userID, roleID string) (*domain.Member, error) {
	if _, ok := p.roles[roleID]; !ok {
		return nil, unknown(op, "role", roleID)
	}
	m, ok := p.members[userID]
	if !ok {
		return nil, unknown(op, "member", userID)
	}
	return m, nil
}

func (m *message) addReaction(userID string, emoji domain.Emoji) {
	key := emoji.Key()
	if _, ok := m.reactions[key]; !ok {
		m.order = append(m.order, key)
		m.emojis[key] = emoji
	}
	if !slices.Contains(m.reactions[key], userID) {
		m.reactions[key] = append(m.reactions[key], userID)
	}
}

func (m *message) removeUserReaction(userID, key string) {
	users := slices.DeleteFunc(m.reactions[key], func(id string) bool { return id == userID })
	if len(users) > 0 {
		m.reactions[key] = users
		return
	}
	delete(m.reactions, key)
	delete(m.emojis, key)
	m.order = slices.DeleteFunc(m.order, func(k string) bool { return k == key })
}

func (m *message) snapshot() []domain.Reaction {
	out := make([]domain.Reaction, 0, len(m.order))
	for _, key := range m.order {
		users := slices.Clone(m.reactions[key])
		out = append(out, domain.Reaction{Emoji: m.emojis[key], Count: len(users), UserIDs: users})
	}
	return out
}

func seqOf(id string) int {
	for i := len(id) - 1; i >= 0; i-- {
		if id[i] == '-' {
			n, _ := strconv.Atoi(id[i+1:])
			return n
		}
	}
	return 0
}

func unknown(op, kind, id string) error {
	return domain.NewPlatformError(op, fmt.Errorf("%s %s: %w", kind, id, domain.ErrUnknownResource))
}
