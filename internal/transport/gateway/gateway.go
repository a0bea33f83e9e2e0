// Package gateway receives Discord gateway events: it routes reaction toggles
// to the reaction synchronizer and answers interactions (admin commands, the
// rules button and the registration form).
package gateway

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	discordadapter "github.com/UTT-Alumni/boarding-duck/internal/adapter/discord"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"github.com/UTT-Alumni/boarding-duck/internal/service/reaction"
	"github.com/UTT-Alumni/boarding-duck/pkg/ctxutil"
)

// ErrNotConnected is reported by Ping until the gateway session is ready.
var ErrNotConnected = errors.New("gateway not connected")

type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type reactionHandler interface {
	Handle(ctx context.Context, ev domain.ReactionEvent) (reaction.Outcome, error)
}

type rulesEnsurer interface {
	EnsureRulesMessage(ctx context.Context) (bool, error)
}

// Gateway binds the services to the events of a Discord session. Handlers
// run concurrently: discordgo starts one goroutine per event.
type Gateway struct {
	responder      responder
	handler        Handler
	reactions      reactionHandler
	rules          rulesEnsurer
	rulesChannelID string
	timeout        time.Duration
	ready          atomic.Bool
	log            *slog.Logger
}

// New creates a Gateway. handler usually is Dispatcher.Handle; it is wrapped
// in the Recovery, RequestID and Logger middleware.
func New(
	log *slog.Logger,
	responder responder,
	handler Handler,
	reactions reactionHandler,
	rules rulesEnsurer,
	rulesChannelID string,
	timeout time.Duration,
) *Gateway {
	log = log.With("transport", "gateway")
	return &Gateway{
		responder:      responder,
		handler:        Chain(Recovery(log), RequestID, Logger(log))(handler),
		reactions:      reactions,
		rules:          rules,
		rulesChannelID: rulesChannelID,
		timeout:        timeout,
		log:            log,
	}
}

// Bind registers the event handlers on s. ctx bounds every handler.
func (g *Gateway) Bind(ctx context.Context, s *discordgo.Session) {
	s.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		if r.User != nil {
			g.log.InfoContext(ctx, "gateway ready", slog.String("user", r.User.Username))
		}
		g.OnReady(ctx)
	})
	s.AddHandler(func(_ *discordgo.Session, _ *discordgo.Resumed) {
		g.ready.Store(true)
	})
	s.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
		g.ready.Store(false)
		g.log.WarnContext(ctx, "gateway disconnected")
	})
	s.AddHandler(func(_ *discordgo.Session, ev *discordgo.MessageReactionAdd) {
		g.OnReaction(ctx, domain.ReactionAdd, ev.MessageReaction)
	})
	s.AddHandler(func(_ *discordgo.Session, ev *discordgo.MessageReactionRemove) {
		g.OnReaction(ctx, domain.ReactionRemove, ev.MessageReaction)
	})
	s.AddHandler(func(_ *discordgo.Session, ev *discordgo.InteractionCreate) {
		g.OnInteraction(ctx, ev.Interaction)
	})
}

// Ping reports whether the gateway session is up.
func (g *Gateway) Ping(_ context.Context) error {
	if !g.ready.Load() {
		return ErrNotConnected
	}
	return nil
}

// OnReady marks the gateway up and makes sure the rules message exists.
func (g *Gateway) OnReady(ctx context.Context) {
	g.ready.Store(true)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	if _, err := g.rules.EnsureRulesMessage(ctx); err != nil {
		g.log.ErrorContext(ctx, "rules message setup failed", slog.String("error", err.Error()))
	}
}

// OnReaction hands a reaction toggle to the reaction synchronizer.
func (g *Gateway) OnReaction(ctx context.Context, dir domain.ReactionDirection, r *discordgo.MessageReaction) {
	if r == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()
	ctx = ctxutil.WithRequestID(ctx, uuid.New().String())
	ctx = ctxutil.WithActorID(ctx, r.UserID)

	// Reaction events bypass the interaction middleware: recover here so a
	// panic never takes the process down.
	defer func() {
		if err := recover(); err != nil {
			g.log.ErrorContext(ctx, "panic recovered",
				slog.Any("error", err),
				slog.String("stack", string(debug.Stack())),
				slog.String("direction", dir.String()),
				slog.String("channel_id", r.ChannelID),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
		}
	}()

	ev := domain.ReactionEvent{
		Direction: dir,
		GuildID:   r.GuildID,
		ChannelID: r.ChannelID,
		MessageID: r.MessageID,
		UserID:    r.UserID,
		Emoji:     discordadapter.ToEmoji(r.Emoji),
	}

	outcome, err := g.reactions.Handle(ctx, ev)
	if err != nil {
		g.log.ErrorContext(ctx, "reaction handling failed",
			slog.String("direction", dir.String()),
			slog.String("channel_id", r.ChannelID),
			slog.String("message_id", r.MessageID),
			slog.String("user_id", r.UserID),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			slog.String("error", err.Error()),
		)
		return
	}
	g.log.DebugContext(ctx, "reaction handled", slog.String("outcome", outcome.String()))
}

// OnInteraction answers an interaction. Commands are acknowledged first with
// an ephemeral deferred reply, then edited with the result.
func (g *Gateway) OnInteraction(ctx context.Context, i *discordgo.Interaction) {
	if i == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	inv := Classify(i, g.rulesChannelID)
	opt := discordgo.WithContext(ctx)

	if _, isCommand := inv.Request.(CommandRequest); isCommand || inv.Err != nil {
		err := g.responder.InteractionRespond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
		}, opt)
		if err != nil {
			g.respondFailed(ctx, inv, err)
			return
		}

		reply := g.handler(ctx, inv)
		content := reply.Content
		if _, err := g.responder.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &content}, opt); err != nil {
			g.respondFailed(ctx, inv, err)
		}
		return
	}

	reply := g.handler(ctx, inv)

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: reply.Content, Flags: discordgo.MessageFlagsEphemeral},
	}
	if reply.Modal != nil {
		resp = &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseModal,
			Data: discordadapter.ToModal(*reply.Modal),
		}
	}
	if err := g.responder.InteractionRespond(i, resp, opt); err != nil {
		g.respondFailed(ctx, inv, err)
	}
}

func (g *Gateway) respondFailed(ctx context.Context, inv *Invocation, err error) {
	g.log.ErrorContext(ctx, "interaction response failed",
		slog.String("interaction", inv.Name()),
		slog.String("interaction_id", inv.ID),
		slog.String("error", err.Error()),
	)
}
