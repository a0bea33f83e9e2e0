// Package reaction turns emoji reactions on a Pole's anchor message into
// role grants and revocations.
package reaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

type platform interface {
	BotUserID() string
	CompleteReaction(ctx context.Context, ev domain.ReactionEvent) (domain.ReactionEvent, error)
	FetchMember(ctx context.Context, userID string) (domain.Member, error)
	GrantRole(ctx context.Context, userID, roleID string) error
	RevokeRole(ctx context.Context, userID, roleID string) error
}

type poleLister interface {
	ListByRolesChannel(ctx context.Context, channelID string) ([]domain.Pole, error)
}

type thematicFinder interface {
	GetByEmoji(ctx context.Context, poleID uuid.UUID, emojiKey string) (*domain.Thematic, error)
}

// Outcome is the terminal state reached by one reaction event.
type Outcome int

const (
	OutcomeIgnoredBot Outcome = iota + 1
	OutcomeIgnoredChannel
	OutcomeIgnoredEmoji
	OutcomeGranted
	OutcomeRevoked
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnoredBot:
		return "ignored_bot"
	case OutcomeIgnoredChannel:
		return "ignored_channel"
	case OutcomeIgnoredEmoji:
		return "ignored_emoji"
	case OutcomeGranted:
		return "granted"
	case OutcomeRevoked:
		return "revoked"
	}
	return "unknown"
}

// Service routes reaction events to Thematic roles. It holds no state: events
// may be handled concurrently.
type Service struct {
	platform  platform
	poles     poleLister
	thematics thematicFinder
	log       *slog.Logger
}

// NewService creates a reaction service. poles and thematics are usually the
// routing cache, or the repositories directly when no cache is configured.
func NewService(log *slog.Logger, platform platform, poles poleLister, thematics thematicFinder) *Service {
	return &Service{
		platform:  platform,
		poles:     poles,
		thematics: thematics,
		log:       log.With("service", "reaction"),
	}
}

// Handle processes one reaction toggle. Unrelated reactions are not errors:
// they end in one of the Ignored outcomes. Grant and revoke failures are
// logged and returned, never retried.
func (s *Service) Handle(ctx context.Context, ev domain.ReactionEvent) (Outcome, error) {
	if ev.IsPartial() {
		full, err := s.platform.CompleteReaction(ctx, ev)
		if err != nil {
			return 0, fmt.Errorf("complete reaction: %w", err)
		}
		ev = full
	}

	if ev.UserID == s.platform.BotUserID() {
		return OutcomeIgnoredBot, nil
	}

	poles, err := s.poles.ListByRolesChannel(ctx, ev.ChannelID)
	if err != nil {
		return 0, fmt.Errorf("list poles by channel: %w", err)
	}
	if len(poles) == 0 {
		return OutcomeIgnoredChannel, nil
	}

	pole, thematic, err := s.route(ctx, poles, ev.Emoji.Key())
	if err != nil {
		return 0, err
	}
	if thematic == nil {
		s.log.DebugContext(ctx, "reaction ignored",
			slog.String("channel_id", ev.ChannelID),
			slog.String("emoji", ev.Emoji.String()),
		)
		return OutcomeIgnoredEmoji, nil
	}

	member, err := s.platform.FetchMember(ctx, ev.UserID)
	if err != nil {
		s.logFailure(ctx, ev, pole, thematic, err)
		return 0, fmt.Errorf("fetch member: %w", err)
	}

	var outcome Outcome
	switch ev.Direction {
	case domain.ReactionAdd:
		err = s.platform.GrantRole(ctx, member.UserID, thematic.RoleID)
		outcome = OutcomeGranted
	case domain.ReactionRemove:
		err = s.platform.RevokeRole(ctx, member.UserID, thematic.RoleID)
		outcome = OutcomeRevoked
	default:
		return 0, domain.NewValidationError("direction", fmt.Sprintf("unsupported reaction direction %d", ev.Direction))
	}
	if err != nil {
		s.logFailure(ctx, ev, pole, thematic, err)
		return 0, err
	}

	msg := "thematic role granted"
	if outcome == OutcomeRevoked {
		msg = "thematic role revoked"
	}
	s.log.InfoContext(ctx, msg,
		slog.String("user_id", member.UserID),
		slog.String("member", member.DisplayName),
		slog.String("thematic", thematic.Name),
		slog.String("pole", pole.Name),
		slog.String("role_id", thematic.RoleID),
		slog.String("direction", ev.Direction.String()),
	)

	return outcome, nil
}

// route returns the Thematic bound to key in the first Pole, in creation
// order, that knows it. Both results are nil when none does.
func (s *Service) route(ctx context.Context, poles []domain.Pole, key string) (*domain.Pole, *domain.Thematic, error) {
	for i := range poles {
		t, err := s.thematics.GetByEmoji(ctx, poles[i].ID, key)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, nil, fmt.Errorf("get thematic by emoji: %w", err)
		}
		return &poles[i], t, nil
	}
	return nil, nil, nil
}

func (s *Service) logFailure(ctx context.Context, ev domain.ReactionEvent, pole *domain.Pole, thematic *domain.Thematic, err error) {
	s.log.ErrorContext(ctx, "thematic role sync failed",
		slog.String("user_id", ev.UserID),
		slog.String("thematic", thematic.Name),
		slog.String("pole", pole.Name),
		slog.String("role_id", thematic.RoleID),
		slog.String("direction", ev.Direction.String()),
		slog.String("error", err.Error()),
	)
}
