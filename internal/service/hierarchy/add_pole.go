package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// AddPole creates a Pole. Without a channel, a new text channel named after
// the Pole becomes its roles channel. An anchor message is always posted in
// the roles channel; its reactions are the Thematic selectors.
func (s *Service) AddPole(ctx context.Context, input AddPoleInput) (*AddPoleResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	emoji, err := domain.ParseEmoji(input.Emoji)
	if err != nil {
		return nil, err
	}

	if _, err := s.poles.GetByName(ctx, input.Name); err == nil {
		return nil, &domain.DuplicateNameError{Level: domain.EntityTypePole, Name: input.Name}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get pole: %w", err)
	}

	result := &AddPoleResult{}
	var created []string

	// 1. Roles channel.
	var channel domain.Channel
	if input.ChannelID != nil {
		channel, err = s.textChannel(ctx, *input.ChannelID)
		if err != nil {
			return nil, err
		}

		shared, err := s.poles.ListByRolesChannel(ctx, channel.ID)
		if err != nil {
			return nil, fmt.Errorf("list poles by channel: %w", err)
		}
		for _, other := range shared {
			result.Warnings = append(result.Warnings, fmt.Sprintf(
				"channel <#%s> is already the roles channel of pole %q: emojis are routed to the first pole that knows them",
				channel.ID, other.Name))
		}
	} else {
		channel, err = s.platform.CreateChannel(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		result.ChannelCreated = true
		created = append(created, fmt.Sprintf("channel <#%s>", channel.ID))
	}

	// 2. Anchor message.
	anchorID, err := s.platform.PostMessage(ctx, channel.ID, fmt.Sprintf(s.anchor, emoji.String(), input.Name), nil)
	if err != nil {
		return nil, &domain.PartialFailureError{Step: "post anchor message", Created: created, Err: err}
	}
	created = append(created, fmt.Sprintf("anchor message %s in <#%s>", anchorID, channel.ID))

	// 3. Record.
	var pole *domain.Pole
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		pole, createErr = s.poles.Create(txCtx, &domain.Pole{
			Name:            input.Name,
			Emoji:           emoji.String(),
			RolesChannelID:  channel.ID,
			AnchorMessageID: anchorID,
		})
		if createErr != nil {
			return fmt.Errorf("create pole: %w", createErr)
		}

		return s.logAudit(txCtx, domain.EntityTypePole, pole.ID, domain.AuditActionCreate, map[string]any{
			"name":             pole.Name,
			"emoji":            pole.Emoji,
			"roles_channel_id": pole.RolesChannelID,
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			err = &domain.DuplicateNameError{Level: domain.EntityTypePole, Name: input.Name}
		}
		return nil, &domain.PartialFailureError{Step: "save pole", Created: created, Err: err}
	}
	result.Pole = pole

	stale := s.invalidateRoutes(ctx)

	for _, w := range result.Warnings {
		s.log.WarnContext(ctx, "pole configuration hazard",
			slog.String("pole", pole.Name),
			slog.String("warning", w),
		)
	}
	s.log.InfoContext(ctx, "pole created",
		slog.String("pole_id", pole.ID.String()),
		slog.String("name", pole.Name),
		slog.String("roles_channel_id", pole.RolesChannelID),
		slog.Bool("channel_created", result.ChannelCreated),
	)

	result.Warnings = append(result.Warnings, stale...)
	return result, nil
}
