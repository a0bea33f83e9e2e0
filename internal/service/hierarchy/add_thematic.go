package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// AddThematic creates a Thematic under a Pole: a platform role named after it,
// then the emoji reaction on the Pole's anchor message, then the record.
// A failure after the role exists returns a *domain.PartialFailureError; the
// role and reaction are left for the administrator to clean up.
func (s *Service) AddThematic(ctx context.Context, input AddThematicInput) (*AddThematicResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	emoji, err := domain.ParseEmoji(input.Emoji)
	if err != nil {
		return nil, err
	}
	key := emoji.Key()

	pole, err := s.getPole(ctx, input.PoleName)
	if err != nil {
		return nil, err
	}

	if _, err := s.thematics.GetByName(ctx, pole.ID, input.Name); err == nil {
		return nil, &domain.DuplicateNameError{Level: domain.EntityTypeThematic, Name: input.Name}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get thematic: %w", err)
	}

	if taken, err := s.thematics.GetByEmoji(ctx, pole.ID, key); err == nil {
		return nil, &domain.DuplicateEmojiError{Pole: pole.Name, Emoji: emoji.String(), Thematic: taken.Name}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get thematic by emoji: %w", err)
	}

	var channelID *string
	if input.ChannelID != nil {
		ch, err := s.textChannel(ctx, *input.ChannelID)
		if err != nil {
			return nil, err
		}
		channelID = &ch.ID
	}

	anchorID, err := s.anchorMessageID(ctx, pole)
	if err != nil {
		return nil, err
	}

	warnings, err := s.sharedChannelConflicts(ctx, pole, key, emoji)
	if err != nil {
		return nil, err
	}

	// 1. Role.
	roleID, err := s.platform.CreateRole(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	created := []string{fmt.Sprintf("role <@&%s>", roleID)}

	// 2. Reaction on the anchor message.
	if err := s.platform.AddReaction(ctx, pole.RolesChannelID, anchorID, emoji); err != nil {
		return nil, &domain.PartialFailureError{Step: "add anchor reaction", Created: created, Err: err}
	}
	created = append(created, fmt.Sprintf("reaction %s on the anchor message", emoji))

	// 3. Record.
	var thematic *domain.Thematic
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		thematic, createErr = s.thematics.Create(txCtx, &domain.Thematic{
			PoleID:    pole.ID,
			Name:      input.Name,
			Emoji:     emoji.String(),
			EmojiKey:  key,
			RoleID:    roleID,
			ChannelID: channelID,
		})
		if createErr != nil {
			return fmt.Errorf("create thematic: %w", createErr)
		}

		return s.logAudit(txCtx, domain.EntityTypeThematic, thematic.ID, domain.AuditActionCreate, map[string]any{
			"pole":    pole.Name,
			"name":    thematic.Name,
			"emoji":   thematic.Emoji,
			"role_id": thematic.RoleID,
		})
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDuplicateEmoji) && errors.Is(err, domain.ErrAlreadyExists) {
			err = &domain.DuplicateNameError{Level: domain.EntityTypeThematic, Name: input.Name}
		}
		return nil, &domain.PartialFailureError{Step: "save thematic", Created: created, Err: err}
	}

	stale := s.invalidateRoutes(ctx)

	for _, w := range warnings {
		s.log.WarnContext(ctx, "thematic configuration hazard",
			slog.String("pole", pole.Name),
			slog.String("thematic", thematic.Name),
			slog.String("warning", w),
		)
	}
	s.log.InfoContext(ctx, "thematic created",
		slog.String("thematic_id", thematic.ID.String()),
		slog.String("name", thematic.Name),
		slog.String("pole", pole.Name),
		slog.String("emoji", thematic.Emoji),
		slog.String("role_id", roleID),
	)

	return &AddThematicResult{Thematic: thematic, Warnings: append(warnings, stale...)}, nil
}

// sharedChannelConflicts reports Thematics of other Poles bound to the same
// roles channel and emoji. Reactions with that emoji go to the first Pole.
func (s *Service) sharedChannelConflicts(ctx context.Context, pole *domain.Pole, key string, emoji domain.Emoji) ([]string, error) {
	if !pole.HasRolesChannel() {
		return nil, nil
	}

	shared, err := s.poles.ListByRolesChannel(ctx, pole.RolesChannelID)
	if err != nil {
		return nil, fmt.Errorf("list poles by channel: %w", err)
	}

	var warnings []string
	for _, other := range shared {
		if other.ID == pole.ID {
			continue
		}
		t, err := s.thematics.GetByEmoji(ctx, other.ID, key)
		if errors.Is(err, domain.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("get thematic by emoji: %w", err)
		}
		warnings = append(warnings, fmt.Sprintf(
			"emoji %s is also used by thematic %q of pole %q in the same roles channel: reactions go to the pole created first",
			emoji, t.Name, other.Name))
	}
	return warnings, nil
}
