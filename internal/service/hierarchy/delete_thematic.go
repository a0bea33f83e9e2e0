package hierarchy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// DeleteThematic removes the anchor reaction first, so that the emoji stops
// granting the role, then deletes the role, then the record and its
// Projects. Platform objects that are already gone are skipped with a
// warning.
func (s *Service) DeleteThematic(ctx context.Context, input DeleteThematicInput) (*DeleteThematicResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	pole, err := s.getPole(ctx, input.PoleName)
	if err != nil {
		return nil, err
	}
	thematic, err := s.getThematic(ctx, pole, input.Name)
	if err != nil {
		return nil, err
	}

	emoji, err := domain.ParseEmoji(thematic.Emoji)
	if err != nil {
		return nil, fmt.Errorf("stored emoji of thematic %q: %w", thematic.Name, err)
	}

	result := &DeleteThematicResult{Thematic: thematic}

	// 1. Anchor reaction.
	anchorID, err := s.anchorMessageID(ctx, pole)
	if err == nil {
		err = s.platform.RemoveReaction(ctx, pole.RolesChannelID, anchorID, emoji)
	}
	switch {
	case isGone(err):
		result.Warnings = append(result.Warnings, fmt.Sprintf("reaction %s was already gone from the anchor message", emoji))
		s.log.WarnContext(ctx, "anchor reaction already removed",
			slog.String("thematic", thematic.Name),
			slog.String("error", err.Error()),
		)
	case err != nil:
		return nil, err
	}

	// 2. Role.
	switch err := s.platform.DeleteRole(ctx, thematic.RoleID); {
	case isGone(err):
		result.Warnings = append(result.Warnings, fmt.Sprintf("role <@&%s> was already deleted", thematic.RoleID))
		s.log.WarnContext(ctx, "thematic role already deleted",
			slog.String("thematic", thematic.Name),
			slog.String("role_id", thematic.RoleID),
		)
	case err != nil:
		return nil, &domain.PartialFailureError{
			Step:    "delete role",
			Created: []string{fmt.Sprintf("thematic %q record (its reaction is already removed)", thematic.Name)},
			Err:     err,
		}
	}

	// 3. Record.
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, deleteErr := s.projects.DeleteByThematic(txCtx, thematic.ID); deleteErr != nil {
			return fmt.Errorf("delete projects: %w", deleteErr)
		}
		if deleteErr := s.thematics.Delete(txCtx, thematic.ID); deleteErr != nil {
			return fmt.Errorf("delete thematic: %w", deleteErr)
		}

		return s.logAudit(txCtx, domain.EntityTypeThematic, thematic.ID, domain.AuditActionDelete, map[string]any{
			"pole":    pole.Name,
			"name":    thematic.Name,
			"emoji":   thematic.Emoji,
			"role_id": thematic.RoleID,
		})
	})
	if err != nil {
		return nil, &domain.PartialFailureError{
			Step:    "delete thematic record",
			Created: []string{fmt.Sprintf("thematic %q record (reaction and role are already removed)", thematic.Name)},
			Err:     err,
		}
	}

	result.Warnings = append(result.Warnings, s.invalidateRoutes(ctx)...)

	s.log.InfoContext(ctx, "thematic deleted",
		slog.String("thematic_id", thematic.ID.String()),
		slog.String("name", thematic.Name),
		slog.String("pole", pole.Name),
		slog.String("role_id", thematic.RoleID),
	)

	return result, nil
}
