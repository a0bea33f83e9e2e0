package hierarchy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// DeletePole removes a Pole with its Thematics and Projects. It touches the
// records only: the roles channel stays, and the Thematic roles are returned
// as orphans instead of being deleted.
func (s *Service) DeletePole(ctx context.Context, input DeletePoleInput) (*DeletePoleResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	pole, err := s.getPole(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	thematics, err := s.thematics.ListByPole(ctx, pole.ID)
	if err != nil {
		return nil, fmt.Errorf("list thematics: %w", err)
	}

	result := &DeletePoleResult{Pole: pole}
	for _, t := range thematics {
		result.OrphanedRoleIDs = append(result.OrphanedRoleIDs, t.RoleID)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var deleteErr error
		if result.ProjectsDeleted, deleteErr = s.projects.DeleteByPole(txCtx, pole.ID); deleteErr != nil {
			return fmt.Errorf("delete projects: %w", deleteErr)
		}
		if result.ThematicsDeleted, deleteErr = s.thematics.DeleteByPole(txCtx, pole.ID); deleteErr != nil {
			return fmt.Errorf("delete thematics: %w", deleteErr)
		}
		if deleteErr = s.poles.Delete(txCtx, pole.ID); deleteErr != nil {
			return fmt.Errorf("delete pole: %w", deleteErr)
		}

		return s.logAudit(txCtx, domain.EntityTypePole, pole.ID, domain.AuditActionDelete, map[string]any{
			"name":              pole.Name,
			"thematics_deleted": result.ThematicsDeleted,
			"projects_deleted":  result.ProjectsDeleted,
			"orphaned_role_ids": result.OrphanedRoleIDs,
		})
	})
	if err != nil {
		return nil, err
	}

	result.Warnings = s.invalidateRoutes(ctx)

	s.log.InfoContext(ctx, "pole deleted",
		slog.String("pole_id", pole.ID.String()),
		slog.String("name", pole.Name),
		slog.Int64("thematics_deleted", result.ThematicsDeleted),
		slog.Int64("projects_deleted", result.ProjectsDeleted),
		slog.Int("orphaned_roles", len(result.OrphanedRoleIDs)),
	)

	return result, nil
}
