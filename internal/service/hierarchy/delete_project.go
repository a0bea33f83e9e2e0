package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// DeleteProject removes a Project. The name chain is resolved first, so a
// missing Pole, Thematic or Project each fail with their own NotFoundError.
// A dedicated channel is kept.
func (s *Service) DeleteProject(ctx context.Context, input DeleteProjectInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	pole, err := s.getPole(ctx, input.PoleName)
	if err != nil {
		return err
	}
	thematic, err := s.getThematic(ctx, pole, input.ThematicName)
	if err != nil {
		return err
	}
	project, err := s.projects.GetByName(ctx, thematic.ID, input.Name)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewNotFoundError(domain.EntityTypeProject, input.Name)
	}
	if err != nil {
		return fmt.Errorf("get project: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deleteErr := s.projects.Delete(txCtx, project.ID); deleteErr != nil {
			return fmt.Errorf("delete project: %w", deleteErr)
		}

		return s.logAudit(txCtx, domain.EntityTypeProject, project.ID, domain.AuditActionDelete, map[string]any{
			"pole":     pole.Name,
			"thematic": thematic.Name,
			"name":     project.Name,
		})
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "project deleted",
		slog.String("project_id", project.ID.String()),
		slog.String("name", project.Name),
		slog.String("thematic", thematic.Name),
		slog.String("pole", pole.Name),
	)

	return nil
}
