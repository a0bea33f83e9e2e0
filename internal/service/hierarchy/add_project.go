package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

// AddProject creates a Project under a Thematic. A channel is created only
// when CreateChannel is set and no ChannelID is given.
func (s *Service) AddProject(ctx context.Context, input AddProjectInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	pole, err := s.getPole(ctx, input.PoleName)
	if err != nil {
		return nil, err
	}
	thematic, err := s.getThematic(ctx, pole, input.ThematicName)
	if err != nil {
		return nil, err
	}

	if _, err := s.projects.GetByName(ctx, thematic.ID, input.Name); err == nil {
		return nil, &domain.DuplicateNameError{Level: domain.EntityTypeProject, Name: input.Name}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get project: %w", err)
	}

	var (
		channelID *string
		created   []string
	)
	switch {
	case input.ChannelID != nil:
		ch, err := s.textChannel(ctx, *input.ChannelID)
		if err != nil {
			return nil, err
		}
		channelID = &ch.ID
	case input.CreateChannel:
		ch, err := s.platform.CreateChannel(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		channelID = &ch.ID
		created = append(created, fmt.Sprintf("channel <#%s>", ch.ID))
	}

	var project *domain.Project
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		project, createErr = s.projects.Create(txCtx, &domain.Project{
			ThematicID: thematic.ID,
			Name:       input.Name,
			ChannelID:  channelID,
		})
		if createErr != nil {
			return fmt.Errorf("create project: %w", createErr)
		}

		return s.logAudit(txCtx, domain.EntityTypeProject, project.ID, domain.AuditActionCreate, map[string]any{
			"pole":     pole.Name,
			"thematic": thematic.Name,
			"name":     project.Name,
		})
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			err = &domain.DuplicateNameError{Level: domain.EntityTypeProject, Name: input.Name}
		}
		if len(created) > 0 {
			return nil, &domain.PartialFailureError{Step: "save project", Created: created, Err: err}
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "project created",
		slog.String("project_id", project.ID.String()),
		slog.String("name", project.Name),
		slog.String("thematic", thematic.Name),
		slog.String("pole", pole.Name),
	)

	return project, nil
}
