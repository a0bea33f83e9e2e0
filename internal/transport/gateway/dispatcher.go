package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"github.com/UTT-Alumni/boarding-duck/internal/service/hierarchy"
)

type hierarchyService interface {
	AddPole(ctx context.Context, input hierarchy.AddPoleInput) (*hierarchy.AddPoleResult, error)
	AddThematic(ctx context.Context, input hierarchy.AddThematicInput) (*hierarchy.AddThematicResult, error)
	AddProject(ctx context.Context, input hierarchy.AddProjectInput) (*domain.Project, error)
	DeletePole(ctx context.Context, input hierarchy.DeletePoleInput) (*hierarchy.DeletePoleResult, error)
	DeleteThematic(ctx context.Context, input hierarchy.DeleteThematicInput) (*hierarchy.DeleteThematicResult, error)
	DeleteProject(ctx context.Context, input hierarchy.DeleteProjectInput) error
	GetFormatted(ctx context.Context) (string, error)
}

type onboardingService interface {
	RegistrationModal() domain.Modal
	Register(ctx context.Context, userID string, answers map[string]string) (string, error)
}

// Dispatcher maps each Request variant to one service call and renders the
// outcome as a Reply. It never returns an error: failures become reply text.
type Dispatcher struct {
	hierarchy   hierarchyService
	onboarding  onboardingService
	adminRoleID string
	errors      *ErrorPresenter
	log         *slog.Logger
}

// NewDispatcher creates a Dispatcher. Commands require adminRoleID.
func NewDispatcher(log *slog.Logger, h hierarchyService, o onboardingService, adminRoleID string) *Dispatcher {
	log = log.With("transport", "gateway")
	return &Dispatcher{
		hierarchy:   h,
		onboarding:  o,
		adminRoleID: adminRoleID,
		errors:      NewErrorPresenter(log),
		log:         log,
	}
}

// Handle implements Handler.
func (d *Dispatcher) Handle(ctx context.Context, inv *Invocation) Reply {
	if inv.Err != nil {
		return d.fail(ctx, inv.Err)
	}

	switch r := inv.Request.(type) {
	case CommandRequest:
		if !slices.Contains(inv.RoleIDs, d.adminRoleID) {
			d.log.WarnContext(ctx, "command refused: not an administrator",
				slog.String("user_id", inv.UserID),
				slog.String("user", inv.UserName),
				slog.String("command", inv.Name()),
			)
			return Reply{Content: MessageForbidden, Err: domain.ErrForbidden}
		}
		content, err := d.runCommand(ctx, r.Command)
		if err != nil {
			return d.fail(ctx, err)
		}
		return Reply{Content: content}

	case AcceptRulesRequest:
		modal := d.onboarding.RegistrationModal()
		return Reply{Modal: &modal}

	case RegisterRequest:
		welcome, err := d.onboarding.Register(ctx, inv.UserID, r.Answers)
		if err != nil {
			return d.fail(ctx, err)
		}
		return Reply{Content: welcome}

	case UnsupportedRequest:
		return Reply{Content: messageUnsupported}
	}

	return d.fail(ctx, fmt.Errorf("unhandled request %T", inv.Request))
}

func (d *Dispatcher) fail(ctx context.Context, err error) Reply {
	return Reply{Content: d.errors.Present(ctx, err), Err: err}
}

func (d *Dispatcher) runCommand(ctx context.Context, cmd Command) (string, error) {
	switch c := cmd.(type) {
	case AddPole:
		res, err := d.hierarchy.AddPole(ctx, hierarchy.AddPoleInput{Name: c.Name, Emoji: c.Emoji, ChannelID: c.ChannelID})
		if err != nil {
			return "", err
		}
		msg := ":white_check_mark: Pole added."
		if res.ChannelCreated {
			msg += fmt.Sprintf(" Roles channel <#%s> created.", res.Pole.RolesChannelID)
		}
		return withWarnings(msg, res.Warnings), nil

	case AddThematic:
		res, err := d.hierarchy.AddThematic(ctx, hierarchy.AddThematicInput{
			PoleName: c.Pole, Name: c.Name, Emoji: c.Emoji, ChannelID: c.ChannelID,
		})
		if err != nil {
			return "", err
		}
		return withWarnings(":white_check_mark: Thematic added.", res.Warnings), nil

	case AddProject:
		_, err := d.hierarchy.AddProject(ctx, hierarchy.AddProjectInput{
			PoleName: c.Pole, ThematicName: c.Thematic, Name: c.Name,
			ChannelID: c.ChannelID, CreateChannel: c.CreateChannel,
		})
		if err != nil {
			return "", err
		}
		return ":white_check_mark: Project added.", nil

	case RemovePole:
		res, err := d.hierarchy.DeletePole(ctx, hierarchy.DeletePoleInput{Name: c.Pole})
		if err != nil {
			return "", err
		}
		msg := ":wastebasket: Pole successfully deleted."
		if len(res.OrphanedRoleIDs) > 0 {
			mentions := make([]string, 0, len(res.OrphanedRoleIDs))
			for _, id := range res.OrphanedRoleIDs {
				mentions = append(mentions, "<@&"+id+">")
			}
			msg += "\nThese roles were kept, delete them manually if needed: " + strings.Join(mentions, ", ")
		}
		return withWarnings(msg, res.Warnings), nil

	case RemoveThematic:
		res, err := d.hierarchy.DeleteThematic(ctx, hierarchy.DeleteThematicInput{PoleName: c.Pole, Name: c.Thematic})
		if err != nil {
			return "", err
		}
		return withWarnings(":wastebasket: Thematic successfully deleted.", res.Warnings), nil

	case RemoveProject:
		err := d.hierarchy.DeleteProject(ctx, hierarchy.DeleteProjectInput{
			PoleName: c.Pole, ThematicName: c.Thematic, Name: c.Project,
		})
		if err != nil {
			return "", err
		}
		return ":wastebasket: Project successfully deleted.", nil

	case GetTree:
		return d.hierarchy.GetFormatted(ctx)
	}

	return "", &UnknownCommandError{Name: cmd.commandName()}
}

func withWarnings(msg string, warnings []string) string {
	for _, w := range warnings {
		msg += "\n:warning: " + w
	}
	return msg
}
