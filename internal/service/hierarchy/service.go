// Package hierarchy manages the Pole -> Thematic -> Project tree and keeps the
// persisted records, the platform roles and the anchor reactions in step.
//
// Multi-step operations run in a fixed order (channel, role, reaction, then
// persistence on create; the reverse on delete). There is no distributed
// transaction: a platform failure half way returns a
// *domain.PartialFailureError listing what was left behind.
package hierarchy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/UTT-Alumni/boarding-duck/internal/domain"
	"github.com/UTT-Alumni/boarding-duck/pkg/ctxutil"
)

type poleRepo interface {
	List(ctx context.Context) ([]domain.Pole, error)
	GetByName(ctx context.Context, name string) (*domain.Pole, error)
	ListByRolesChannel(ctx context.Context, channelID string) ([]domain.Pole, error)
	Create(ctx context.Context, p *domain.Pole) (*domain.Pole, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type thematicRepo interface {
	List(ctx context.Context) ([]domain.Thematic, error)
	ListByPole(ctx context.Context, poleID uuid.UUID) ([]domain.Thematic, error)
	GetByName(ctx context.Context, poleID uuid.UUID, name string) (*domain.Thematic, error)
	GetByEmoji(ctx context.Context, poleID uuid.UUID, emojiKey string) (*domain.Thematic, error)
	Create(ctx context.Context, t *domain.Thematic) (*domain.Thematic, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPole(ctx context.Context, poleID uuid.UUID) (int64, error)
}

type projectRepo interface {
	List(ctx context.Context) ([]domain.Project, error)
	GetByName(ctx context.Context, thematicID uuid.UUID, name string) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByThematic(ctx context.Context, thematicID uuid.UUID) (int64, error)
	DeleteByPole(ctx context.Context, poleID uuid.UUID) (int64, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type platform interface {
	CreateRole(ctx context.Context, name string) (string, error)
	DeleteRole(ctx context.Context, roleID string) error
	CreateChannel(ctx context.Context, name string) (domain.Channel, error)
	FetchChannel(ctx context.Context, channelID string) (domain.Channel, error)
	PostMessage(ctx context.Context, channelID, content string, buttons []domain.Button) (string, error)
	FetchMessages(ctx context.Context, channelID string) ([]domain.Message, error)
	AddReaction(ctx context.Context, channelID, messageID string, emoji domain.Emoji) error
	RemoveReaction(ctx context.Context, channelID, messageID string, emoji domain.Emoji) error
}

type routeInvalidator interface {
	Invalidate(ctx context.Context) error
}

// DefaultAnchorTemplate is used when no template is configured. It receives
// the Pole emoji and the Pole name.
const DefaultAnchorTemplate = "%s **%s**: react below to join a thematic."

// MaxNameLength is the longest name accepted at any level. It matches the
// platform limit on role and channel names.
const MaxNameLength = 100

// Service provides hierarchy management operations.
type Service struct {
	poles     poleRepo
	thematics thematicRepo
	projects  projectRepo
	audit     auditLogger
	tx        txManager
	platform  platform
	routes    routeInvalidator
	anchor    string
	log       *slog.Logger
}

// NewService creates a new hierarchy service. routes may be nil when no
// routing cache is configured.
func NewService(
	log *slog.Logger,
	poles poleRepo,
	thematics thematicRepo,
	projects projectRepo,
	audit auditLogger,
	tx txManager,
	platform platform,
	routes routeInvalidator,
	anchorTemplate string,
) *Service {
	if anchorTemplate == "" {
		anchorTemplate = DefaultAnchorTemplate
	}
	return &Service{
		poles:     poles,
		thematics: thematics,
		projects:  projects,
		audit:     audit,
		tx:        tx,
		platform:  platform,
		routes:    routes,
		anchor:    anchorTemplate,
		log:       log.With("service", "hierarchy"),
	}
}

// ---------------------------------------------------------------------------
// Shared helpers
// ---------------------------------------------------------------------------

// getPole resolves a Pole by name, reporting a missing Pole as the first
// broken link of the chain.
func (s *Service) getPole(ctx context.Context, name string) (*domain.Pole, error) {
	p, err := s.poles.GetByName(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFoundError(domain.EntityTypePole, name)
	}
	return p, err
}

func (s *Service) getThematic(ctx context.Context, pole *domain.Pole, name string) (*domain.Thematic, error) {
	t, err := s.thematics.GetByName(ctx, pole.ID, name)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.NewNotFoundError(domain.EntityTypeThematic, name)
	}
	return t, err
}

// textChannel fetches a channel supplied by an administrator and checks that
// it can carry messages.
func (s *Service) textChannel(ctx context.Context, channelID string) (domain.Channel, error) {
	ch, err := s.platform.FetchChannel(ctx, channelID)
	if err != nil {
		return domain.Channel{}, err
	}
	if !ch.IsText() {
		return domain.Channel{}, domain.ErrInvalidChannelType
	}
	return ch, nil
}

// StaleRoutesWarning is reported when cached reaction routes could not be
// dropped after a mutation. Cached entries still expire with their TTL.
const StaleRoutesWarning = "the routing cache could not be refreshed: reactions may use the previous hierarchy until the cache expires"

// invalidateRoutes drops cached reaction routes after a mutation. A failure
// does not fail the mutation; it is returned as a warning for the admin.
func (s *Service) invalidateRoutes(ctx context.Context) []string {
	if s.routes == nil {
		return nil
	}
	if err := s.routes.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "routing cache invalidation failed", slog.String("error", err.Error()))
		return []string{StaleRoutesWarning}
	}
	return nil
}

// logAudit writes an audit record attributed to the actor of ctx.
func (s *Service) logAudit(ctx context.Context, entity domain.EntityType, id uuid.UUID, action domain.AuditAction, changes map[string]any) error {
	actorID, _ := ctxutil.ActorIDFromCtx(ctx)
	err := s.audit.Log(ctx, domain.AuditRecord{
		ActorID:    actorID,
		EntityType: entity,
		EntityID:   id,
		Action:     action,
		Changes:    changes,
	})
	if err != nil {
		return fmt.Errorf("audit log: %w", err)
	}
	return nil
}

// isGone reports whether a platform error means the object no longer exists.
func isGone(err error) bool {
	return errors.Is(err, domain.ErrUnknownResource)
}
