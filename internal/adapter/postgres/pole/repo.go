// Package pole implements the Pole repository using PostgreSQL.
package pole

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/UTT-Alumni/boarding-duck/internal/adapter/postgres"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

const table = "poles"

var columns = []string{"id", "name", "emoji", "roles_channel_id", "anchor_message_id", "created_at"}

// Repo provides Pole persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new pole repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every Pole in creation order.
// Returns an empty slice (not nil) when no Pole exists.
func (r *Repo) List(ctx context.Context) ([]domain.Pole, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at", "name")

	return r.list(ctx, query, "list poles")
}

// ListByRolesChannel returns the Poles bound to channelID in creation order.
func (r *Repo) ListByRolesChannel(ctx context.Context, channelID string) ([]domain.Pole, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"roles_channel_id": channelID}).
		OrderBy("created_at", "name")

	return r.list(ctx, query, "list poles by roles channel")
}

// GetByName returns the Pole with exactly this name.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Pole, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"name": name})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get pole: %w", err)
	}

	p, err := scanPole(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "pole", name)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a Pole and returns the persisted row.
// Returns domain.ErrAlreadyExists if the name is taken.
func (r *Repo) Create(ctx context.Context, p *domain.Pole) (*domain.Pole, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	query := postgres.Builder().
		Insert(table).
		Columns("id", "name", "emoji", "roles_channel_id", "anchor_message_id").
		Values(id, p.Name, p.Emoji, p.RolesChannelID, p.AnchorMessageID).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create pole: %w", err)
	}

	created, err := scanPole(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "pole", p.Name)
	}
	return created, nil
}

// Delete removes a Pole by id. Thematics and Projects below it are removed
// by the foreign key cascade.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete pole: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "pole", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("pole %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder, op string) ([]domain.Pole, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	poles := []domain.Pole{}
	for rows.Next() {
		p, err := scanPole(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		poles = append(poles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return poles, nil
}

func scanPole(row pgx.Row) (*domain.Pole, error) {
	var p domain.Pole
	if err := row.Scan(&p.ID, &p.Name, &p.Emoji, &p.RolesChannelID, &p.AnchorMessageID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
