// Package project implements the Project repository using PostgreSQL.
package project

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

const table = "projects"

var columns = []string{"id", "thematic_id", "name", "channel_id", "created_at"}

// Repo provides Project persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new project repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every Project ordered by Thematic then creation.
func (r *Repo) List(ctx context.Context) ([]domain.Project, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("thematic_id", "created_at", "name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list projects: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

// GetByName returns the Project named name inside a Thematic.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByName(ctx context.Context, thematicID uuid.UUID, name string) (*domain.Project, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"thematic_id": thematicID, "name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get project: %w", err)
	}

	p, err := scanProject(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", name)
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a Project and returns the persisted row.
// Returns domain.ErrAlreadyExists if the name is taken inside the Thematic.
func (r *Repo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "thematic_id", "name", "channel_id").
		Values(id, p.ThematicID, p.Name, p.ChannelID).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create project: %w", err)
	}

	created, err := scanProject(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "project", p.Name)
	}
	return created, nil
}

// Delete removes a Project by id.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.delete(ctx, sq.Eq{"id": id})
	if err != nil {
		return postgres.MapError(err, "project", id.String())
	}
	if n == 0 {
		return fmt.Errorf("project %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByThematic removes every Project of a Thematic.
func (r *Repo) DeleteByThematic(ctx context.Context, thematicID uuid.UUID) (int64, error) {
	n, err := r.delete(ctx, sq.Eq{"thematic_id": thematicID})
	if err != nil {
		return 0, postgres.MapError(err, "projects of thematic", thematicID.String())
	}
	return n, nil
}

// DeleteByPole removes every Project below the Thematics of a Pole.
func (r *Repo) DeleteByPole(ctx context.Context, poleID uuid.UUID) (int64, error) {
	n, err := r.delete(ctx, sq.Expr("thematic_id IN (SELECT id FROM thematics WHERE pole_id = ?)", poleID))
	if err != nil {
		return 0, postgres.MapError(err, "projects of pole", poleID.String())
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) delete(ctx context.Context, where sq.Sqlizer) (int64, error) {
	sql, args, err := postgres.Builder().Delete(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete project: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.ThematicID, &p.Name, &p.ChannelID, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
