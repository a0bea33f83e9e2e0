// Package thematic implements the Thematic repository using PostgreSQL.
// (pole_id, name) and (pole_id, emoji_key) are both unique, the latter is what
// makes reaction routing unambiguous inside a Pole.
package thematic

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

const (
	table           = "thematics"
	emojiConstraint = "thematics_pole_emoji_key"
)

var columns = []string{"id", "pole_id", "name", "emoji", "emoji_key", "role_id", "channel_id", "created_at"}

// Repo provides Thematic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new thematic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns every Thematic ordered by Pole then creation.
func (r *Repo) List(ctx context.Context) ([]domain.Thematic, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("pole_id", "created_at", "name")

	return r.list(ctx, query, "list thematics")
}

// ListByPole returns the Thematics of a Pole in creation order.
func (r *Repo) ListByPole(ctx context.Context, poleID uuid.UUID) ([]domain.Thematic, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"pole_id": poleID}).
		OrderBy("created_at", "name")

	return r.list(ctx, query, "list thematics by pole")
}

// GetByName returns the Thematic named name inside a Pole.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByName(ctx context.Context, poleID uuid.UUID, name string) (*domain.Thematic, error) {
	return r.get(ctx, sq.Eq{"pole_id": poleID, "name": name}, name)
}

// GetByEmoji returns the Thematic of a Pole bound to the canonical emoji key.
// Returns domain.ErrNotFound if no Thematic uses it.
func (r *Repo) GetByEmoji(ctx context.Context, poleID uuid.UUID, emojiKey string) (*domain.Thematic, error) {
	return r.get(ctx, sq.Eq{"pole_id": poleID, "emoji_key": emojiKey}, emojiKey)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a Thematic and returns the persisted row.
// Returns domain.ErrDuplicateEmoji if the Pole already routes this emoji and
// domain.ErrAlreadyExists if the name is taken.
func (r *Repo) Create(ctx context.Context, t *domain.Thematic) (*domain.Thematic, error) {
	id := t.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "pole_id", "name", "emoji", "emoji_key", "role_id", "channel_id").
		Values(id, t.PoleID, t.Name, t.Emoji, t.EmojiKey, t.RoleID, t.ChannelID).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create thematic: %w", err)
	}

	created, err := scanThematic(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		if postgres.ConstraintName(err) == emojiConstraint {
			return nil, fmt.Errorf("thematic %s: %w", t.Name, domain.ErrDuplicateEmoji)
		}
		return nil, postgres.MapError(err, "thematic", t.Name)
	}
	return created, nil
}

// Delete removes a Thematic by id. Its Projects go with it.
// Returns domain.ErrNotFound if nothing was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.delete(ctx, sq.Eq{"id": id})
	if err != nil {
		return postgres.MapError(err, "thematic", id.String())
	}
	if n == 0 {
		return fmt.Errorf("thematic %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteByPole removes every Thematic of a Pole and returns how many were removed.
func (r *Repo) DeleteByPole(ctx context.Context, poleID uuid.UUID) (int64, error) {
	n, err := r.delete(ctx, sq.Eq{"pole_id": poleID})
	if err != nil {
		return 0, postgres.MapError(err, "thematics of pole", poleID.String())
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) get(ctx context.Context, where sq.Eq, key string) (*domain.Thematic, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get thematic: %w", err)
	}

	t, err := scanThematic(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "thematic", key)
	}
	return t, nil
}

func (r *Repo) list(ctx context.Context, query sq.SelectBuilder, op string) ([]domain.Thematic, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", op, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	thematics := []domain.Thematic{}
	for rows.Next() {
		t, err := scanThematic(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		thematics = append(thematics, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return thematics, nil
}

func (r *Repo) delete(ctx context.Context, where sq.Eq) (int64, error) {
	sql, args, err := postgres.Builder().Delete(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete thematic: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanThematic(row pgx.Row) (*domain.Thematic, error) {
	var t domain.Thematic
	err := row.Scan(&t.ID, &t.PoleID, &t.Name, &t.Emoji, &t.EmojiKey, &t.RoleID, &t.ChannelID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
