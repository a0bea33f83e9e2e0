// Package audit implements the Audit repository using PostgreSQL.
// It provides append-only operations for hierarchy audit records.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/UTT-Alumni/boarding-duck/internal/adapter/postgres"
	"github.com/UTT-Alumni/boarding-duck/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "actor_id", "entity_type", "entity_id", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new audit record and returns the persisted domain.AuditRecord.
func (r *Repo) Create(ctx context.Context, record domain.AuditRecord) (domain.AuditRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	if record.Changes == nil {
		record.Changes = map[string]any{}
	}

	changesJSON, err := json.Marshal(record.Changes)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
	}

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(record.ID, record.ActorID, record.EntityType.String(), record.EntityID,
			record.Action.String(), changesJSON, record.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build create audit_record: %w", err)
	}

	created, err := scanRecord(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", record.ID.String())
	}
	return created, nil
}

// Log creates an audit record without returning it.
// Satisfies hierarchy.auditLogger.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	_, err := r.Create(ctx, record)
	return err
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByEntity returns the history of one entity, newest first, limited to
// limit records.
func (r *Repo) ListByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"entity_type": entityType.String(), "entity_id": entityID}).
		OrderBy("created_at DESC").
		Limit(uint64(max(limit, 1))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_records: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_records by entity: %w", err)
	}
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit_records by entity: %w", err)
	}

	return records, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec        domain.AuditRecord
		entityType string
		action     string
		changes    []byte
	)
	if err := row.Scan(&rec.ID, &rec.ActorID, &entityType, &rec.EntityID, &action, &changes, &rec.CreatedAt); err != nil {
		return domain.AuditRecord{}, err
	}

	rec.EntityType = domain.EntityType(entityType)
	rec.Action = domain.AuditAction(action)
	rec.Changes = map[string]any{}
	if len(changes) > 0 {
		if err := json.Unmarshal(changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", rec.ID, err)
		}
	}

	return rec, nil
}
