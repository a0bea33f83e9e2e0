package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/UTT-Alumni/boarding-duck/internal/adapter/postgres"
	"github.com/UTT-Alumni/boarding-duck/internal/adapter/postgres/audit"
	"github.com/UTT-Alumni/boarding-duck/internal/adapter/postgres/pole"
	"github.com/UTT-Alumni/boarding-duck/internal/adapter/postgres/project"
	"github.com/UTT-Alumni/boarding-duck/internal/adapter/postgres/thematic"
	"github.com/UTT-Alumni/boarding-duck/internal/config"
)

// store groups the connection pool and the repositories built on it.
type store struct {
	pool      *pgxpool.Pool
	tx        *postgres.TxManager
	poles     *pole.Repo
	thematics *thematic.Repo
	projects  *project.Repo
	audit     *audit.Repo
}

func openStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*store, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "connected to database",
		slog.Int("max_conns", int(cfg.MaxConns)),
	)

	return &store{
		pool:      pool,
		tx:        postgres.NewTxManager(pool),
		poles:     pole.New(pool),
		thematics: thematic.New(pool),
		projects:  project.New(pool),
		audit:     audit.New(pool),
	}, nil
}

func (s *store) migrate(ctx context.Context, logger *slog.Logger) (int, error) {
	db := stdlib.OpenDBFromPool(s.pool)
	defer db.Close()

	applied, err := postgres.Migrate(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("migrate database: %w", err)
	}
	logger.InfoContext(ctx, "database migrated", slog.Int("applied", applied))
	return applied, nil
}

func (s *store) Close() { s.pool.Close() }
