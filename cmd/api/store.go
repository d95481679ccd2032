package main

import (
	"context"
	"fmt"

	"github.com/dafibh/budget-planner/internal/config"
	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/dafibh/budget-planner/internal/repository/memory"
	"github.com/dafibh/budget-planner/internal/repository/postgres"
	"github.com/dafibh/budget-planner/internal/repository/sqlite"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// openStateStore builds the configured session store. The returned close func
// releases its connections and is never nil.
func openStateStore(ctx context.Context, cfg *config.Config) (domain.StateStore, func(), error) {
	switch cfg.StateBackend {
	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to ping database: %w", err)
		}
		repo := postgres.NewStateRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Msg("Connected to database")
		return repo, pool.Close, nil

	case config.BackendSQLite:
		repo, err := sqlite.NewStateRepository(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("Opened SQLite state store")
		return repo, func() {
			if err := repo.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close SQLite state store")
			}
		}, nil

	default:
		log.Warn().Msg("Using in-memory state store; the session is lost on restart")
		return memory.NewStateRepository(), func() {}, nil
	}
}
