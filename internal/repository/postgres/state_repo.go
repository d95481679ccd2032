package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createSessionStateTable = `
CREATE TABLE IF NOT EXISTS session_state (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// StateRepository implements domain.StateStore using PostgreSQL
type StateRepository struct {
	pool *pgxpool.Pool
}

// Ensure StateRepository implements domain.StateStore
var _ domain.StateStore = (*StateRepository)(nil)

// NewStateRepository creates a new StateRepository
func NewStateRepository(pool *pgxpool.Pool) *StateRepository {
	return &StateRepository{pool: pool}
}

// EnsureSchema creates the session_state table if it is missing
func (r *StateRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createSessionStateTable); err != nil {
		return fmt.Errorf("create session_state table: %w", err)
	}
	return nil
}

// Get retrieves the value stored under key
func (r *StateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM session_state WHERE key = $1`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStateNotFound
		}
		return nil, fmt.Errorf("get session state %s: %w", key, err)
	}
	return value, nil
}

// Put inserts or replaces the value stored under key
func (r *StateRepository) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO session_state (key, value, updated_at)
		VALUES ($1, $2::jsonb, NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = NOW()`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("put session state %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *StateRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM session_state WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete session state %s: %w", key, err)
	}
	return nil
}
