package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dafibh/budget-planner/internal/domain"
	_ "modernc.org/sqlite"
)

// StateRepository implements domain.StateStore using a local SQLite file
type StateRepository struct {
	db *sql.DB
}

// Ensure StateRepository implements domain.StateStore
var _ domain.StateStore = (*StateRepository)(nil)

// NewStateRepository opens (and migrates) the database at dbPath
func NewStateRepository(dbPath string) (*StateRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, err
	}

	return &StateRepository{db: db}, nil
}

// Close closes the underlying database
func (r *StateRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Get retrieves the value stored under key
func (r *StateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM session_state WHERE key = ?`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrStateNotFound
		}
		return nil, fmt.Errorf("get session state %s: %w", key, err)
	}
	return []byte(value), nil
}

// Put inserts or replaces the value stored under key
func (r *StateRepository) Put(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_state (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("put session state %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *StateRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM session_state WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete session state %s: %w", key, err)
	}
	return nil
}
