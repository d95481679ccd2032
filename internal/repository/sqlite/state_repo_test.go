package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dafibh/budget-planner/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *StateRepository {
	t.Helper()
	repo, err := NewStateRepository(filepath.Join(t.TempDir(), "state", "budget.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestStateRepository_GetMissing(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Get(context.Background(), domain.BudgetStateKey)
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
}

func TestStateRepository_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.Put(ctx, domain.BudgetStateKey, []byte(`{"rawBudget":{}}`)))
	require.NoError(t, repo.Put(ctx, domain.BudgetStateKey, []byte(`{"rawBudget":{"savings":{"main":"10"}}}`)))

	got, err := repo.Get(ctx, domain.BudgetStateKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"rawBudget":{"savings":{"main":"10"}}}`, string(got))
}

func TestStateRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.Put(ctx, domain.IncomeStateKey, []byte(`{}`)))
	require.NoError(t, repo.Delete(ctx, domain.IncomeStateKey))

	_, err := repo.Get(ctx, domain.IncomeStateKey)
	assert.ErrorIs(t, err, domain.ErrStateNotFound)
	assert.NoError(t, repo.Delete(ctx, domain.IncomeStateKey))
}

func TestRunMigrations_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "budget.db")

	require.NoError(t, RunMigrations(path))
	require.NoError(t, RunMigrations(path))
}
