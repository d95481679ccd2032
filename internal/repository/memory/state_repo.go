package memory

import (
	"context"
	"sync"

	"github.com/dafibh/budget-planner/internal/domain"
)

// StateRepository implements domain.StateStore in process memory.
// State is lost on restart.
type StateRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// Ensure StateRepository implements domain.StateStore
var _ domain.StateStore = (*StateRepository)(nil)

// NewStateRepository creates a new empty StateRepository
func NewStateRepository() *StateRepository {
	return &StateRepository{
		values: make(map[string][]byte),
	}
}

// Get returns a copy of the stored value
func (r *StateRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.values[key]
	if !ok {
		return nil, domain.ErrStateNotFound
	}
	return append([]byte(nil), value...), nil
}

// Put stores a copy of value under key
func (r *StateRepository) Put(ctx context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.values[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (r *StateRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}
