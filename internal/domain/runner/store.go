package runner

import (
	"context"
	"sync"
)

// ProgressStore is a durable slot holding the highest fully-completed step
// index. Load returns 0 if nothing was ever written. Save must be visible to
// subsequent Load calls by any process, including after a crash between the
// write and the next read.
type ProgressStore interface {
	Load(ctx context.Context) (int, error)
	Save(ctx context.Context, completed int) error
}

// MemoryStore is an in-process ProgressStore, for tests and embedding.
type MemoryStore struct {
	mu    sync.Mutex
	value int
}

// NewMemoryStore creates a MemoryStore holding the given initial value.
func NewMemoryStore(value int) *MemoryStore {
	return &MemoryStore{value: value}
}

// Load returns the stored value.
func (s *MemoryStore) Load(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, nil
}

// Save replaces the stored value.
func (s *MemoryStore) Save(_ context.Context, completed int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = completed
	return nil
}

// Ensure MemoryStore implements ProgressStore.
var _ ProgressStore = (*MemoryStore)(nil)
