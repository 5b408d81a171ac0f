package repository

import (
	"context"
	"sync"

	"storefront/internal/domain"
)

// MemoryStateRepository keeps state for the lifetime of the process. It
// backs tests and runs when no database is configured.
type MemoryStateRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStateRepository() *MemoryStateRepository {
	return &MemoryStateRepository{
		values: make(map[string][]byte),
	}
}

func (m *MemoryStateRepository) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[key]
	if !ok {
		return nil, domain.ErrStateNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryStateRepository) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

func (m *MemoryStateRepository) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
