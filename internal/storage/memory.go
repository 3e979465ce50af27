package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dcastano/finanzapp/internal/shared"
)

// MemoryStore is an in-memory Store. Values still round-trip through JSON
// so it exercises exactly the same serialization path as the durable store.
// Used by tests and as a throwaway profile.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Put(ctx context.Context, collection string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: marshaling %s: %w", shared.ErrStorage, collection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[collection] = b
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, collection string, dest any) error {
	s.mu.RLock()
	b, ok := s.data[collection]
	s.mu.RUnlock()

	if !ok {
		return shared.ErrNotFound
	}
	if err := json.Unmarshal(b, dest); err != nil {
		return fmt.Errorf("%w: unmarshaling %s: %w", shared.ErrStorage, collection, err)
	}
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, collection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, collection)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
