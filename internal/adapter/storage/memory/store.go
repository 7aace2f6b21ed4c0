// Package memory provides an in-process domain.KeyValueStore, the equivalent of a
// browser tab's localStorage. Contents are lost when the process exits.
package memory

import (
	"context"
	"sync"

	"github.com/simaogato/wallet-backend/internal/domain"
)

// Store implements domain.KeyValueStore over a map
type Store struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewStore creates an empty store, optionally pre-populated with seed items
func NewStore(seed map[string]string) *Store {
	items := make(map[string]string, len(seed))
	for k, v := range seed {
		items[k] = v
	}
	return &Store{items: items}
}

var _ domain.KeyValueStore = (*Store)(nil)

// GetItem returns the value stored under key
func (s *Store) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok, nil
}

// SetItems writes all items under a single lock acquisition
func (s *Store) SetItems(_ context.Context, items map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range items {
		s.items[k] = v
	}
	return nil
}

// Snapshot returns a copy of every stored item
func (s *Store) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.items))
	for k, v := range s.items {
		out[k] = v
	}
	return out
}
