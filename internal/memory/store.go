// Package memory implements types.Store in process memory. Nothing
// survives Detach; it backs repository tests and the "memory" backend for
// throwaway sessions.
package memory

import (
	"context"
	"sync"

	"github.com/fabrica-tools/costbook/pkg/types"
)

// Store is a map-backed types.Store.
type Store struct {
	mu       sync.RWMutex
	attached bool
	values   map[string][]byte
}

var _ types.Store = (*Store)(nil)

// NewStore creates an unattached in-memory store.
func NewStore() *Store {
	return &Store{}
}

// Attach initializes the value map. Returns types.ErrAlreadyAttached on a
// second call.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	s.values = make(map[string][]byte)
	s.attached = true
	return nil
}

// Detach drops all values. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values = nil
	s.attached = false
	return nil
}

// Get returns the value stored under key, or ok=false when absent.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.attached {
		return nil, false, types.ErrStoreDetached
	}

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

// Put stores a copy of value under key.
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	s.values[key] = cp
	return nil
}

// Clear removes every stored value.
func (s *Store) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return types.ErrStoreDetached
	}

	s.values = make(map[string][]byte)
	return nil
}
