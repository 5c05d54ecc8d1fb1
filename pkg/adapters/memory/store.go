// Package memory provides an in-memory core.Store.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/aretw0/introspection"

	"github.com/aretw0/jot/pkg/core"
)

// Store keeps values in a map. Nothing survives the process.
type Store struct {
	mu       sync.RWMutex
	values   map[string]string
	readOnly bool
	writes   int
}

// Option configures a Store.
type Option func(*Store)

// WithValues seeds the store, e.g. with data captured from another store.
func WithValues(values map[string]string) Option {
	return func(s *Store) {
		maps.Copy(s.values, values)
	}
}

// WithReadOnly makes Set and Delete fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return func(s *Store) {
		s.readOnly = enabled
	}
}

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{values: make(map[string]string)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Initialize(ctx context.Context) error { return nil }

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return core.ErrInvalidKey
	}
	if s.readOnly {
		return core.ErrReadOnly
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.writes++
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if s.readOnly {
		return core.ErrReadOnly
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Sorted(maps.Keys(s.values)), nil
}

func (s *Store) Close() error { return nil }

// Writes returns how many times Set succeeded.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// StoreState exposes internal state for observability.
type StoreState struct {
	Keys     int  `json:"keys"`
	Writes   int  `json:"writes"`
	ReadOnly bool `json:"read_only"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreState{Keys: len(s.values), Writes: s.writes, ReadOnly: s.readOnly}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory-store"
}

var _ core.Store = (*Store)(nil)
var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
