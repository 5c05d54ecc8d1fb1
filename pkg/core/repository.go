package core

import "context"

// Store defines the contract of the key-value persistence layer.
// Values are opaque strings; the domain stores serialized collections under
// KeyNotes and KeyCategories and always overwrites a key in full.
type Store interface {
	// Initialize ensures the underlying storage is ready (e.g., create directories, schema migration).
	Initialize(ctx context.Context) error

	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns every stored key in lexical order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases the resources held by the store.
	Close() error
}

// Watchable defines an interface for stores that can report external changes.
type Watchable interface {
	// Watch streams events for keys matching pattern until ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
