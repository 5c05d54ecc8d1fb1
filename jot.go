package jot

import (
	"log/slog"
	"time"

	"github.com/aretw0/jot/internal/config"
	"github.com/aretw0/jot/internal/platform"
	"github.com/aretw0/jot/pkg/core"
)

// --- Types ---

type (
	Note     = core.Note
	NoteID   = core.NoteID
	Draft    = core.Draft
	Criteria = core.Criteria
	Command  = core.Command
	View     = core.View
	Service  = core.Service
	Store    = core.Store
	Event    = core.Event
)

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// WithAdapter selects the storage backend by name ("fs", "sqlite" or "memory").
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithStore injects a custom store (e.g. a mock).
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithMustExist requires the data directory to exist already.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithSeedCategories replaces the default categories.
func WithSeedCategories(labels ...string) Option {
	return platform.WithSeedCategories(labels...)
}

// WithClock overrides the clock used to derive note ids.
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithForceTemp forces the use of a temporary directory (useful for testing).
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithDevSafety controls the `go run` sandbox.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// --- Factory ---

// New opens the data at path and returns a loaded Service.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init opens and initializes a store without loading a service.
func Init(path string, opts ...Option) (core.Store, error) {
	return platform.Init(path, opts...)
}

// --- Safety & Utils ---

// ResolveDataDir determines the actual data directory based on safety rules.
func ResolveDataDir(userPath string, forceTemp bool) string {
	return platform.ResolveDataDir(userPath, forceTemp)
}

// IsDevRun checks if the current process is running via `go run` or `go test`.
func IsDevRun() bool {
	return platform.IsDevRun()
}

// DefaultDataDir returns the per-user data directory.
func DefaultDataDir() string {
	return config.DefaultDataDir()
}
