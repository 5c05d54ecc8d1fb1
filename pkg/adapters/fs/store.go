// Package fs provides a core.Store that keeps one file per key in a directory.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/jot/pkg/core"
)

// DefaultExtension is appended to keys to form file names.
const DefaultExtension = ".json"

// Config holds the configuration for the filesystem store.
type Config struct {
	Path      string
	MustExist bool
	ReadOnly  bool
	Logger    *slog.Logger
	Extension string // e.g. ".json"
}

// Store implements core.Store with files named <key><ext> under Path.
// Writes replace the file atomically.
type Store struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastWrite     *time.Time
	writes        int
}

// NewStore creates a new filesystem-backed store. No I/O happens until Initialize.
func NewStore(config Config) *Store {
	if config.Extension == "" {
		config.Extension = DefaultExtension
	}
	if !strings.HasPrefix(config.Extension, ".") {
		config.Extension = "." + config.Extension
	}
	if config.Logger == nil {
		config.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{Path: config.Path, config: config}
}

// Initialize creates the directory, or checks it exists when MustExist or ReadOnly is set.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist || s.config.ReadOnly {
		info, err := os.Stat(s.Path)
		if os.IsNotExist(err) {
			if s.config.ReadOnly && !s.config.MustExist {
				return nil
			}
			return fmt.Errorf("store path does not exist: %s", s.Path)
		}
		if err != nil {
			return fmt.Errorf("failed to stat store path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("store path is not a directory: %s", s.Path)
		}
		return nil
	}

	if err := os.MkdirAll(s.Path, 0755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

// Get reads the file of key. A missing file is reported as ok=false.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	path, err := s.pathOf(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes value to the file of key atomically.
func (s *Store) Set(ctx context.Context, key, value string) error {
	path, err := s.pathOf(key)
	if err != nil {
		return err
	}
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}

	if err := writeFileAtomic(path, []byte(value), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	now := time.Now()
	s.mu.Lock()
	s.lastWrite = &now
	s.writes++
	s.mu.Unlock()

	s.config.Logger.Debug("wrote key", "key", key, "path", path, "bytes", len(value))
	return nil
}

// Delete removes the file of key.
func (s *Store) Delete(ctx context.Context, key string) error {
	path, err := s.pathOf(key)
	if err != nil {
		return err
	}
	if s.config.ReadOnly {
		return core.ErrReadOnly
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys lists the keys that have a file, ignoring leftovers of interrupted writes.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list store: %w", err)
	}

	keys := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if key, ok := s.keyOf(e.Name()); ok {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	return keys, nil
}

// Close is a no-op; watchers stop with their context.
func (s *Store) Close() error { return nil }

func (s *Store) pathOf(key string) (string, error) {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidKey, key)
	}
	return filepath.Join(s.Path, key+s.config.Extension), nil
}

// keyOf maps a file name back to its key.
func (s *Store) keyOf(name string) (string, bool) {
	if strings.HasPrefix(name, TempFilePrefix) || !strings.HasSuffix(name, s.config.Extension) {
		return "", false
	}
	key := strings.TrimSuffix(name, s.config.Extension)
	if key == "" {
		return "", false
	}
	return key, true
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
