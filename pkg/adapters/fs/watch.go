package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/jot/pkg/core"
)

// Watch streams changes made to keys matching pattern (a doublestar glob over
// key names, "" meaning every key) until ctx is cancelled. The channel is
// closed when the watcher stops.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %q", pattern)
	}

	known, err := s.Keys(ctx)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(s.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", s.Path, err)
	}

	events := make(chan core.Event, 16)
	w := &keyWatcher{
		store:   s,
		pattern: pattern,
		known:   make(map[string]bool, len(known)),
		events:  events,
	}
	for _, k := range known {
		w.known[k] = true
	}

	s.setWatcherActive(true)
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer s.setWatcherActive(false)
		defer watcher.Close()
		return w.run(ctx, watcher)
	}, lifecycle.WithErrorHandler(func(err error) {
		s.config.Logger.Error("watcher stopped", "error", err)
	}))

	return events, nil
}

type keyWatcher struct {
	store   *Store
	pattern string
	known   map[string]bool
	events  chan<- core.Event
}

func (w *keyWatcher) run(ctx context.Context, watcher *fsnotify.Watcher) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			e, ok := w.translate(event)
			if !ok {
				continue
			}
			select {
			case w.events <- e:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.store.config.Logger.Error("fsnotify error", "error", err)
		}
	}
}

// translate maps a filesystem event to a key event. Atomic writes surface as
// a create of the target file, so a create on a known key is a modification.
func (w *keyWatcher) translate(event fsnotify.Event) (core.Event, bool) {
	key, ok := w.store.keyOf(filepath.Base(event.Name))
	if !ok {
		return core.Event{}, false
	}
	if match, err := doublestar.Match(w.pattern, key); err != nil || !match {
		return core.Event{}, false
	}

	var t core.EventType
	switch {
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		t = core.EventCreate
		if w.known[key] {
			t = core.EventModify
		}
		w.known[key] = true
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		if !w.known[key] {
			return core.Event{}, false
		}
		delete(w.known, key)
		t = core.EventDelete
	default:
		return core.Event{}, false
	}

	w.store.config.Logger.Debug("key changed", "key", key, "type", t)
	return core.Event{Type: t, Key: key, Timestamp: time.Now().Unix()}, true
}
