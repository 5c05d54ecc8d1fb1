// Package lifecycle exposes store change events as a lifecycle.Source.
package lifecycle

import (
	"context"
	"slices"

	"github.com/aretw0/lifecycle"

	"github.com/aretw0/jot/pkg/core"
)

// SourceOption narrows what a change source forwards.
type SourceOption func(*changeSource)

// WithKeys forwards only events for the given store keys (core.KeyNotes,
// core.KeyCategories).
func WithKeys(keys ...string) SourceOption {
	return func(s *changeSource) {
		s.keys = append(s.keys, keys...)
	}
}

// WithTypes forwards only events of the given types.
func WithTypes(types ...core.EventType) SourceOption {
	return func(s *changeSource) {
		s.types = append(s.types, types...)
	}
}

type changeSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
	keys   []string
	types  []core.EventType
}

// NewSource wraps the channel returned by core.Watchable.Watch.
// A save rewrites a whole collection, which the watcher may report several
// times within the same second; repeats of the last forwarded event are dropped.
// The source's channel closes when events closes or the Start context ends.
func NewSource(events <-chan core.Event, opts ...SourceOption) lifecycle.Source {
	s := &changeSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *changeSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *changeSource) accepts(e core.Event) bool {
	if len(s.keys) > 0 && !slices.Contains(s.keys, e.Key) {
		return false
	}
	if len(s.types) > 0 && !slices.Contains(s.types, e.Type) {
		return false
	}
	return true
}

func (s *changeSource) Start(ctx context.Context) error {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		var last core.Event
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				if !s.accepts(e) || e == last {
					continue
				}
				last = e
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
