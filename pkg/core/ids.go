package core

import (
	"sync"
	"time"
)

// IDGenerator hands out millisecond timestamps that are strictly increasing,
// so two notes created within the same millisecond still get distinct ids.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last NoteID
}

// NewIDGenerator creates a generator reading the given clock. A nil clock uses time.Now.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Observe records an id that is already in use so later ids are greater than it.
func (g *IDGenerator) Observe(id NoteID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id > g.last {
		g.last = id
	}
}

// Next returns a fresh id.
func (g *IDGenerator) Next() NoteID {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := NoteID(g.now().UnixMilli())
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
