package core

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/aretw0/jot/pkg/typed"
)

// NoteRepository is the authoritative, ordered collection of notes.
// Every successful mutation rewrites the whole collection to the store,
// including when it becomes empty.
type NoteRepository struct {
	mu     sync.RWMutex
	notes  []Note
	value  *typed.Value[[]Note]
	ids    *IDGenerator
	logger *slog.Logger
}

// NewNoteRepository creates an empty repository bound to the "notes" key of store.
func NewNoteRepository(store Store, ids *IDGenerator, logger *slog.Logger) *NoteRepository {
	if ids == nil {
		ids = NewIDGenerator(nil)
	}
	logger = orDiscard(logger)
	return &NoteRepository{
		notes:  []Note{},
		value:  typed.NewValue[[]Note](store, KeyNotes, logger),
		ids:    ids,
		logger: logger,
	}
}

// Load replaces the in-memory collection with the persisted one.
// Absent or malformed data loads as an empty collection. Notes that repeat an
// earlier id are given fresh ids and the repaired collection is written back,
// so every note stays addressable.
func (r *NoteRepository) Load(ctx context.Context) error {
	notes, ok, err := r.value.Load(ctx)
	if err != nil {
		return err
	}
	if !ok || notes == nil {
		notes = []Note{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = notes
	for _, n := range notes {
		r.ids.Observe(n.ID)
	}
	if repaired := r.reassignDuplicates(); repaired > 0 {
		r.logger.Warn("reassigned duplicate note ids", "count", repaired)
		if err := r.persist(ctx); err != nil {
			r.logger.Warn("could not save repaired notes", "error", err)
		}
	}
	r.logger.Debug("loaded notes", "count", len(notes))
	return nil
}

// reassignDuplicates gives a new id to every note whose id was already used
// by an earlier note. It must be called with r.mu held.
func (r *NoteRepository) reassignDuplicates() int {
	seen := make(map[NoteID]bool, len(r.notes))
	repaired := 0
	for i := range r.notes {
		if seen[r.notes[i].ID] {
			old := r.notes[i].ID
			r.notes[i].ID = r.ids.Next()
			r.logger.Debug("reassigned note id", "old", old, "new", r.notes[i].ID)
			repaired++
		}
		seen[r.notes[i].ID] = true
	}
	return repaired
}

// Create appends a new note and returns its id.
// A note whose title and description are both blank is not created; the
// returned id is then 0 and no error is reported.
func (r *NoteRepository) Create(ctx context.Context, title, description, category string) (NoteID, error) {
	if isBlank(title, description) {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	n := Note{
		ID:          r.ids.Next(),
		Title:       title,
		Description: description,
		Category:    category,
	}
	r.notes = append(r.notes, n)
	r.logger.Debug("created note", "id", n.ID, "category", category)

	return n.ID, r.persist(ctx)
}

// Update replaces the fields of the note with the given id.
// An unknown id leaves the collection untouched and is not an error.
func (r *NoteRepository) Update(ctx context.Context, id NoteID, title, description, category string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.logger.Debug("update skipped, unknown note", "id", id)
		return nil
	}

	r.notes[i] = Note{ID: id, Title: title, Description: description, Category: category}
	r.logger.Debug("updated note", "id", id, "category", category)
	return r.persist(ctx)
}

// Delete removes the note with the given id. Unknown ids are ignored, which
// makes Delete idempotent.
func (r *NoteRepository) Delete(ctx context.Context, id NoteID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		r.logger.Debug("delete skipped, unknown note", "id", id)
		return nil
	}

	r.notes = slices.Delete(r.notes, i, i+1)
	r.logger.Debug("deleted note", "id", id)
	return r.persist(ctx)
}

// Get returns the note with the given id.
func (r *NoteRepository) Get(id NoteID) (Note, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return Note{}, false
	}
	return r.notes[i], true
}

// Found reports whether a note with the given id exists.
func (r *NoteRepository) Found(id NoteID) bool {
	_, ok := r.Get(id)
	return ok
}

// List returns a copy of all notes in insertion order.
func (r *NoteRepository) List() []Note {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.notes)
}

// Len returns the number of notes.
func (r *NoteRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.notes)
}

func (r *NoteRepository) indexOf(id NoteID) int {
	return slices.IndexFunc(r.notes, func(n Note) bool { return n.ID == id })
}

// persist must be called with r.mu held.
func (r *NoteRepository) persist(ctx context.Context) error {
	return r.value.Save(ctx, r.notes)
}
