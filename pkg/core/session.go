package core

import "context"

// Composer holds the draft bound to the primary input form.
type Composer struct {
	draft      Draft
	notes      *NoteRepository
	categories *CategoryRegistry
}

// NewComposer creates a composer whose draft starts empty in the default category.
func NewComposer(notes *NoteRepository, categories *CategoryRegistry) *Composer {
	c := &Composer{notes: notes, categories: categories}
	c.Reset()
	return c
}

// Draft returns the current draft.
func (c *Composer) Draft() Draft { return c.draft }

func (c *Composer) SetTitle(title string)             { c.draft.Title = title }
func (c *Composer) SetDescription(description string) { c.draft.Description = description }
func (c *Composer) SetCategory(category string)       { c.draft.Category = category }

// LoadFrom copies the fields of an existing note into the draft.
func (c *Composer) LoadFrom(n Note) {
	c.draft = DraftOf(n)
}

// Reset clears the draft and selects the default category.
func (c *Composer) Reset() {
	c.draft = Draft{Category: c.categories.Default()}
}

// Save commits the draft as a new note and resets it.
// A blank draft is left as is and 0 is returned.
func (c *Composer) Save(ctx context.Context) (NoteID, error) {
	if c.draft.IsBlank() {
		return 0, nil
	}
	id, err := c.notes.Create(ctx, c.draft.Title, c.draft.Description, c.draft.Category)
	if id != 0 {
		c.Reset()
	}
	return id, err
}

// EditSession is the edit modal: Closed, or Open with a snapshot of one note
// and an editable buffer.
type EditSession struct {
	notes    *NoteRepository
	open     bool
	original Note
	buffer   Draft
}

// NewEditSession creates a closed edit session.
func NewEditSession(notes *NoteRepository) *EditSession {
	return &EditSession{notes: notes}
}

// Open loads n into the buffer. An already open session is replaced.
func (e *EditSession) Open(n Note) {
	e.open = true
	e.original = n
	e.buffer = DraftOf(n)
}

// IsOpen reports whether a note is under edit.
func (e *EditSession) IsOpen() bool { return e.open }

// Original returns the snapshot taken when the session was opened.
func (e *EditSession) Original() (Note, bool) { return e.original, e.open }

// Buffer returns the edited fields.
func (e *EditSession) Buffer() (Draft, bool) { return e.buffer, e.open }

func (e *EditSession) SetTitle(title string) {
	if e.open {
		e.buffer.Title = title
	}
}

func (e *EditSession) SetDescription(description string) {
	if e.open {
		e.buffer.Description = description
	}
}

func (e *EditSession) SetCategory(category string) {
	if e.open {
		e.buffer.Category = category
	}
}

// Commit writes the buffer over the original note and closes the session.
// A closed session, or a buffer with blank title and description, is not
// committed; the session then keeps its state and committed is false.
func (e *EditSession) Commit(ctx context.Context) (committed bool, err error) {
	if !e.open || e.buffer.IsBlank() {
		return false, nil
	}
	id := e.original.ID
	b := e.buffer
	e.Cancel()
	if err := e.notes.Update(ctx, id, b.Title, b.Description, b.Category); err != nil {
		return true, err
	}
	return true, nil
}

// Cancel discards the buffer and closes the session.
func (e *EditSession) Cancel() {
	e.open = false
	e.original = Note{}
	e.buffer = Draft{}
}

// ViewSession is the read-only modal: Closed, or Open on one note.
type ViewSession struct {
	open bool
	note Note
}

// Open shows n.
func (v *ViewSession) Open(n Note) {
	v.open = true
	v.note = n
}

// Close clears the reference.
func (v *ViewSession) Close() {
	v.open = false
	v.note = Note{}
}

// Current returns the note on display.
func (v *ViewSession) Current() (Note, bool) { return v.note, v.open }
