// Package core holds the note-taking domain: notes, categories, the filtered
// view, the compose/edit/view sessions and the Service that dispatches
// user commands against them.
package core

import "fmt"

// Keys under which the collections are persisted.
const (
	KeyNotes      = "notes"
	KeyCategories = "categories"
)

// AllCategories is the active-category sentinel meaning "no category restriction".
const AllCategories = "all"

// DefaultCategories are the seed labels used when nothing has been persisted yet.
var DefaultCategories = []string{"Personal", "Business"}

// EventType represents the type of change observed in a store.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a key in a store.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Key)
}
