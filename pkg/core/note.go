package core

import "strings"

// NoteID identifies a note. It is assigned once, at creation, and never changes.
type NoteID int64

// Note is the central entity of the domain.
// The JSON field names are the persisted layout of the "notes" key; the YAML
// names are only used by exports.
type Note struct {
	ID          NoteID `json:"id" yaml:"id"`
	Title       string `json:"input" yaml:"title"`
	Description string `json:"desc" yaml:"description"`
	Category    string `json:"category" yaml:"category"`
}

// IsBlank reports whether both title and description are empty or whitespace.
func (n Note) IsBlank() bool {
	return isBlank(n.Title, n.Description)
}

// Draft is the mutable scratch state of a note that has not been committed yet.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// IsBlank reports whether the draft would be rejected on save.
func (d Draft) IsBlank() bool {
	return isBlank(d.Title, d.Description)
}

// DraftOf copies the editable fields of n.
func DraftOf(n Note) Draft {
	return Draft{Title: n.Title, Description: n.Description, Category: n.Category}
}

func isBlank(title, description string) bool {
	return strings.TrimSpace(title) == "" && strings.TrimSpace(description) == ""
}
