package core

import "strings"

// Criteria selects the visible subset of notes.
type Criteria struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

// ActiveCategory returns the category restriction, mapping "" to AllCategories.
func (c Criteria) ActiveCategory() string {
	if c.Category == "" {
		return AllCategories
	}
	return c.Category
}

// Filter derives the displayed notes from notes and c.
// It keeps notes whose category equals the active category (unless it is
// AllCategories) and whose title contains the query, ignoring case. The
// description is never searched and the input order is preserved.
// The result is never nil; an empty slice means no matching results.
func Filter(notes []Note, c Criteria) []Note {
	active := c.ActiveCategory()
	query := strings.ToLower(c.Query)

	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if active != AllCategories && n.Category != active {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(n.Title), query) {
			continue
		}
		out = append(out, n)
	}
	return out
}
