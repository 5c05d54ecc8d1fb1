package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Notes          int    `json:"notes"`
	Categories     int    `json:"categories"`
	Query          string `json:"query,omitempty"`
	ActiveCategory string `json:"active_category"`
	Editing        bool   `json:"editing"`
	Viewing        bool   `json:"viewing"`
	StoreType      string `json:"store_type"`
	Store          any    `json:"store,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.Lock()
	defer s.mu.Unlock()

	storeType := "store"
	var storeState any
	if comp, ok := s.store.(introspection.Component); ok {
		storeType = comp.ComponentType()
	}
	if in, ok := s.store.(introspection.Introspectable); ok {
		storeState = in.State()
	}

	return ServiceState{
		Notes:          s.notes.Len(),
		Categories:     s.categories.Len(),
		Query:          s.criteria.Query,
		ActiveCategory: s.criteria.ActiveCategory(),
		Editing:        s.edit.IsOpen(),
		Viewing:        s.view.open,
		StoreType:      storeType,
		Store:          storeState,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)
