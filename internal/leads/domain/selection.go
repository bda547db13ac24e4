package domain

import (
	"sort"
	"sync"
)

// SelectionSet tracks lead identifiers chosen for bulk operations across
// paginated views. Membership survives page navigation; mutations are
// idempotent set operations so rapid or concurrent toggling stays correct.
type SelectionSet struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewSelectionSet creates an empty selection.
func NewSelectionSet() *SelectionSet {
	return &SelectionSet{ids: make(map[string]struct{})}
}

// Add inserts an identifier. Adding an existing identifier is a no-op.
func (s *SelectionSet) Add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[id] = struct{}{}
}

// Remove deletes an identifier. Removing a missing identifier is a no-op.
func (s *SelectionSet) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, id)
}

// Contains reports membership.
func (s *SelectionSet) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// TogglePage unions the visible page's identifiers into the selection when
// selected is true, or subtracts them when false. Selections made on other
// pages are never discarded.
func (s *SelectionSet) TogglePage(pageIDs []string, selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range pageIDs {
		if selected {
			s.ids[id] = struct{}{}
		} else {
			delete(s.ids, id)
		}
	}
}

// IDs returns the selected identifiers in a stable order.
func (s *SelectionSet) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of selected identifiers.
func (s *SelectionSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// Clear empties the selection.
func (s *SelectionSet) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids = make(map[string]struct{})
}
