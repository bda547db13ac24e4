package service

import "leaddesk_backend/internal/leads/domain"

// selection returns the view's selection set, creating it on first use.
// Selections are ephemeral in-memory state and are not stored across
// sessions.
func (s *Service) selection(viewID string) *domain.SelectionSet {
	s.selMu.Lock()
	defer s.selMu.Unlock()

	set, ok := s.selections[viewID]
	if !ok {
		set = domain.NewSelectionSet()
		s.selections[viewID] = set
	}
	return set
}

// TogglePage unions or subtracts the identifiers visible on the current page
// against the view's selection, leaving other pages' selections intact.
// It returns the resulting selection size.
func (s *Service) TogglePage(viewID string, pageIDs []string, selected bool) int {
	set := s.selection(viewID)
	set.TogglePage(pageIDs, selected)
	return set.Len()
}

// SelectionIDs returns the view's selected identifiers in stable order.
func (s *Service) SelectionIDs(viewID string) []string {
	return s.selection(viewID).IDs()
}

// ClearSelection empties the view's selection.
func (s *Service) ClearSelection(viewID string) {
	s.selection(viewID).Clear()
}
