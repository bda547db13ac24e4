package pipeline

import (
	"strings"

	"leaddesk_backend/internal/leads/domain"
)

// FilterSpec describes the predicates applied to the aggregated collection.
// Zero-valued fields are no-ops. Search and grade match case-insensitively;
// status matches case-sensitively.
type FilterSpec struct {
	Search string
	Grade  string
	Status string
	Source string
	// View selects the status-suppression policy. An explicit Status filter
	// overrides the view's suppression for that status.
	View string
}

// Filter applies spec to leads, preserving relative order. Filtering an
// already-filtered collection with the same spec returns an equal collection.
func Filter(leads []domain.Lead, spec FilterSpec) []domain.Lead {
	search := strings.ToLower(strings.TrimSpace(spec.Search))
	grade := strings.TrimSpace(spec.Grade)

	suppressed := make(map[domain.Status]struct{})
	if spec.Status == "" {
		for _, st := range SuppressedStatuses(spec.View) {
			suppressed[st] = struct{}{}
		}
	}

	out := make([]domain.Lead, 0, len(leads))
	for _, lead := range leads {
		if _, hide := suppressed[lead.Status]; hide {
			continue
		}
		if spec.Status != "" && string(lead.Status) != spec.Status {
			continue
		}
		if grade != "" && !strings.EqualFold(string(lead.LeadGrade), grade) {
			continue
		}
		if spec.Source != "" && string(lead.Source) != spec.Source {
			continue
		}
		if search != "" && !matchesSearch(lead, search) {
			continue
		}
		out = append(out, lead)
	}
	return out
}

// StatusScope applies only the status predicate and the view policy. The
// stats calculator consumes this scope, independent of search/grade/paging.
func StatusScope(leads []domain.Lead, status, view string) []domain.Lead {
	return Filter(leads, FilterSpec{Status: status, View: view})
}

func matchesSearch(lead domain.Lead, search string) bool {
	for _, field := range []string{
		lead.FirstName,
		lead.LastName,
		lead.FullName(),
		lead.Email,
		lead.CompanyName,
	} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
