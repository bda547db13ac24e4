package pipeline

import "leaddesk_backend/internal/leads/domain"

// Page is one slice of the filtered and sorted collection.
type Page struct {
	Items      []domain.Lead
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Paginate slices leads into the requested page. Page and pageSize below
// their minimums are clamped to 1. A page past the end yields an empty
// items slice, not an error.
func Paginate(leads []domain.Lead, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	total := len(leads)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{
		Items:      leads[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}
