// Package sources contains one adapter per lead origin system. Each adapter
// fetches raw records from its origin endpoint and normalizes them into the
// canonical domain.Lead shape, stamping provenance exactly once.
package sources

import (
	"context"

	"leaddesk_backend/internal/leads/domain"
)

// Hints are optional fetch parameters. Not every origin honors every hint;
// adapters ignore the ones their endpoint does not support and the in-memory
// pipeline re-applies the full spec afterwards.
type Hints struct {
	Search string
	Time   string
	Score  string
	Page   int
	Limit  int
}

// Adapter translates one origin's raw shape into canonical lead records.
type Adapter interface {
	// Source returns the provenance tag this adapter stamps on its leads.
	Source() domain.Source
	// Label returns the human-readable origin label.
	Label() string
	// Fetch returns the origin's leads. A transport or envelope failure is
	// returned as an error; the aggregation layer converts it into an empty
	// collection plus a warning so one failing origin degrades rather than
	// aborts the overall view.
	Fetch(ctx context.Context, hints Hints) ([]domain.Lead, error)
}
