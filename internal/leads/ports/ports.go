// Package ports defines the outbound interfaces of the leads bounded
// context. The service layer depends on these, not on concrete upstream
// clients, so the pipeline is testable without a live collaborator.
package ports

import (
	"context"

	"leaddesk_backend/internal/leads/domain"
)

// LeadUpdate carries the writable CRM fields for a single-lead update. Nil
// fields are left untouched upstream.
type LeadUpdate struct {
	Status        *domain.Status
	Notes         *string
	FollowUpAt    *string
	FollowUpNotes *string
}

// StatusWriter writes lead mutations through to the backend collaborator,
// which owns the authoritative records.
type StatusWriter interface {
	// UpdateLead applies a single-lead update.
	UpdateLead(ctx context.Context, id string, update LeadUpdate) error
	// BulkUpdateStatus applies one status to every identifier in one
	// request. The collaborator reports a single pass/fail for the batch;
	// a partial server-side application is not detectable from here.
	BulkUpdateStatus(ctx context.Context, ids []string, status domain.Status) error
}

// TrendProvider fetches the pre-aggregated trend snapshot the collaborator
// owns (leads this week, week-over-week growth, score improvement).
type TrendProvider interface {
	FetchTrend(ctx context.Context) (domain.TrendSnapshot, error)
}
