package sources

import (
	"context"
	"net/http"

	"leaddesk_backend/internal/leads/domain"
	"leaddesk_backend/internal/leads/ports"
)

// CRMWriter implements the mutation and trend ports against the backend
// collaborator's endpoints, reusing the shared upstream client.
type CRMWriter struct {
	client *Client
}

func NewCRMWriter(client *Client) *CRMWriter {
	return &CRMWriter{client: client}
}

type updateLeadPayload struct {
	Status        *domain.Status `json:"status,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
	FollowUpAt    *string        `json:"followUpDate,omitempty"`
	FollowUpNotes *string        `json:"followUpNotes,omitempty"`
}

type bulkStatusPayload struct {
	LeadIDs []string      `json:"leadIds"`
	Status  domain.Status `json:"status"`
}

// UpdateLead PUTs the writable CRM fields for one lead.
func (w *CRMWriter) UpdateLead(ctx context.Context, id string, update ports.LeadUpdate) error {
	payload := updateLeadPayload{
		Status:        update.Status,
		Notes:         update.Notes,
		FollowUpAt:    update.FollowUpAt,
		FollowUpNotes: update.FollowUpNotes,
	}
	return w.client.Send(ctx, http.MethodPut, "/api/leads/"+id, payload)
}

// BulkUpdateStatus PATCHes one status onto the whole identifier batch.
func (w *CRMWriter) BulkUpdateStatus(ctx context.Context, ids []string, status domain.Status) error {
	return w.client.Send(ctx, http.MethodPatch, "/api/leads/bulk-status", bulkStatusPayload{
		LeadIDs: ids,
		Status:  status,
	})
}

type trendSummary struct {
	LeadsThisWeek      int     `json:"leadsThisWeek"`
	WeekOverWeekGrowth float64 `json:"weekOverWeekGrowth"`
	ScoreImprovement   float64 `json:"scoreImprovement"`
}

// FetchTrend reads the pre-aggregated stats summary snapshot.
func (w *CRMWriter) FetchTrend(ctx context.Context) (domain.TrendSnapshot, error) {
	var summary trendSummary
	if err := w.client.getJSON(ctx, "/api/leads/stats-summary", nil, &summary); err != nil {
		return domain.TrendSnapshot{}, err
	}
	return domain.TrendSnapshot{
		LeadsThisWeek:      summary.LeadsThisWeek,
		WeekOverWeekGrowth: summary.WeekOverWeekGrowth,
		ScoreImprovement:   summary.ScoreImprovement,
	}, nil
}

var (
	_ ports.StatusWriter  = (*CRMWriter)(nil)
	_ ports.TrendProvider = (*CRMWriter)(nil)
)
