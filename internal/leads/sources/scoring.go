package sources

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"leaddesk_backend/internal/leads/domain"
)

// LeadScoringAdapter reads the scoring engine's output. The origin uses
// snake_case field names and a combined name, and is the only origin that
// reports when a lead was last emailed.
type LeadScoringAdapter struct {
	client *Client
}

func NewLeadScoringAdapter(client *Client) *LeadScoringAdapter {
	return &LeadScoringAdapter{client: client}
}

func (a *LeadScoringAdapter) Source() domain.Source { return domain.SourceLeadScoring }
func (a *LeadScoringAdapter) Label() string         { return "Lead Scoring" }

type scoringLead struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Company       string `json:"company"`
	LeadScore     int    `json:"lead_score"`
	LeadGrade     string `json:"lead_grade"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	LastActivity  string `json:"last_activity"`
	LastEmailSent string `json:"last_email_sent"`
}

// Fetch honors the score-sort and limit hints.
func (a *LeadScoringAdapter) Fetch(ctx context.Context, hints Hints) ([]domain.Lead, error) {
	query := url.Values{}
	if hints.Score != "" {
		query.Set("sort", hints.Score)
	}
	if hints.Limit > 0 {
		query.Set("limit", strconv.Itoa(hints.Limit))
	}

	raws, err := a.client.getList(ctx, "/api/leads/scoring", query)
	if err != nil {
		return nil, err
	}

	leads := make([]domain.Lead, 0, len(raws))
	for _, raw := range raws {
		var rec scoringLead
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}

		first, last := splitFullName(rec.Name)
		createdAt := parseTime(rec.CreatedAt)
		lastActivity := parseTime(rec.LastActivity)
		if lastActivity.IsZero() {
			lastActivity = createdAt
		}

		leads = append(leads, domain.Lead{
			ID:             rec.ID,
			FirstName:      first,
			LastName:       last,
			Email:          rec.Email,
			Phone:          normalizePhone(rec.Phone),
			CompanyName:    rec.Company,
			LeadScore:      domain.ClampScore(rec.LeadScore),
			LeadGrade:      gradeOrDefault(rec.LeadGrade),
			Status:         statusOrDefault(rec.Status),
			Source:         domain.SourceLeadScoring,
			SourceLabel:    a.Label(),
			CreatedAt:      createdAt,
			LastActivityAt: lastActivity,
			LastEmailSent:  parseTimePtr(rec.LastEmailSent),
		})
	}
	return leads, nil
}
