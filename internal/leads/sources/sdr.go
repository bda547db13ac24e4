package sources

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"leaddesk_backend/internal/leads/domain"
)

// SDRAdapter reads the generic paginated lead list maintained by the sales
// development team. This is the richest origin: it carries score, grade and
// status, and its endpoint honors every fetch hint.
type SDRAdapter struct {
	client *Client
}

func NewSDRAdapter(client *Client) *SDRAdapter {
	return &SDRAdapter{client: client}
}

func (a *SDRAdapter) Source() domain.Source { return domain.SourceSDR }
func (a *SDRAdapter) Label() string         { return "SDR" }

type sdrLead struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CompanyName    string `json:"companyName"`
	CompanySize    string `json:"companySize"`
	LeadScore      int    `json:"leadScore"`
	LeadGrade      string `json:"leadGrade"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	LastActivityAt string `json:"lastActivityAt"`
	LastEmailSent  string `json:"lastEmailSent"`
}

func (a *SDRAdapter) Fetch(ctx context.Context, hints Hints) ([]domain.Lead, error) {
	query := url.Values{}
	if hints.Search != "" {
		query.Set("search", hints.Search)
	}
	if hints.Time != "" {
		query.Set("sortTime", hints.Time)
	}
	if hints.Score != "" {
		query.Set("sortScore", hints.Score)
	}
	if hints.Page > 0 {
		query.Set("page", strconv.Itoa(hints.Page))
	}
	if hints.Limit > 0 {
		query.Set("limit", strconv.Itoa(hints.Limit))
	}

	raws, err := a.client.getList(ctx, "/api/leads", query)
	if err != nil {
		return nil, err
	}

	leads := make([]domain.Lead, 0, len(raws))
	for _, raw := range raws {
		var rec sdrLead
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}

		createdAt := parseTime(rec.CreatedAt)
		lastActivity := parseTime(rec.LastActivityAt)
		if lastActivity.IsZero() {
			lastActivity = createdAt
		}

		leads = append(leads, domain.Lead{
			ID:             rec.ID,
			FirstName:      rec.FirstName,
			LastName:       rec.LastName,
			Email:          rec.Email,
			Phone:          normalizePhone(rec.Phone),
			CompanyName:    rec.CompanyName,
			CompanySize:    rec.CompanySize,
			LeadScore:      domain.ClampScore(rec.LeadScore),
			LeadGrade:      gradeOrDefault(rec.LeadGrade),
			Status:         statusOrDefault(rec.Status),
			Source:         domain.SourceSDR,
			SourceLabel:    a.Label(),
			CreatedAt:      createdAt,
			LastActivityAt: lastActivity,
			LastEmailSent:  parseTimePtr(rec.LastEmailSent),
		})
	}
	return leads, nil
}
