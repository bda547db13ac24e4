package sources

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"leaddesk_backend/internal/leads/domain"
)

// ContactFormAdapter reads leads submitted through the website contact form.
// The origin stores a single combined name and its own field names for phone
// and company, and carries no score or status.
type ContactFormAdapter struct {
	client *Client
}

func NewContactFormAdapter(client *Client) *ContactFormAdapter {
	return &ContactFormAdapter{client: client}
}

func (a *ContactFormAdapter) Source() domain.Source { return domain.SourceContactForm }
func (a *ContactFormAdapter) Label() string         { return "Contact Form" }

type contactFormLead struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Company     string `json:"company"`
	CompanySize string `json:"company_size"`
	CreatedAt   string `json:"created_at"`
}

// Fetch honors only the limit hint; the contact-form endpoint has no search
// or sort parameters.
func (a *ContactFormAdapter) Fetch(ctx context.Context, hints Hints) ([]domain.Lead, error) {
	query := url.Values{}
	if hints.Limit > 0 {
		query.Set("limit", strconv.Itoa(hints.Limit))
	}

	raws, err := a.client.getList(ctx, "/api/leads/contact-form", query)
	if err != nil {
		return nil, err
	}

	leads := make([]domain.Lead, 0, len(raws))
	for _, raw := range raws {
		var rec contactFormLead
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}

		first, last := splitFullName(rec.Name)
		createdAt := parseTime(rec.CreatedAt)
		leads = append(leads, domain.Lead{
			ID:             rec.ID,
			FirstName:      first,
			LastName:       last,
			Email:          rec.Email,
			Phone:          normalizePhone(rec.PhoneNumber),
			CompanyName:    rec.Company,
			CompanySize:    rec.CompanySize,
			LeadScore:      0,
			LeadGrade:      domain.GradeCold,
			Status:         domain.StatusNew,
			Source:         domain.SourceContactForm,
			SourceLabel:    a.Label(),
			CreatedAt:      createdAt,
			LastActivityAt: createdAt,
		})
	}
	return leads, nil
}
