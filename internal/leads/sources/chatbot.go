package sources

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"leaddesk_backend/internal/leads/domain"
)

// ChatbotAdapter reads leads captured by the website chatbot. The origin has
// discrete name fields and tracks conversation activity, but scoring happens
// elsewhere so grade and score fall back to their defaults.
type ChatbotAdapter struct {
	client *Client
}

func NewChatbotAdapter(client *Client) *ChatbotAdapter {
	return &ChatbotAdapter{client: client}
}

func (a *ChatbotAdapter) Source() domain.Source { return domain.SourceChatbot }
func (a *ChatbotAdapter) Label() string         { return "Chatbot" }

type chatbotLead struct {
	ID             string `json:"id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	CompanyName    string `json:"companyName"`
	Status         string `json:"status"`
	CreatedAt      string `json:"createdAt"`
	LastActivityAt string `json:"lastActivityAt"`
}

// Fetch honors the search and limit hints.
func (a *ChatbotAdapter) Fetch(ctx context.Context, hints Hints) ([]domain.Lead, error) {
	query := url.Values{}
	if hints.Search != "" {
		query.Set("search", hints.Search)
	}
	if hints.Limit > 0 {
		query.Set("limit", strconv.Itoa(hints.Limit))
	}

	raws, err := a.client.getList(ctx, "/api/leads/chatbot", query)
	if err != nil {
		return nil, err
	}

	leads := make([]domain.Lead, 0, len(raws))
	for _, raw := range raws {
		var rec chatbotLead
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
			LeadScore:      0,
			LeadGrade:      domain.GradeCold,
			Status:         statusOrDefault(rec.Status),
			Source:         domain.SourceChatbot,
			SourceLabel:    a.Label(),
			CreatedAt:      createdAt,
			LastActivityAt: lastActivity,
		})
	}
	return leads, nil
}
