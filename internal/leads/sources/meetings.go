package sources

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"leaddesk_backend/internal/leads/domain"
)

// ScheduleMeetingAdapter reads leads who booked a meeting through the
// scheduling widget. The origin names the person an attendee and the company
// an organization.
type ScheduleMeetingAdapter struct {
	client *Client
}

func NewScheduleMeetingAdapter(client *Client) *ScheduleMeetingAdapter {
	return &ScheduleMeetingAdapter{client: client}
}

func (a *ScheduleMeetingAdapter) Source() domain.Source { return domain.SourceScheduleMeeting }
func (a *ScheduleMeetingAdapter) Label() string         { return "Schedule Meeting" }

type meetingLead struct {
	ID            string `json:"id"`
	AttendeeName  string `json:"attendeeName"`
	AttendeeEmail string `json:"attendeeEmail"`
	Phone         string `json:"phone"`
	Organization  string `json:"organization"`
	Status        string `json:"status"`
	MeetingAt     string `json:"meetingAt"`
	CreatedAt     string `json:"createdAt"`
}

// Fetch honors only the limit hint.
func (a *ScheduleMeetingAdapter) Fetch(ctx context.Context, hints Hints) ([]domain.Lead, error) {
	query := url.Values{}
	if hints.Limit > 0 {
		query.Set("limit", strconv.Itoa(hints.Limit))
	}

	raws, err := a.client.getList(ctx, "/api/leads/meetings", query)
	if err != nil {
		return nil, err
	}

	leads := make([]domain.Lead, 0, len(raws))
	for _, raw := range raws {
		var rec meetingLead
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, err
		}

		first, last := splitFullName(rec.AttendeeName)
		createdAt := parseTime(rec.CreatedAt)
		lastActivity := parseTime(rec.MeetingAt)
		if lastActivity.IsZero() {
			lastActivity = createdAt
		}

		leads = append(leads, domain.Lead{
			ID:             rec.ID,
			FirstName:      first,
			LastName:       last,
			Email:          rec.AttendeeEmail,
			Phone:          normalizePhone(rec.Phone),
			CompanyName:    rec.Organization,
			LeadScore:      0,
			LeadGrade:      domain.GradeCold,
			Status:         statusOrDefault(rec.Status),
			Source:         domain.SourceScheduleMeeting,
			SourceLabel:    a.Label(),
			CreatedAt:      createdAt,
			LastActivityAt: lastActivity,
		})
	}
	return leads, nil
}
