package sources

import (
	"strings"
	"time"

	"leaddesk_backend/internal/leads/domain"
	"leaddesk_backend/platform/phone"
)

// splitFullName splits a combined name into first and last parts for origins
// that only capture a single name field. Everything after the first word
// becomes the last name.
func splitFullName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// gradeOrDefault maps a raw origin grade onto the enum, defaulting to Cold.
func gradeOrDefault(raw string) domain.Grade {
	for _, g := range []domain.Grade{domain.GradeHot, domain.GradeWarm, domain.GradeCold, domain.GradeFrozen} {
		if strings.EqualFold(raw, string(g)) {
			return g
		}
	}
	return domain.GradeCold
}

// statusOrDefault maps a raw origin status onto the enum, defaulting to New.
func statusOrDefault(raw string) domain.Status {
	s := domain.Status(strings.TrimSpace(raw))
	if domain.IsKnownStatus(s) {
		return s
	}
	return domain.StatusNew
}

// normalizePhone is a seam over the platform helper so adapters stay terse.
func normalizePhone(raw string) string {
	return phone.NormalizeE164(raw)
}

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTime tolerates the timestamp formats the origins emit. A value that
// parses with none of them yields the zero time, which sorts last under
// "newest" and first under "oldest".
func parseTime(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseTimePtr is parseTime for optional fields.
func parseTimePtr(raw string) *time.Time {
	t := parseTime(raw)
	if t.IsZero() {
		return nil
	}
	return &t
}
