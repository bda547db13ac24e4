package sources

import (
	"testing"
	"time"

	"leaddesk_backend/internal/leads/domain"
)

func TestSplitFullName(t *testing.T) {
	cases := []struct {
		in        string
		wantFirst string
		wantLast  string
	}{
		{"", "", ""},
		{"Cher", "Cher", ""},
		{"Alice Anders", "Alice", "Anders"},
		{"Jan van der Berg", "Jan", "van der Berg"},
		{"  Bob   Brown  ", "Bob", "Brown"},
	}

	for _, tc := range cases {
		first, last := splitFullName(tc.in)
		if first != tc.wantFirst || last != tc.wantLast {
			t.Fatalf("splitFullName(%q): expected (%q, %q), got (%q, %q)",
				tc.in, tc.wantFirst, tc.wantLast, first, last)
		}
	}
}

func TestGradeOrDefault(t *testing.T) {
	cases := []struct {
		in   string
		want domain.Grade
	}{
		{"Hot", domain.GradeHot},
		{"hot", domain.GradeHot},
		{"FROZEN", domain.GradeFrozen},
		{"", domain.GradeCold},
		{"lukewarm", domain.GradeCold},
	}

	for _, tc := range cases {
		if got := gradeOrDefault(tc.in); got != tc.want {
			t.Fatalf("gradeOrDefault(%q): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestStatusOrDefault(t *testing.T) {
	if got := statusOrDefault("Contacted"); got != domain.StatusContacted {
		t.Fatalf("expected Contacted, got %s", got)
	}
	if got := statusOrDefault("In Process"); got != domain.StatusInProcess {
		t.Fatalf("expected In Process, got %s", got)
	}
	// Unknown and empty origin statuses default to New.
	if got := statusOrDefault("open"); got != domain.StatusNew {
		t.Fatalf("expected New for unknown status, got %s", got)
	}
	if got := statusOrDefault(""); got != domain.StatusNew {
		t.Fatalf("expected New for empty status, got %s", got)
	}
}

func TestParseTime(t *testing.T) {
	want := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	if got := parseTime("2025-06-15T10:30:00Z"); !got.Equal(want) {
		t.Fatalf("expected RFC3339 parse, got %v", got)
	}
	if got := parseTime("2025-06-15 10:30:00"); !got.Equal(want) {
		t.Fatalf("expected space-separated parse, got %v", got)
	}
	if got := parseTime("2025-06-15"); got.IsZero() {
		t.Fatalf("expected date-only parse to succeed")
	}
	if got := parseTime("not a date"); !got.IsZero() {
		t.Fatalf("expected zero time for garbage input, got %v", got)
	}
	if ptr := parseTimePtr(""); ptr != nil {
		t.Fatalf("expected nil pointer for empty input")
	}
}
