package pipeline

import (
	"reflect"
	"testing"

	"leaddesk_backend/internal/leads/domain"
)

func sampleLeads() []domain.Lead {
	return []domain.Lead{
		{ID: "1", FirstName: "Alice", LastName: "Anders", Email: "alice@acme.example", CompanyName: "Acme Corp", LeadGrade: domain.GradeHot, Status: domain.StatusNew, Source: domain.SourceContactForm},
		{ID: "2", FirstName: "Bob", LastName: "Brown", Email: "bob@other.example", CompanyName: "Other Co", LeadGrade: domain.GradeWarm, Status: domain.StatusContacted, Source: domain.SourceChatbot},
		{ID: "3", FirstName: "Carol", LastName: "Clark", Email: "carol@other.example", CompanyName: "Other Co", LeadGrade: domain.GradeCold, Status: domain.StatusInProcess, Source: domain.SourceSDR},
		{ID: "4", FirstName: "Dan", LastName: "Drake", Email: "dan@other.example", CompanyName: "Other Co", LeadGrade: domain.GradeFrozen, Status: domain.StatusArchived, Source: domain.SourceSDR},
	}
}

func ids(leads []domain.Lead) []string {
	out := make([]string, 0, len(leads))
	for _, l := range leads {
		out = append(out, l.ID)
	}
	return out
}

func TestFilter_SearchMatchesCompanyCaseInsensitive(t *testing.T) {
	got := Filter(sampleLeads(), FilterSpec{Search: "acme"})

	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Fatalf("expected only the Acme Corp lead, got %v", ids(got))
	}
}

func TestFilter_SearchMatchesFullName(t *testing.T) {
	got := Filter(sampleLeads(), FilterSpec{Search: "alice anders"})

	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Fatalf("expected full-name match for lead 1, got %v", ids(got))
	}
}

func TestFilter_GradeIsCaseInsensitive(t *testing.T) {
	got := Filter(sampleLeads(), FilterSpec{Grade: "hot"})

	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Fatalf("expected grade filter to match case-insensitively, got %v", ids(got))
	}
}

func TestFilter_StatusIsCaseSensitive(t *testing.T) {
	if got := Filter(sampleLeads(), FilterSpec{Status: "contacted"}); len(got) != 0 {
		t.Fatalf("expected lowercase status to match nothing, got %v", ids(got))
	}

	got := Filter(sampleLeads(), FilterSpec{Status: "Contacted"})
	if !reflect.DeepEqual(ids(got), []string{"2"}) {
		t.Fatalf("expected exact status match for lead 2, got %v", ids(got))
	}
}

func TestFilter_SourcePredicate(t *testing.T) {
	got := Filter(sampleLeads(), FilterSpec{Source: "SDR"})

	if !reflect.DeepEqual(ids(got), []string{"3", "4"}) {
		t.Fatalf("expected SDR leads 3 and 4, got %v", ids(got))
	}
}

func TestFilter_OverviewSuppressesInProcessAndArchived(t *testing.T) {
	got := Filter(sampleLeads(), FilterSpec{View: "overview"})

	if !reflect.DeepEqual(ids(got), []string{"1", "2"}) {
		t.Fatalf("expected overview to hide In Process and Archived, got %v", ids(got))
	}
}

func TestFilter_ExplicitStatusOverridesViewPolicy(t *testing.T) {
	got := Filter(sampleLeads(), FilterSpec{View: "overview", Status: "Archived"})

	if !reflect.DeepEqual(ids(got), []string{"4"}) {
		t.Fatalf("expected explicit Archived filter to override suppression, got %v", ids(got))
	}
}

func TestFilter_EmptySpecPreservesOrder(t *testing.T) {
	leads := sampleLeads()
	got := Filter(leads, FilterSpec{})

	if !reflect.DeepEqual(ids(got), ids(leads)) {
		t.Fatalf("expected order-preserving no-op, got %v", ids(got))
	}
}

func TestFilter_IsIdempotent(t *testing.T) {
	spec := FilterSpec{Search: "other", Grade: "Warm"}

	once := Filter(sampleLeads(), spec)
	twice := Filter(once, spec)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected filtering twice with the same spec to be identical:\nonce:  %v\ntwice: %v", ids(once), ids(twice))
	}
}

func TestSuppressedStatuses_UnknownViewSuppressesNothing(t *testing.T) {
	if got := SuppressedStatuses("nonexistent"); len(got) != 0 {
		t.Fatalf("expected no suppression for unknown view, got %v", got)
	}
}
