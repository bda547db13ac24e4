package service

import (
	"context"
	"errors"
	"testing"

	"leaddesk_backend/internal/leads/cache"
	"leaddesk_backend/internal/leads/domain"
	"leaddesk_backend/internal/leads/ports"
	"leaddesk_backend/internal/leads/sources"
	"leaddesk_backend/platform/apperr"
	"leaddesk_backend/platform/logger"
)

type fakeAdapter struct {
	source domain.Source
	label  string
	leads  []domain.Lead
	err    error
	calls  int
}

func (f *fakeAdapter) Source() domain.Source { return f.source }
func (f *fakeAdapter) Label() string         { return f.label }
func (f *fakeAdapter) Fetch(ctx context.Context, hints sources.Hints) ([]domain.Lead, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.leads, nil
}

type fakeWriter struct {
	updatedID     string
	updatedStatus *domain.Status
	bulkIDs       []string
	bulkStatus    domain.Status
	err           error
}

func (f *fakeWriter) UpdateLead(ctx context.Context, id string, update ports.LeadUpdate) error {
	if f.err != nil {
		return f.err
	}
	f.updatedID = id
	f.updatedStatus = update.Status
	return nil
}

func (f *fakeWriter) BulkUpdateStatus(ctx context.Context, ids []string, status domain.Status) error {
	if f.err != nil {
		return f.err
	}
	f.bulkIDs = ids
	f.bulkStatus = status
	return nil
}

type fakeTrends struct {
	trend domain.TrendSnapshot
	err   error
}

func (f *fakeTrends) FetchTrend(ctx context.Context) (domain.TrendSnapshot, error) {
	return f.trend, f.err
}

func newTestService(writer *fakeWriter, trends *fakeTrends, adapters ...sources.Adapter) *Service {
	log := logger.New("development")
	return New(adapters, writer, trends, cache.New(nil, 0, log), log, 100)
}

func contactLead(id, company string, status domain.Status) domain.Lead {
	return domain.Lead{ID: id, CompanyName: company, Status: status, LeadGrade: domain.GradeCold, Source: domain.SourceContactForm, SourceLabel: "Contact Form"}
}

func chatbotLead(id string, status domain.Status) domain.Lead {
	return domain.Lead{ID: id, Status: status, LeadGrade: domain.GradeHot, LeadScore: 90, Source: domain.SourceChatbot, SourceLabel: "Chatbot"}
}

func pageIDs(result ViewResult) []string {
	out := make([]string, 0, len(result.Page.Items))
	for _, l := range result.Page.Items {
		out = append(out, l.ID)
	}
	return out
}

func TestAggregate_PreservesRegistrationOrder(t *testing.T) {
	got := aggregate([][]domain.Lead{
		{contactLead("cf-1", "Acme", domain.StatusNew), contactLead("cf-2", "Beta", domain.StatusNew)},
		nil,
		{chatbotLead("cb-1", domain.StatusNew)},
	})

	if len(got) != 3 || got[0].ID != "cf-1" || got[1].ID != "cf-2" || got[2].ID != "cb-1" {
		t.Fatalf("expected concatenation in registration order, got %+v", got)
	}
}

func TestView_AggregatesEveryOrigin(t *testing.T) {
	first := &fakeAdapter{source: domain.SourceContactForm, label: "Contact Form", leads: []domain.Lead{contactLead("cf-1", "Acme", domain.StatusNew)}}
	second := &fakeAdapter{source: domain.SourceChatbot, label: "Chatbot", leads: []domain.Lead{chatbotLead("cb-1", domain.StatusNew)}}
	svc := newTestService(&fakeWriter{}, &fakeTrends{}, first, second)

	result, err := svc.View(context.Background(), ViewRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Page.TotalItems != 2 {
		t.Fatalf("expected both origins aggregated, got %d items", result.Page.TotalItems)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", result.Warnings)
	}
}

func TestView_FailingOriginDegradesNotAborts(t *testing.T) {
	healthy := &fakeAdapter{source: domain.SourceContactForm, label: "Contact Form", leads: []domain.Lead{contactLead("cf-1", "Acme", domain.StatusNew)}}
	broken := &fakeAdapter{source: domain.SourceChatbot, label: "Chatbot", err: errors.New("connection refused")}
	svc := newTestService(&fakeWriter{}, &fakeTrends{}, healthy, broken)

	result, err := svc.View(context.Background(), ViewRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("expected degraded view, got error: %v", err)
	}

	if len(result.Page.Items) != 1 || result.Page.Items[0].ID != "cf-1" {
		t.Fatalf("expected the healthy origin's lead, got %v", pageIDs(result))
	}
	if len(result.Warnings) != 1 || result.Warnings[0] != "Chatbot unavailable" {
		t.Fatalf("expected a chatbot warning, got %v", result.Warnings)
	}
}

func TestView_SingleSourceSubstitution(t *testing.T) {
	cf := &fakeAdapter{source: domain.SourceContactForm, label: "Contact Form", leads: []domain.Lead{contactLead("cf-1", "Acme", domain.StatusNew)}}
	cb := &fakeAdapter{source: domain.SourceChatbot, label: "Chatbot", leads: []domain.Lead{chatbotLead("cb-1", domain.StatusNew)}}
	svc := newTestService(&fakeWriter{}, &fakeTrends{}, cf, cb)

	result, err := svc.View(context.Background(), ViewRequest{Source: "Chatbot", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Page.Items) != 1 || result.Page.Items[0].ID != "cb-1" {
		t.Fatalf("expected only chatbot leads, got %v", pageIDs(result))
	}
	if cf.calls != 0 {
		t.Fatalf("expected contact-form adapter to be skipped, got %d calls", cf.calls)
	}
}

func TestView_UnknownSourceRejected(t *testing.T) {
	svc := newTestService(&fakeWriter{}, &fakeTrends{},
		&fakeAdapter{source: domain.SourceChatbot, label: "Chatbot"})

	_, err := svc.View(context.Background(), ViewRequest{Source: "Telepathy"})
	if !apperr.Is(err, apperr.KindBadRequest) {
		t.Fatalf("expected bad request error, got %v", err)
	}
}

func TestView_StatsIgnoreSearchButHonorStatusScope(t *testing.T) {
	adapter := &fakeAdapter{source: domain.SourceContactForm, label: "Contact Form", leads: []domain.Lead{
		contactLead("a", "Acme Corp", domain.StatusNew),
		contactLead("b", "Other Co", domain.StatusNew),
		contactLead("c", "Other Co", domain.StatusContacted),
	}}
	svc := newTestService(&fakeWriter{}, &fakeTrends{}, adapter)

	result, err := svc.View(context.Background(), ViewRequest{Search: "acme", Status: "New", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The displayed page honors the search; the stats are derived from the
	// status scope alone, so both New leads count.
	if len(result.Page.Items) != 1 || result.Page.Items[0].ID != "a" {
		t.Fatalf("expected only the Acme lead on the page, got %v", pageIDs(result))
	}
	if result.Stats.TotalLeads != 2 {
		t.Fatalf("expected stats over both New leads, got %d", result.Stats.TotalLeads)
	}
}

func TestView_TrendFailureDegradesStats(t *testing.T) {
	adapter := &fakeAdapter{source: domain.SourceContactForm, label: "Contact Form", leads: []domain.Lead{contactLead("a", "Acme", domain.StatusNew)}}
	svc := newTestService(&fakeWriter{}, &fakeTrends{err: errors.New("summary down")}, adapter)

	result, err := svc.View(context.Background(), ViewRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Stats.LeadsThisWeek != 0 || result.Stats.WeekOverWeekGrowth != 0 {
		t.Fatalf("expected zeroed trend fields, got %+v", result.Stats)
	}

	found := false
	for _, w := range result.Warnings {
		if w == "stats summary unavailable" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a stats summary warning, got %v", result.Warnings)
	}
}

func TestApply_StaleRefreshDiscarded(t *testing.T) {
	svc := newTestService(&fakeWriter{}, &fakeTrends{})

	newer := ViewResult{Sequence: 2, Stats: domain.AggregatedStats{TotalLeads: 5}}
	stale := ViewResult{Sequence: 1, Stats: domain.AggregatedStats{TotalLeads: 99}}

	_ = svc.apply(newer)
	got := svc.apply(stale)

	if got.Sequence != 2 || got.Stats.TotalLeads != 5 {
		t.Fatalf("expected the newer view to win, got seq=%d total=%d", got.Sequence, got.Stats.TotalLeads)
	}
}

func TestSetStatus_UnknownStatusRejectedBeforeWrite(t *testing.T) {
	writer := &fakeWriter{}
	svc := newTestService(writer, &fakeTrends{},
		&fakeAdapter{source: domain.SourceContactForm, label: "Contact Form"})

	bogus := domain.Status("Reopened")
	_, err := svc.SetStatus(context.Background(), "a", ports.LeadUpdate{Status: &bogus}, ViewRequest{})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if writer.updatedID != "" {
		t.Fatalf("expected no write for invalid status")
	}
}

func TestSetStatus_WriteThroughAndCoupledRefresh(t *testing.T) {
	writer := &fakeWriter{}
	adapter := &fakeAdapter{source: domain.SourceContactForm, label: "Contact Form", leads: []domain.Lead{contactLead("a", "Acme", domain.StatusNew)}}
	svc := newTestService(writer, &fakeTrends{}, adapter)

	status := domain.StatusContacted
	result, err := svc.SetStatus(context.Background(), "a", ports.LeadUpdate{Status: &status}, ViewRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if writer.updatedID != "a" || writer.updatedStatus == nil || *writer.updatedStatus != domain.StatusContacted {
		t.Fatalf("expected write-through of Contacted for lead a")
	}
	if adapter.calls != 1 {
		t.Fatalf("expected the coupled refresh to re-fetch the origin, got %d calls", adapter.calls)
	}
	if result.Page.TotalItems != 1 {
		t.Fatalf("expected refreshed view, got %+v", result.Page)
	}
}

func TestSetStatus_WriteFailureLeavesViewUnchanged(t *testing.T) {
	adapter := &fakeAdapter{source: domain.SourceContactForm, label: "Contact Form", leads: []domain.Lead{contactLead("a", "Acme", domain.StatusNew)}}
	svc := newTestService(&fakeWriter{}, &fakeTrends{}, adapter)

	before, err := svc.View(context.Background(), ViewRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	failing := &fakeWriter{err: errors.New("upstream down")}
	svc.writer = failing

	status := domain.StatusLost
	_, err = svc.SetStatus(context.Background(), "a", ports.LeadUpdate{Status: &status}, ViewRequest{Page: 1, PageSize: 10})
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}

	svc.mu.Lock()
	current := svc.current
	svc.mu.Unlock()
	if current.Sequence != before.Sequence {
		t.Fatalf("expected prior view to remain applied, got seq %d vs %d", current.Sequence, before.Sequence)
	}
}

func TestArchive_TransitionsToArchived(t *testing.T) {
	writer := &fakeWriter{}
	svc := newTestService(writer, &fakeTrends{},
		&fakeAdapter{source: domain.SourceContactForm, label: "Contact Form"})

	_, err := svc.Archive(context.Background(), "a", ViewRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer.updatedStatus == nil || *writer.updatedStatus != domain.StatusArchived {
		t.Fatalf("expected archive to write Archived status")
	}
}

func TestBulkSetStatus_EmptySelectionRejectedBeforeRequest(t *testing.T) {
	writer := &fakeWriter{}
	svc := newTestService(writer, &fakeTrends{},
		&fakeAdapter{source: domain.SourceContactForm, label: "Contact Form"})

	_, err := svc.BulkSetStatus(context.Background(), "overview", domain.StatusContacted, ViewRequest{})
	if !apperr.Is(err, apperr.KindValidation) {
		t.Fatalf("expected validation error for empty selection, got %v", err)
	}
	if writer.bulkIDs != nil {
		t.Fatalf("expected no upstream request for empty selection")
	}
}

func TestBulkSetStatus_WritesSelectionAndClears(t *testing.T) {
	writer := &fakeWriter{}
	adapter := &fakeAdapter{source: domain.SourceContactForm, label: "Contact Form", leads: []domain.Lead{contactLead("a", "Acme", domain.StatusNew)}}
	svc := newTestService(writer, &fakeTrends{}, adapter)

	svc.TogglePage("overview", []string{"a", "b"}, true)
	svc.TogglePage("overview", []string{"c"}, true)

	_, err := svc.BulkSetStatus(context.Background(), "overview", domain.StatusFinalized, ViewRequest{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(writer.bulkIDs) != 3 || writer.bulkStatus != domain.StatusFinalized {
		t.Fatalf("expected bulk write of 3 ids with Finalized, got %v %s", writer.bulkIDs, writer.bulkStatus)
	}
	if got := len(svc.SelectionIDs("overview")); got != 0 {
		t.Fatalf("expected selection cleared after bulk transition, got %d", got)
	}
}

func TestSelectionIsolatedPerView(t *testing.T) {
	svc := newTestService(&fakeWriter{}, &fakeTrends{})

	svc.TogglePage("overview", []string{"a"}, true)
	svc.TogglePage("pipeline", []string{"b", "c"}, true)

	if got := len(svc.SelectionIDs("overview")); got != 1 {
		t.Fatalf("expected 1 selected in overview, got %d", got)
	}
	if got := len(svc.SelectionIDs("pipeline")); got != 2 {
		t.Fatalf("expected 2 selected in pipeline, got %d", got)
	}
}
