// Package service orchestrates the lead aggregation pipeline: parallel
// origin fetches, aggregation, the pure view transforms, stats derivation,
// and status mutations with their coupled refresh.
package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"leaddesk_backend/internal/leads/cache"
	"leaddesk_backend/internal/leads/domain"
	"leaddesk_backend/internal/leads/pipeline"
	"leaddesk_backend/internal/leads/ports"
	"leaddesk_backend/internal/leads/sources"
	"leaddesk_backend/platform/apperr"
	"leaddesk_backend/platform/logger"

	"golang.org/x/sync/errgroup"
)

const fetchConcurrency = 5

// ViewRequest describes one requested dashboard view: the aggregation scope,
// the filter and sort specs, and the page window. It is passed explicitly so
// the pipeline carries no ambient view state.
type ViewRequest struct {
	View      string
	Source    string
	Search    string
	Grade     string
	Status    string
	SortTime  string
	SortScore string
	Page      int
	PageSize  int
}

// ViewResult is one atomic view-refresh unit: the displayed page and the
// stats derived from the same aggregation pass, never from two different
// scopes.
type ViewResult struct {
	Page     pipeline.Page
	Stats    domain.AggregatedStats
	Warnings []string
	Sequence uint64
}

// Service owns the in-memory derived views; the backend collaborator owns
// the authoritative lead records.
type Service struct {
	adapters   []sources.Adapter
	writer     ports.StatusWriter
	trends     ports.TrendProvider
	snapshots  *cache.Snapshot
	log        *logger.Logger
	fetchLimit int

	// seq orders refreshes; a refresh that resolves after a newer one has
	// been applied is discarded so a stale response can never win.
	seq        atomic.Uint64
	mu         sync.Mutex
	appliedSeq uint64
	current    ViewResult
	hasView    bool

	selMu      sync.Mutex
	selections map[string]*domain.SelectionSet
}

// New creates the service. Adapter registration order defines aggregation
// order.
func New(adapters []sources.Adapter, writer ports.StatusWriter, trends ports.TrendProvider, snapshots *cache.Snapshot, log *logger.Logger, fetchLimit int) *Service {
	return &Service{
		adapters:   adapters,
		writer:     writer,
		trends:     trends,
		snapshots:  snapshots,
		log:        log,
		fetchLimit: fetchLimit,
		selections: make(map[string]*domain.SelectionSet),
	}
}

// View runs the full pipeline for req and returns the freshest applied view.
// If a newer refresh completed while this one was in flight, the newer
// result is returned instead of the stale one.
func (s *Service) View(ctx context.Context, req ViewRequest) (ViewResult, error) {
	seq := s.seq.Add(1)

	inScope, err := s.scopedAdapters(req.Source)
	if err != nil {
		return ViewResult{}, err
	}

	hints := sources.Hints{
		Search: req.Search,
		Time:   req.SortTime,
		Score:  req.SortScore,
		Limit:  s.fetchLimit,
	}

	collections := make([][]domain.Lead, len(inScope))
	var warnMu sync.Mutex
	var warnings []string

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i, adapter := range inScope {
		i, adapter := i, adapter
		g.Go(func() error {
			leads, fetchErr := s.fetchOrigin(gctx, adapter, hints)
			if fetchErr != nil {
				// One failing origin degrades the aggregate, never aborts it.
				s.log.SourceDegraded(string(adapter.Source()), fetchErr)
				warnMu.Lock()
				warnings = append(warnings, adapter.Label()+" unavailable")
				warnMu.Unlock()
				return nil
			}
			collections[i] = leads
			return nil
		})
	}
	// Barrier: the aggregator must not run until every in-scope adapter has
	// resolved, successfully or with a caught failure.
	_ = g.Wait()

	aggregated := aggregate(collections)

	trend, trendErr := s.trends.FetchTrend(ctx)
	if trendErr != nil {
		s.log.UpstreamError("fetch trend summary", trendErr)
		warnings = append(warnings, "stats summary unavailable")
		trend = domain.TrendSnapshot{}
	}

	statusScoped := pipeline.StatusScope(aggregated, req.Status, req.View)
	stats := domain.ComputeStats(statusScoped, trend)

	filtered := pipeline.Filter(aggregated, pipeline.FilterSpec{
		Search: req.Search,
		Grade:  req.Grade,
		Status: req.Status,
		Source: req.Source,
		View:   req.View,
	})
	sorted := pipeline.Sort(filtered, pipeline.SortSpec{
		Time:  req.SortTime,
		Score: req.SortScore,
	})
	page := pipeline.Paginate(sorted, req.Page, req.PageSize)

	result := ViewResult{
		Page:     page,
		Stats:    stats,
		Warnings: warnings,
		Sequence: seq,
	}

	return s.apply(result), nil
}

// apply installs result unless a newer refresh already landed, in which case
// the newer view is returned and the stale one dropped.
func (s *Service) apply(result ViewResult) ViewResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasView && result.Sequence < s.appliedSeq {
		return s.current
	}

	s.appliedSeq = result.Sequence
	s.current = result
	s.hasView = true
	return result
}

func (s *Service) scopedAdapters(source string) ([]sources.Adapter, error) {
	if source == "" {
		return s.adapters, nil
	}
	for _, adapter := range s.adapters {
		if string(adapter.Source()) == source {
			return []sources.Adapter{adapter}, nil
		}
	}
	return nil, apperr.BadRequest("unknown lead source: " + source)
}

func (s *Service) fetchOrigin(ctx context.Context, adapter sources.Adapter, hints sources.Hints) ([]domain.Lead, error) {
	key := snapshotKey(adapter.Source(), hints)
	if leads, ok := s.snapshots.Get(ctx, key); ok {
		return leads, nil
	}

	leads, err := adapter.Fetch(ctx, hints)
	if err != nil {
		return nil, err
	}

	s.snapshots.Set(ctx, key, leads)
	return leads, nil
}

// aggregate concatenates adapter outputs in registration order. The same
// person arriving from two origins is intentionally not deduplicated; no
// identity rule exists across origins.
func aggregate(collections [][]domain.Lead) []domain.Lead {
	total := 0
	for _, c := range collections {
		total += len(c)
	}
	out := make([]domain.Lead, 0, total)
	for _, c := range collections {
		out = append(out, c...)
	}
	return out
}

func snapshotKey(source domain.Source, hints sources.Hints) string {
	return fmt.Sprintf("%s|%s|%s|%s|%d", source, hints.Search, hints.Time, hints.Score, hints.Limit)
}
