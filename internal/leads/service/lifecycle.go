package service

import (
	"context"

	"leaddesk_backend/internal/leads/domain"
	"leaddesk_backend/internal/leads/ports"
	"leaddesk_backend/platform/apperr"
)

// SetStatus writes a single-lead update through to the collaborator, then
// invalidates the snapshots and re-runs the aggregation and stats as one
// coupled refresh. A failed write leaves the prior view untouched.
func (s *Service) SetStatus(ctx context.Context, id string, update ports.LeadUpdate, req ViewRequest) (ViewResult, error) {
	if id == "" {
		return ViewResult{}, apperr.Validation("lead id is required")
	}
	if update.Status != nil && !domain.IsKnownStatus(*update.Status) {
		return ViewResult{}, apperr.Validation("unknown lead status: " + string(*update.Status))
	}

	if err := s.writer.UpdateLead(ctx, id, update); err != nil {
		s.log.UpstreamError("update lead", err)
		return ViewResult{}, apperr.Wrap(apperr.KindUnavailable, "lead update failed", err)
	}

	return s.refreshAfterMutation(ctx, req)
}

// Archive is the soft delete: leads are never hard-deleted, only moved to
// Archived.
func (s *Service) Archive(ctx context.Context, id string, req ViewRequest) (ViewResult, error) {
	archived := domain.StatusArchived
	return s.SetStatus(ctx, id, ports.LeadUpdate{Status: &archived}, req)
}

// BulkSetStatus applies one status to the view's whole selection in a single
// request. An empty selection is rejected before any request is made. The
// collaborator reports pass/fail for the batch as a whole; on success the
// selection is cleared and the coupled refresh runs.
func (s *Service) BulkSetStatus(ctx context.Context, viewID string, status domain.Status, req ViewRequest) (ViewResult, error) {
	if !domain.IsKnownStatus(status) {
		return ViewResult{}, apperr.Validation("unknown lead status: " + string(status))
	}

	selection := s.selection(viewID)
	ids := selection.IDs()
	if len(ids) == 0 {
		return ViewResult{}, apperr.Validation("no leads selected")
	}

	if err := s.writer.BulkUpdateStatus(ctx, ids, status); err != nil {
		s.log.UpstreamError("bulk update status", err)
		return ViewResult{}, apperr.Wrap(apperr.KindUnavailable, "bulk status update failed", err)
	}

	selection.Clear()
	return s.refreshAfterMutation(ctx, req)
}

func (s *Service) refreshAfterMutation(ctx context.Context, req ViewRequest) (ViewResult, error) {
	s.snapshots.InvalidateAll(ctx)
	return s.View(ctx, req)
}
