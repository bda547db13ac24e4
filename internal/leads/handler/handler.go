package handler

import (
	"net/http"

	"leaddesk_backend/internal/leads/domain"
	"leaddesk_backend/internal/leads/ports"
	"leaddesk_backend/internal/leads/service"
	"leaddesk_backend/internal/leads/transport"
	"leaddesk_backend/platform/httpkit"
	"leaddesk_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

type Handler struct {
	svc *service.Service
	val *validator.Validator
}

func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/stats", h.Stats)
	rg.PUT("/:id", h.Update)
	rg.PATCH("/:id/status", h.UpdateStatus)
	rg.DELETE("/:id", h.Archive)
	rg.PATCH("/bulk-status", h.BulkUpdateStatus)
	rg.GET("/selection", h.GetSelection)
	rg.POST("/selection", h.ToggleSelection)
	rg.DELETE("/selection", h.ClearSelection)
}

// bindView binds and validates the view parameters every endpoint shares.
func (h *Handler) bindView(c *gin.Context) (transport.ListLeadsRequest, bool) {
	var req transport.ListLeadsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return req, false
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return req, false
	}
	return req, true
}

// List returns one page of the aggregated, filtered, sorted collection along
// with the stats derived from the same aggregation pass.
func (h *Handler) List(c *gin.Context) {
	req, ok := h.bindView(c)
	if !ok {
		return
	}

	result, err := h.svc.View(c.Request.Context(), toViewRequest(req))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, toListResponse(result))
}

// Stats returns only the aggregated statistics for the requested scope.
func (h *Handler) Stats(c *gin.Context) {
	req, ok := h.bindView(c)
	if !ok {
		return
	}

	result, err := h.svc.View(c.Request.Context(), toViewRequest(req))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, toStatsResponse(result.Stats))
}

// Update writes status and CRM fields for one lead and returns the refreshed
// view.
func (h *Handler) Update(c *gin.Context) {
	viewReq, ok := h.bindView(c)
	if !ok {
		return
	}

	var req transport.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	update := ports.LeadUpdate{
		Notes:         req.Notes,
		FollowUpAt:    req.FollowUpDate,
		FollowUpNotes: req.FollowUpNotes,
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		update.Status = &status
	}

	result, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), update, toViewRequest(viewReq))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, toListResponse(result))
}

// UpdateStatus transitions one lead and returns the refreshed view.
func (h *Handler) UpdateStatus(c *gin.Context) {
	viewReq, ok := h.bindView(c)
	if !ok {
		return
	}

	var req transport.UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	status := domain.Status(req.Status)
	result, err := h.svc.SetStatus(c.Request.Context(), c.Param("id"), ports.LeadUpdate{Status: &status}, toViewRequest(viewReq))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, toListResponse(result))
}

// Archive soft-deletes a lead by transitioning it to Archived.
func (h *Handler) Archive(c *gin.Context) {
	viewReq, ok := h.bindView(c)
	if !ok {
		return
	}

	result, err := h.svc.Archive(c.Request.Context(), c.Param("id"), toViewRequest(viewReq))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, toListResponse(result))
}

// BulkUpdateStatus transitions the view's whole selection in one request.
func (h *Handler) BulkUpdateStatus(c *gin.Context) {
	viewReq, ok := h.bindView(c)
	if !ok {
		return
	}

	var req transport.BulkStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.BulkSetStatus(c.Request.Context(), viewReq.View, domain.Status(req.Status), toViewRequest(viewReq))
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, toListResponse(result))
}

// GetSelection returns the view's current cross-page selection.
func (h *Handler) GetSelection(c *gin.Context) {
	viewReq, ok := h.bindView(c)
	if !ok {
		return
	}

	ids := h.svc.SelectionIDs(viewReq.View)
	httpkit.OK(c, transport.SelectionResponse{View: viewReq.View, LeadIDs: ids, Count: len(ids)})
}

// ToggleSelection unions or subtracts the visible page's identifiers against
// the view's selection.
func (h *Handler) ToggleSelection(c *gin.Context) {
	viewReq, ok := h.bindView(c)
	if !ok {
		return
	}

	var req transport.SelectionToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	h.svc.TogglePage(viewReq.View, req.LeadIDs, *req.Selected)
	ids := h.svc.SelectionIDs(viewReq.View)
	httpkit.OK(c, transport.SelectionResponse{View: viewReq.View, LeadIDs: ids, Count: len(ids)})
}

// ClearSelection empties the view's selection.
func (h *Handler) ClearSelection(c *gin.Context) {
	viewReq, ok := h.bindView(c)
	if !ok {
		return
	}

	h.svc.ClearSelection(viewReq.View)
	httpkit.OK(c, transport.SelectionResponse{View: viewReq.View, LeadIDs: []string{}, Count: 0})
}
