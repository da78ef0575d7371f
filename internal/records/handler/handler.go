package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tracker_backend/internal/records/service"
	"tracker_backend/internal/records/transport"
	"tracker_backend/platform/httpkit"
	"tracker_backend/platform/validator"
)

const (
	msgInvalidRequest = "invalid request"
	msgInvalidID      = "invalid issue ID"
)

// Handler handles HTTP requests for activity records.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new records handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// CreateCall logs an incoming call.
// POST /api/calls
func (h *Handler) CreateCall(c *gin.Context) {
	var req transport.CreateCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, err)
		return
	}

	result, err := h.svc.CreateCall(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, result)
}

// ListCalls returns all calls, most recent first.
// GET /api/calls
func (h *Handler) ListCalls(c *gin.Context) {
	result, err := h.svc.ListCalls(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CreateFollowup schedules a follow-up.
// POST /api/followups
func (h *Handler) CreateFollowup(c *gin.Context) {
	var req transport.CreateFollowupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	result, err := h.svc.CreateFollowup(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, result)
}

// ListFollowups returns all follow-ups, most recent first.
// GET /api/followups
func (h *Handler) ListFollowups(c *gin.Context) {
	result, err := h.svc.ListFollowups(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CreateRequest records a customer service request.
// POST /api/requests
func (h *Handler) CreateRequest(c *gin.Context) {
	var req transport.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, err)
		return
	}

	result, err := h.svc.CreateRequest(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, result)
}

// ListRequests returns all customer service requests, most recent first.
// GET /api/requests
func (h *Handler) ListRequests(c *gin.Context) {
	result, err := h.svc.ListRequests(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// CreateIssue reports a service issue.
// POST /api/issues
func (h *Handler) CreateIssue(c *gin.Context) {
	var req transport.CreateIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, err)
		return
	}

	result, err := h.svc.CreateIssue(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, result)
}

// ListIssues returns all service issues, most recent first.
// GET /api/issues
func (h *Handler) ListIssues(c *gin.Context) {
	result, err := h.svc.ListIssues(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// ResolveIssue marks an issue Resolved.
// PATCH /api/issues/:id/resolve
func (h *Handler) ResolveIssue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	result, err := h.svc.ResolveIssue(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
