package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"tracker_backend/internal/stats/service"
	"tracker_backend/platform/httpkit"
)

// Handler handles HTTP requests for the KPI snapshot.
type Handler struct {
	svc *service.Service
}

// New creates a new stats handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Get computes and returns the KPI snapshot as of now.
// GET /api/stats
func (h *Handler) Get(c *gin.Context) {
	result, err := h.svc.Compute(c.Request.Context(), time.Now())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
