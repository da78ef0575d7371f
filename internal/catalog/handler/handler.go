package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tracker_backend/internal/catalog/repository"
	"tracker_backend/internal/catalog/service"
	"tracker_backend/internal/catalog/transport"
	"tracker_backend/platform/httpkit"
	"tracker_backend/platform/validator"
)

const (
	msgInvalidRequest = "invalid request"
	msgInvalidID      = "invalid catalog entry ID"
)

// Handler handles HTTP requests for one reference catalog. The same handler
// type serves staff, services, and categories; the kind is fixed at
// construction.
type Handler struct {
	svc  *service.Service
	val  *validator.Validator
	kind repository.Kind
}

// New creates a catalog handler bound to a kind.
func New(svc *service.Service, val *validator.Validator, kind repository.Kind) *Handler {
	return &Handler{svc: svc, val: val, kind: kind}
}

// List retrieves all entries, name ascending.
// GET /api/{staff|services|categories}
func (h *Handler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), h.kind)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Add performs get-or-create on the catalog. Responds 200 with the entry,
// whether it was just created or already existed.
// POST /api/{staff|services|categories}
func (h *Handler) Add(c *gin.Context) {
	var req transport.AddEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.HandleError(c, err)
		return
	}

	result, err := h.svc.Add(c.Request.Context(), h.kind, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Remove deletes an entry by id. Always acknowledges with {ok:true}, whether
// or not the id existed.
// DELETE /api/{staff|services|categories}/:id
func (h *Handler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidID)
		return
	}

	if httpkit.HandleError(c, h.svc.Remove(c.Request.Context(), h.kind, id)) {
		return
	}
	httpkit.OK(c, transport.DeleteResponse{OK: true})
}
