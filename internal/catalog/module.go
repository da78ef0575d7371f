// Package catalog provides the reference catalogs bounded context: the
// staff, service, and category name lists used for display and selection.
// Activity records reference these entries by name only; removing an entry
// never cascades into historical records.
package catalog

import (
	"context"
	"time"

	"tracker_backend/internal/catalog/handler"
	"tracker_backend/internal/catalog/repository"
	"tracker_backend/internal/catalog/service"
	apphttp "tracker_backend/internal/http"
	"tracker_backend/platform/logger"
	"tracker_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the catalog bounded context module implementing http.Module.
type Module struct {
	staff      *handler.Handler
	services   *handler.Handler
	categories *handler.Handler
	service    *service.Service
}

// NewModule creates and initializes the catalog module with all its dependencies.
func NewModule(pool *pgxpool.Pool, storeTimeout time.Duration, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool, storeTimeout)
	svc := service.New(repo, log)

	return &Module{
		staff:      handler.New(svc, val, repository.KindStaff),
		services:   handler.New(svc, val, repository.KindService),
		categories: handler.New(svc, val, repository.KindCategory),
		service:    svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "catalog"
}

// SeedDefaults seeds each empty catalog with its default entries.
func (m *Module) SeedDefaults(ctx context.Context) error {
	return m.service.SeedDefaults(ctx)
}

// RegisterRoutes mounts the three catalog route groups.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	mount := func(path string, h *handler.Handler) {
		group := ctx.API.Group(path)
		group.GET("", h.List)
		group.POST("", h.Add)
		group.DELETE("/:id", h.Remove)
	}

	mount("/staff", m.staff)
	mount("/services", m.services)
	mount("/categories", m.categories)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
