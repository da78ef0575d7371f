// Package stats provides the KPI aggregation bounded context. It reads the
// activity record tables directly (read-only) and computes the dashboard
// snapshot on demand.
package stats

import (
	"time"

	apphttp "tracker_backend/internal/http"
	"tracker_backend/internal/stats/handler"
	"tracker_backend/internal/stats/repository"
	"tracker_backend/internal/stats/service"
	"tracker_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the stats bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the stats module with all its dependencies.
func NewModule(pool *pgxpool.Pool, storeTimeout time.Duration, log *logger.Logger) *Module {
	repo := repository.New(pool, storeTimeout)
	svc := service.New(repo, log)

	return &Module{
		handler: handler.New(svc),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "stats"
}

// RegisterRoutes mounts the stats route.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.GET("/stats", m.handler.Get)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
