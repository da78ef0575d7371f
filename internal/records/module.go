// Package records provides the activity records bounded context: calls,
// follow-ups, customer service requests, and service issues. Records are
// append-mostly; the only mutation anywhere is the one-way issue resolve.
package records

import (
	"time"

	apphttp "tracker_backend/internal/http"
	"tracker_backend/internal/records/handler"
	"tracker_backend/internal/records/repository"
	"tracker_backend/internal/records/service"
	"tracker_backend/platform/logger"
	"tracker_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the records bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the records module with all its dependencies.
func NewModule(pool *pgxpool.Pool, storeTimeout time.Duration, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool, storeTimeout)
	svc := service.New(repo, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "records"
}

// RegisterRoutes mounts the activity record routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/calls", m.handler.CreateCall)
	ctx.API.GET("/calls", m.handler.ListCalls)

	ctx.API.POST("/followups", m.handler.CreateFollowup)
	ctx.API.GET("/followups", m.handler.ListFollowups)

	ctx.API.POST("/requests", m.handler.CreateRequest)
	ctx.API.GET("/requests", m.handler.ListRequests)

	ctx.API.POST("/issues", m.handler.CreateIssue)
	ctx.API.GET("/issues", m.handler.ListIssues)
	ctx.API.PATCH("/issues/:id/resolve", m.handler.ResolveIssue)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
