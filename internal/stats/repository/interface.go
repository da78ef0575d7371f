package repository

import (
	"context"
	"time"
)

// CallRow is the projection of a call record the aggregator needs: the
// grouping keys, the business call time, and the record creation time.
type CallRow struct {
	CallerName      string
	CallerPhone     string
	PersonRequested string
	Datetime        time.Time
	CreatedAt       time.Time
}

// Repository abstracts the read-only record access the aggregator performs.
// The aggregator recomputes every snapshot from these full scans; volumes
// are small and no KPI state is ever cached or materialized.
type Repository interface {
	ListCalls(ctx context.Context) ([]CallRow, error)
	ListFollowupStatuses(ctx context.Context) ([]string, error)
}
