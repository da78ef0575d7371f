package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"tracker_backend/platform/db"
)

// Repo implements the stats read model with PostgreSQL.
type Repo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// New creates a new stats repository. Every store operation carries the
// given bounded timeout.
func New(pool *pgxpool.Pool, timeout time.Duration) *Repo {
	return &Repo{pool: pool, timeout: timeout}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// ListCalls returns the aggregation projection of every call record.
func (r *Repo) ListCalls(ctx context.Context) ([]CallRow, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT caller_name, caller_phone, person_requested, datetime, created_at
		FROM calls`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, db.StoreError("list calls for stats", err)
	}
	defer rows.Close()

	items := make([]CallRow, 0)
	for rows.Next() {
		var row CallRow
		if err := rows.Scan(&row.CallerName, &row.CallerPhone, &row.PersonRequested, &row.Datetime, &row.CreatedAt); err != nil {
			return nil, db.StoreError("scan call for stats", err)
		}
		items = append(items, row)
	}
	if rows.Err() != nil {
		return nil, db.StoreError("iterate calls for stats", rows.Err())
	}

	return items, nil
}

// ListFollowupStatuses returns the status of every follow-up record.
func (r *Repo) ListFollowupStatuses(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.pool.Query(ctx, `SELECT status FROM followups`)
	if err != nil {
		return nil, db.StoreError("list followup statuses", err)
	}
	defer rows.Close()

	statuses := make([]string, 0)
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return nil, db.StoreError("scan followup status", err)
		}
		statuses = append(statuses, status)
	}
	if rows.Err() != nil {
		return nil, db.StoreError("iterate followup statuses", rows.Err())
	}

	return statuses, nil
}
