package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tracker_backend/platform/apperr"
	"tracker_backend/platform/db"
)

const issueNotFoundMessage = "issue not found"

// Repo implements the records repository with PostgreSQL.
type Repo struct {
	pool    *pgxpool.Pool
	timeout time.Duration
}

// New creates a new records repository. Every store operation carries the
// given bounded timeout.
func New(pool *pgxpool.Pool, timeout time.Duration) *Repo {
	return &Repo{pool: pool, timeout: timeout}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// CreateCall inserts a call record.
func (r *Repo) CreateCall(ctx context.Context, params CreateCallParams) (Call, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO calls (caller_name, caller_phone, caller_phone_e164, datetime, person_requested, notes, notify_email, notify_whatsapp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, caller_name, caller_phone, datetime, person_requested, notes, notify_email, notify_whatsapp, created_at`

	var call Call
	if err := r.pool.QueryRow(ctx, query,
		params.CallerName, params.CallerPhone, params.PhoneE164, params.Datetime,
		params.PersonRequested, params.Notes, params.NotifyEmail, params.NotifyWhatsApp,
	).Scan(
		&call.ID, &call.CallerName, &call.CallerPhone, &call.Datetime,
		&call.PersonRequested, &call.Notes, &call.NotifyEmail, &call.NotifyWhatsApp, &call.CreatedAt,
	); err != nil {
		return Call{}, db.StoreError("create call", err)
	}

	return call, nil
}

// ListCalls returns all call records, most recent first.
func (r *Repo) ListCalls(ctx context.Context) ([]Call, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, caller_name, caller_phone, datetime, person_requested, notes, notify_email, notify_whatsapp, created_at
		FROM calls
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, db.StoreError("list calls", err)
	}
	defer rows.Close()

	items := make([]Call, 0)
	for rows.Next() {
		var call Call
		if err := rows.Scan(
			&call.ID, &call.CallerName, &call.CallerPhone, &call.Datetime,
			&call.PersonRequested, &call.Notes, &call.NotifyEmail, &call.NotifyWhatsApp, &call.CreatedAt,
		); err != nil {
			return nil, db.StoreError("scan call", err)
		}
		items = append(items, call)
	}
	if rows.Err() != nil {
		return nil, db.StoreError("iterate calls", rows.Err())
	}

	return items, nil
}

// CreateFollowup inserts a follow-up record.
func (r *Repo) CreateFollowup(ctx context.Context, params CreateFollowupParams) (Followup, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO followups (status, due_date, staff, email_reminder, wa_reminder)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, status, due_date, staff, email_reminder, wa_reminder, created_at`

	var followup Followup
	if err := r.pool.QueryRow(ctx, query,
		params.Status, params.DueDate, params.Staff, params.EmailReminder, params.WAReminder,
	).Scan(
		&followup.ID, &followup.Status, &followup.DueDate, &followup.Staff,
		&followup.EmailReminder, &followup.WAReminder, &followup.CreatedAt,
	); err != nil {
		return Followup{}, db.StoreError("create followup", err)
	}

	return followup, nil
}

// ListFollowups returns all follow-up records, most recent first.
func (r *Repo) ListFollowups(ctx context.Context) ([]Followup, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, status, due_date, staff, email_reminder, wa_reminder, created_at
		FROM followups
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, db.StoreError("list followups", err)
	}
	defer rows.Close()

	items := make([]Followup, 0)
	for rows.Next() {
		var followup Followup
		if err := rows.Scan(
			&followup.ID, &followup.Status, &followup.DueDate, &followup.Staff,
			&followup.EmailReminder, &followup.WAReminder, &followup.CreatedAt,
		); err != nil {
			return nil, db.StoreError("scan followup", err)
		}
		items = append(items, followup)
	}
	if rows.Err() != nil {
		return nil, db.StoreError("iterate followups", rows.Err())
	}

	return items, nil
}

// CreateRequest inserts a customer service request.
func (r *Repo) CreateRequest(ctx context.Context, params CreateRequestParams) (Request, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO requests (name, phone, phone_e164, email, service, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, phone, email, service, notes, created_at`

	var request Request
	if err := r.pool.QueryRow(ctx, query,
		params.Name, params.Phone, params.PhoneE164, params.Email, params.Service, params.Notes,
	).Scan(
		&request.ID, &request.Name, &request.Phone, &request.Email,
		&request.Service, &request.Notes, &request.CreatedAt,
	); err != nil {
		return Request{}, db.StoreError("create request", err)
	}

	return request, nil
}

// ListRequests returns all customer service requests, most recent first.
func (r *Repo) ListRequests(ctx context.Context) ([]Request, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, name, phone, email, service, notes, created_at
		FROM requests
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, db.StoreError("list requests", err)
	}
	defer rows.Close()

	items := make([]Request, 0)
	for rows.Next() {
		var request Request
		if err := rows.Scan(
			&request.ID, &request.Name, &request.Phone, &request.Email,
			&request.Service, &request.Notes, &request.CreatedAt,
		); err != nil {
			return nil, db.StoreError("scan request", err)
		}
		items = append(items, request)
	}
	if rows.Err() != nil {
		return nil, db.StoreError("iterate requests", rows.Err())
	}

	return items, nil
}

// CreateIssue inserts a service issue.
func (r *Repo) CreateIssue(ctx context.Context, params CreateIssueParams) (Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		INSERT INTO issues (customer_name, phone, phone_e164, vehicle_model, category, description, priority, staff, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, customer_name, phone, vehicle_model, category, description, priority, staff, due_date, status, created_at`

	var issue Issue
	if err := r.pool.QueryRow(ctx, query,
		params.CustomerName, params.Phone, params.PhoneE164, params.VehicleModel, params.Category,
		params.Description, params.Priority, params.Staff, params.DueDate, params.Status,
	).Scan(
		&issue.ID, &issue.CustomerName, &issue.Phone, &issue.VehicleModel, &issue.Category,
		&issue.Description, &issue.Priority, &issue.Staff, &issue.DueDate, &issue.Status, &issue.CreatedAt,
	); err != nil {
		return Issue{}, db.StoreError("create issue", err)
	}

	return issue, nil
}

// ListIssues returns all service issues, most recent first.
func (r *Repo) ListIssues(ctx context.Context) ([]Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, customer_name, phone, vehicle_model, category, description, priority, staff, due_date, status, created_at
		FROM issues
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, db.StoreError("list issues", err)
	}
	defer rows.Close()

	items := make([]Issue, 0)
	for rows.Next() {
		var issue Issue
		if err := rows.Scan(
			&issue.ID, &issue.CustomerName, &issue.Phone, &issue.VehicleModel, &issue.Category,
			&issue.Description, &issue.Priority, &issue.Staff, &issue.DueDate, &issue.Status, &issue.CreatedAt,
		); err != nil {
			return nil, db.StoreError("scan issue", err)
		}
		items = append(items, issue)
	}
	if rows.Err() != nil {
		return nil, db.StoreError("iterate issues", rows.Err())
	}

	return items, nil
}

// ResolveIssue sets the issue status to Resolved. The update is a single
// atomic statement; re-resolving keeps the status unchanged.
func (r *Repo) ResolveIssue(ctx context.Context, id uuid.UUID) (Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		UPDATE issues
		SET status = 'Resolved'
		WHERE id = $1
		RETURNING id, customer_name, phone, vehicle_model, category, description, priority, staff, due_date, status, created_at`

	var issue Issue
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&issue.ID, &issue.CustomerName, &issue.Phone, &issue.VehicleModel, &issue.Category,
		&issue.Description, &issue.Priority, &issue.Staff, &issue.DueDate, &issue.Status, &issue.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Issue{}, apperr.NotFound(issueNotFoundMessage)
		}
		return Issue{}, db.StoreError("resolve issue", err)
	}

	return issue, nil
}
