package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Call is a persisted call record.
type Call struct {
	ID              uuid.UUID
	CallerName      string
	CallerPhone     string
	Datetime        time.Time
	PersonRequested string
	Notes           string
	NotifyEmail     bool
	NotifyWhatsApp  bool
	CreatedAt       time.Time
}

// CreateCallParams holds the validated fields for a new call record.
// PhoneE164 is a denormalized normalization of CallerPhone; the raw string
// remains the value of record.
type CreateCallParams struct {
	CallerName      string
	CallerPhone     string
	PhoneE164       string
	Datetime        time.Time
	PersonRequested string
	Notes           string
	NotifyEmail     bool
	NotifyWhatsApp  bool
}

// Followup is a persisted follow-up record.
type Followup struct {
	ID            uuid.UUID
	Status        string
	DueDate       *time.Time
	Staff         string
	EmailReminder bool
	WAReminder    bool
	CreatedAt     time.Time
}

// CreateFollowupParams holds the validated fields for a new follow-up.
type CreateFollowupParams struct {
	Status        string
	DueDate       *time.Time
	Staff         string
	EmailReminder bool
	WAReminder    bool
}

// Request is a persisted customer service request.
type Request struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     string
	Service   string
	Notes     string
	CreatedAt time.Time
}

// CreateRequestParams holds the validated fields for a new service request.
type CreateRequestParams struct {
	Name      string
	Phone     string
	PhoneE164 string
	Email     string
	Service   string
	Notes     string
}

// Issue is a persisted service issue.
type Issue struct {
	ID           uuid.UUID
	CustomerName string
	Phone        string
	VehicleModel string
	Category     string
	Description  string
	Priority     string
	Staff        string
	DueDate      *time.Time
	Status       string
	CreatedAt    time.Time
}

// CreateIssueParams holds the validated fields for a new issue.
type CreateIssueParams struct {
	CustomerName string
	Phone        string
	PhoneE164    string
	VehicleModel string
	Category     string
	Description  string
	Priority     string
	Staff        string
	DueDate      *time.Time
	Status       string
}

// Repository abstracts activity record persistence. Every record's
// created_at is assigned by the store at insert time and never changes.
// Lists return records most recent first.
type Repository interface {
	CreateCall(ctx context.Context, params CreateCallParams) (Call, error)
	ListCalls(ctx context.Context) ([]Call, error)

	CreateFollowup(ctx context.Context, params CreateFollowupParams) (Followup, error)
	ListFollowups(ctx context.Context) ([]Followup, error)

	CreateRequest(ctx context.Context, params CreateRequestParams) (Request, error)
	ListRequests(ctx context.Context) ([]Request, error)

	CreateIssue(ctx context.Context, params CreateIssueParams) (Issue, error)
	ListIssues(ctx context.Context) ([]Issue, error)
	// ResolveIssue sets the issue status to Resolved and returns the updated
	// record. Resolving an already-resolved issue is a no-op in effect.
	// Returns a NotFound error for an unknown id.
	ResolveIssue(ctx context.Context, id uuid.UUID) (Issue, error)
}
