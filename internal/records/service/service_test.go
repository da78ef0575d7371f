package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"tracker_backend/internal/records/repository"
	"tracker_backend/internal/records/transport"
	"tracker_backend/platform/apperr"
	"tracker_backend/platform/logger"
)

// memoryRepo keeps records in slices, newest first, the way the store
// lists them.
type memoryRepo struct {
	calls     []repository.Call
	followups []repository.Followup
	requests  []repository.Request
	issues    []repository.Issue
}

func (m *memoryRepo) CreateCall(ctx context.Context, params repository.CreateCallParams) (repository.Call, error) {
	call := repository.Call{
		ID:              uuid.New(),
		CallerName:      params.CallerName,
		CallerPhone:     params.CallerPhone,
		Datetime:        params.Datetime,
		PersonRequested: params.PersonRequested,
		Notes:           params.Notes,
		NotifyEmail:     params.NotifyEmail,
		NotifyWhatsApp:  params.NotifyWhatsApp,
		CreatedAt:       time.Now(),
	}
	m.calls = append([]repository.Call{call}, m.calls...)
	return call, nil
}

func (m *memoryRepo) ListCalls(ctx context.Context) ([]repository.Call, error) {
	return m.calls, nil
}

func (m *memoryRepo) CreateFollowup(ctx context.Context, params repository.CreateFollowupParams) (repository.Followup, error) {
	followup := repository.Followup{
		ID:            uuid.New(),
		Status:        params.Status,
		DueDate:       params.DueDate,
		Staff:         params.Staff,
		EmailReminder: params.EmailReminder,
		WAReminder:    params.WAReminder,
		CreatedAt:     time.Now(),
	}
	m.followups = append([]repository.Followup{followup}, m.followups...)
	return followup, nil
}

func (m *memoryRepo) ListFollowups(ctx context.Context) ([]repository.Followup, error) {
	return m.followups, nil
}

func (m *memoryRepo) CreateRequest(ctx context.Context, params repository.CreateRequestParams) (repository.Request, error) {
	request := repository.Request{
		ID:        uuid.New(),
		Name:      params.Name,
		Phone:     params.Phone,
		Email:     params.Email,
		Service:   params.Service,
		Notes:     params.Notes,
		CreatedAt: time.Now(),
	}
	m.requests = append([]repository.Request{request}, m.requests...)
	return request, nil
}

func (m *memoryRepo) ListRequests(ctx context.Context) ([]repository.Request, error) {
	return m.requests, nil
}

func (m *memoryRepo) CreateIssue(ctx context.Context, params repository.CreateIssueParams) (repository.Issue, error) {
	issue := repository.Issue{
		ID:           uuid.New(),
		CustomerName: params.CustomerName,
		Phone:        params.Phone,
		VehicleModel: params.VehicleModel,
		Category:     params.Category,
		Description:  params.Description,
		Priority:     params.Priority,
		Staff:        params.Staff,
		DueDate:      params.DueDate,
		Status:       params.Status,
		CreatedAt:    time.Now(),
	}
	m.issues = append([]repository.Issue{issue}, m.issues...)
	return issue, nil
}

func (m *memoryRepo) ListIssues(ctx context.Context) ([]repository.Issue, error) {
	return m.issues, nil
}

func (m *memoryRepo) ResolveIssue(ctx context.Context, id uuid.UUID) (repository.Issue, error) {
	for i := range m.issues {
		if m.issues[i].ID == id {
			m.issues[i].Status = repository.IssueStatusResolved
			return m.issues[i], nil
		}
	}
	return repository.Issue{}, apperr.NotFound("issue not found")
}

func newService(repo repository.Repository) *Service {
	return New(repo, logger.New("development"))
}

func strptr(value string) *string { return &value }

func TestCreateCall_RejectsMalformedPhone(t *testing.T) {
	repo := &memoryRepo{}
	svc := newService(repo)

	_, err := svc.CreateCall(context.Background(), transport.CreateCallRequest{
		CallerName:  "Asha",
		CallerPhone: "abc",
		Datetime:    "2025-09-01T10:30",
	})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if len(repo.calls) != 0 {
		t.Fatalf("rejected call must not be persisted, got %d records", len(repo.calls))
	}
}

func TestCreateCall_RequiresCallerName(t *testing.T) {
	svc := newService(&memoryRepo{})

	_, err := svc.CreateCall(context.Background(), transport.CreateCallRequest{
		CallerName: "   ",
		Datetime:   "2025-09-01T10:30",
	})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestCreateCall_AcceptsDashboardDatetime(t *testing.T) {
	svc := newService(&memoryRepo{})

	call, err := svc.CreateCall(context.Background(), transport.CreateCallRequest{
		CallerName:  "Asha",
		CallerPhone: "+91 98765 43210",
		Datetime:    "2025-09-01T10:30",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2025, 9, 1, 10, 30, 0, 0, time.Local).Format(time.RFC3339)
	if call.Datetime != want {
		t.Fatalf("expected datetime %s, got %s", want, call.Datetime)
	}
}

func TestCreateCall_RejectsUnparseableDatetime(t *testing.T) {
	svc := newService(&memoryRepo{})

	_, err := svc.CreateCall(context.Background(), transport.CreateCallRequest{
		CallerName: "Asha",
		Datetime:   "next tuesday",
	})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestCreateFollowup_StatusDefaultsToPending(t *testing.T) {
	svc := newService(&memoryRepo{})

	followup, err := svc.CreateFollowup(context.Background(), transport.CreateFollowupRequest{
		Staff: "Front Desk",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if followup.Status != repository.FollowupPending {
		t.Fatalf("expected status Pending, got %q", followup.Status)
	}
}

func TestCreateFollowup_RejectsUnknownStatus(t *testing.T) {
	repo := &memoryRepo{}
	svc := newService(repo)

	_, err := svc.CreateFollowup(context.Background(), transport.CreateFollowupRequest{
		Status: strptr("Done"),
	})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if len(repo.followups) != 0 {
		t.Fatalf("rejected followup must not be persisted, got %d records", len(repo.followups))
	}
}

func TestCreateFollowup_ParsesDueDate(t *testing.T) {
	svc := newService(&memoryRepo{})

	followup, err := svc.CreateFollowup(context.Background(), transport.CreateFollowupRequest{
		Status:  strptr(repository.FollowupInProgress),
		DueDate: "2025-09-15",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if followup.DueDate == nil || *followup.DueDate != "2025-09-15" {
		t.Fatalf("expected dueDate 2025-09-15, got %v", followup.DueDate)
	}
}

func TestCreateRequest_RequiresName(t *testing.T) {
	svc := newService(&memoryRepo{})

	_, err := svc.CreateRequest(context.Background(), transport.CreateRequestRequest{
		Phone: "+91 98765 43210",
	})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected a validation error, got %v", err)
	}
}

func TestCreateIssue_PriorityDefaultsToLowOnlyWhenAbsent(t *testing.T) {
	svc := newService(&memoryRepo{})
	ctx := context.Background()

	issue, err := svc.CreateIssue(ctx, transport.CreateIssueRequest{CustomerName: "Ravi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if issue.Priority != repository.PriorityLow {
		t.Fatalf("expected priority Low, got %q", issue.Priority)
	}
	if issue.Status != repository.IssueStatusOpen {
		t.Fatalf("expected status Open, got %q", issue.Status)
	}

	_, err = svc.CreateIssue(ctx, transport.CreateIssueRequest{
		CustomerName: "Ravi",
		Priority:     strptr("Urgent"),
	})
	if apperr.GetKind(err) != apperr.KindValidation {
		t.Fatalf("expected a validation error for unknown priority, got %v", err)
	}
}

func TestResolveIssue_IsIdempotent(t *testing.T) {
	svc := newService(&memoryRepo{})
	ctx := context.Background()

	created, err := svc.CreateIssue(ctx, transport.CreateIssueRequest{CustomerName: "Ravi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := svc.ResolveIssue(ctx, created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Status != repository.IssueStatusResolved {
		t.Fatalf("expected status Resolved, got %q", first.Status)
	}

	second, err := svc.ResolveIssue(ctx, created.ID)
	if err != nil {
		t.Fatalf("resolving twice must succeed, got %v", err)
	}
	if second.Status != repository.IssueStatusResolved {
		t.Fatalf("expected status to stay Resolved, got %q", second.Status)
	}
}

func TestResolveIssue_UnknownIDIsNotFound(t *testing.T) {
	svc := newService(&memoryRepo{})

	_, err := svc.ResolveIssue(context.Background(), uuid.New())
	if apperr.GetKind(err) != apperr.KindNotFound {
		t.Fatalf("expected a not-found error, got %v", err)
	}
}
