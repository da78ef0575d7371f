package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"tracker_backend/internal/records/repository"
	"tracker_backend/internal/records/transport"
	"tracker_backend/platform/apperr"
	"tracker_backend/platform/logger"
	"tracker_backend/platform/phone"
	"tracker_backend/platform/validator"
)

// Layouts accepted for business timestamps. The dashboard posts
// datetime-local values (no seconds, no zone); RFC3339 covers API clients.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

const dateLayout = "2006-01-02"

// Service validates and persists the four activity record kinds.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new records service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// CreateCall validates and persists a call record.
func (s *Service) CreateCall(ctx context.Context, req transport.CreateCallRequest) (transport.CallResponse, error) {
	callerName := strings.TrimSpace(req.CallerName)
	if callerName == "" {
		return transport.CallResponse{}, apperr.Validation("callerName is required")
	}

	callerPhone, err := optionalPhone("callerPhone", req.CallerPhone)
	if err != nil {
		return transport.CallResponse{}, err
	}

	datetime, err := parseDatetime(req.Datetime)
	if err != nil {
		return transport.CallResponse{}, apperr.Validation("datetime must be a valid date/time")
	}

	call, err := s.repo.CreateCall(ctx, repository.CreateCallParams{
		CallerName:      callerName,
		CallerPhone:     callerPhone,
		PhoneE164:       phone.NormalizeE164(callerPhone),
		Datetime:        datetime,
		PersonRequested: strings.TrimSpace(req.PersonRequested),
		Notes:           strings.TrimSpace(req.Notes),
		NotifyEmail:     req.NotifyEmail,
		NotifyWhatsApp:  req.NotifyWhatsApp,
	})
	if err != nil {
		return transport.CallResponse{}, err
	}

	s.log.Info("call logged", "id", call.ID, "caller", call.CallerName)
	return toCallResponse(call), nil
}

// ListCalls returns all call records, most recent first.
func (s *Service) ListCalls(ctx context.Context) ([]transport.CallResponse, error) {
	items, err := s.repo.ListCalls(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]transport.CallResponse, len(items))
	for i, item := range items {
		responses[i] = toCallResponse(item)
	}
	return responses, nil
}

// CreateFollowup validates and persists a follow-up record. Status defaults
// to Pending only when the field is absent.
func (s *Service) CreateFollowup(ctx context.Context, req transport.CreateFollowupRequest) (transport.FollowupResponse, error) {
	status := repository.FollowupPending
	if req.Status != nil {
		status = strings.TrimSpace(*req.Status)
		if !validFollowupStatus(status) {
			return transport.FollowupResponse{}, apperr.Validation("status must be one of: Pending, In Progress, Completed, No Follow-up Needed")
		}
	}

	dueDate, err := optionalDate("dueDate", req.DueDate)
	if err != nil {
		return transport.FollowupResponse{}, err
	}

	followup, err := s.repo.CreateFollowup(ctx, repository.CreateFollowupParams{
		Status:        status,
		DueDate:       dueDate,
		Staff:         strings.TrimSpace(req.Staff),
		EmailReminder: req.EmailReminder,
		WAReminder:    req.WAReminder,
	})
	if err != nil {
		return transport.FollowupResponse{}, err
	}

	s.log.Info("followup created", "id", followup.ID, "status", followup.Status)
	return toFollowupResponse(followup), nil
}

// ListFollowups returns all follow-up records, most recent first.
func (s *Service) ListFollowups(ctx context.Context) ([]transport.FollowupResponse, error) {
	items, err := s.repo.ListFollowups(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]transport.FollowupResponse, len(items))
	for i, item := range items {
		responses[i] = toFollowupResponse(item)
	}
	return responses, nil
}

// CreateRequest validates and persists a customer service request.
func (s *Service) CreateRequest(ctx context.Context, req transport.CreateRequestRequest) (transport.RequestResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return transport.RequestResponse{}, apperr.Validation("name is required")
	}

	phoneValue, err := optionalPhone("phone", req.Phone)
	if err != nil {
		return transport.RequestResponse{}, err
	}

	request, err := s.repo.CreateRequest(ctx, repository.CreateRequestParams{
		Name:      name,
		Phone:     phoneValue,
		PhoneE164: phone.NormalizeE164(phoneValue),
		Email:     strings.TrimSpace(req.Email),
		Service:   strings.TrimSpace(req.Service),
		Notes:     strings.TrimSpace(req.Notes),
	})
	if err != nil {
		return transport.RequestResponse{}, err
	}

	s.log.Info("service request created", "id", request.ID, "name", request.Name)
	return toRequestResponse(request), nil
}

// ListRequests returns all customer service requests, most recent first.
func (s *Service) ListRequests(ctx context.Context) ([]transport.RequestResponse, error) {
	items, err := s.repo.ListRequests(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]transport.RequestResponse, len(items))
	for i, item := range items {
		responses[i] = toRequestResponse(item)
	}
	return responses, nil
}

// CreateIssue validates and persists a service issue. Priority defaults to
// Low only when the field is absent; a present out-of-enum value is
// rejected.
func (s *Service) CreateIssue(ctx context.Context, req transport.CreateIssueRequest) (transport.IssueResponse, error) {
	phoneValue, err := optionalPhone("phone", req.Phone)
	if err != nil {
		return transport.IssueResponse{}, err
	}

	priority := repository.PriorityLow
	if req.Priority != nil {
		priority = strings.TrimSpace(*req.Priority)
		if !validPriority(priority) {
			return transport.IssueResponse{}, apperr.Validation("priority must be one of: Low, Medium, High")
		}
	}

	dueDate, err := optionalDate("dueDate", req.DueDate)
	if err != nil {
		return transport.IssueResponse{}, err
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = repository.IssueStatusOpen
	}

	issue, err := s.repo.CreateIssue(ctx, repository.CreateIssueParams{
		CustomerName: strings.TrimSpace(req.CustomerName),
		Phone:        phoneValue,
		PhoneE164:    phone.NormalizeE164(phoneValue),
		VehicleModel: strings.TrimSpace(req.VehicleModel),
		Category:     strings.TrimSpace(req.Category),
		Description:  strings.TrimSpace(req.Description),
		Priority:     priority,
		Staff:        strings.TrimSpace(req.Staff),
		DueDate:      dueDate,
		Status:       status,
	})
	if err != nil {
		return transport.IssueResponse{}, err
	}

	s.log.Info("issue created", "id", issue.ID, "priority", issue.Priority)
	return toIssueResponse(issue), nil
}

// ListIssues returns all service issues, most recent first.
func (s *Service) ListIssues(ctx context.Context) ([]transport.IssueResponse, error) {
	items, err := s.repo.ListIssues(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]transport.IssueResponse, len(items))
	for i, item := range items {
		responses[i] = toIssueResponse(item)
	}
	return responses, nil
}

// ResolveIssue marks an issue Resolved and returns the updated record.
// Resolving twice succeeds both times and leaves the status Resolved.
func (s *Service) ResolveIssue(ctx context.Context, id uuid.UUID) (transport.IssueResponse, error) {
	issue, err := s.repo.ResolveIssue(ctx, id)
	if err != nil {
		return transport.IssueResponse{}, err
	}

	s.log.Info("issue resolved", "id", issue.ID)
	return toIssueResponse(issue), nil
}

func validFollowupStatus(status string) bool {
	switch status {
	case repository.FollowupPending, repository.FollowupInProgress,
		repository.FollowupCompleted, repository.FollowupNotNeeded:
		return true
	default:
		return false
	}
}

func validPriority(priority string) bool {
	switch priority {
	case repository.PriorityLow, repository.PriorityMedium, repository.PriorityHigh:
		return true
	default:
		return false
	}
}

// optionalPhone trims an optional phone value and enforces the accepted
// pattern when the value is present.
func optionalPhone(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", nil
	}
	if !validator.IsPhone(trimmed) {
		return "", apperr.Validation(field + " must be a valid phone number")
	}
	return trimmed, nil
}

func parseDatetime(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	var lastErr error
	for _, layout := range datetimeLayouts {
		parsed, err := time.ParseInLocation(layout, trimmed, time.Local)
		if err == nil {
			return parsed, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func optionalDate(field, value string) (*time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}
	parsed, err := parseDatetime(trimmed)
	if err != nil {
		return nil, apperr.Validation(field + " must be a valid date")
	}
	return &parsed, nil
}

func toCallResponse(call repository.Call) transport.CallResponse {
	return transport.CallResponse{
		ID:              call.ID,
		CallerName:      call.CallerName,
		CallerPhone:     call.CallerPhone,
		Datetime:        call.Datetime.Format(time.RFC3339),
		PersonRequested: call.PersonRequested,
		Notes:           call.Notes,
		NotifyEmail:     call.NotifyEmail,
		NotifyWhatsApp:  call.NotifyWhatsApp,
		CreatedAt:       call.CreatedAt.Format(time.RFC3339),
	}
}

func toFollowupResponse(followup repository.Followup) transport.FollowupResponse {
	return transport.FollowupResponse{
		ID:            followup.ID,
		Status:        followup.Status,
		DueDate:       formatDate(followup.DueDate),
		Staff:         followup.Staff,
		EmailReminder: followup.EmailReminder,
		WAReminder:    followup.WAReminder,
		CreatedAt:     followup.CreatedAt.Format(time.RFC3339),
	}
}

func toRequestResponse(request repository.Request) transport.RequestResponse {
	return transport.RequestResponse{
		ID:        request.ID,
		Name:      request.Name,
		Phone:     request.Phone,
		Email:     request.Email,
		Service:   request.Service,
		Notes:     request.Notes,
		CreatedAt: request.CreatedAt.Format(time.RFC3339),
	}
}

func toIssueResponse(issue repository.Issue) transport.IssueResponse {
	return transport.IssueResponse{
		ID:           issue.ID,
		CustomerName: issue.CustomerName,
		Phone:        issue.Phone,
		VehicleModel: issue.VehicleModel,
		Category:     issue.Category,
		Description:  issue.Description,
		Priority:     issue.Priority,
		Staff:        issue.Staff,
		DueDate:      formatDate(issue.DueDate),
		Status:       issue.Status,
		CreatedAt:    issue.CreatedAt.Format(time.RFC3339),
	}
}

func formatDate(value *time.Time) *string {
	if value == nil {
		return nil
	}
	formatted := value.Format(dateLayout)
	return &formatted
}
