package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tracker_backend/internal/records/repository"
	"tracker_backend/internal/records/service"
	"tracker_backend/internal/records/transport"
	"tracker_backend/platform/apperr"
	"tracker_backend/platform/httpkit"
	"tracker_backend/platform/logger"
	"tracker_backend/platform/validator"
)

type memoryRepo struct {
	calls  []repository.Call
	issues []repository.Issue
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
	return repository.Followup{ID: uuid.New(), Status: params.Status, CreatedAt: time.Now()}, nil
}

func (m *memoryRepo) ListFollowups(ctx context.Context) ([]repository.Followup, error) {
	return nil, nil
}

func (m *memoryRepo) CreateRequest(ctx context.Context, params repository.CreateRequestParams) (repository.Request, error) {
	return repository.Request{ID: uuid.New(), Name: params.Name, CreatedAt: time.Now()}, nil
}

func (m *memoryRepo) ListRequests(ctx context.Context) ([]repository.Request, error) {
	return nil, nil
}

func (m *memoryRepo) CreateIssue(ctx context.Context, params repository.CreateIssueParams) (repository.Issue, error) {
	issue := repository.Issue{
		ID:           uuid.New(),
		CustomerName: params.CustomerName,
		Priority:     params.Priority,
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

func newRouter(repo repository.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := New(service.New(repo, logger.New("development")), validator.New())

	r := gin.New()
	api := r.Group("/api")
	api.POST("/calls", h.CreateCall)
	api.GET("/calls", h.ListCalls)
	api.POST("/issues", h.CreateIssue)
	api.PATCH("/issues/:id/resolve", h.ResolveIssue)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCall_Endpoint(t *testing.T) {
	repo := &memoryRepo{}
	r := newRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/calls",
		`{"callerName":"Asha","callerPhone":"+91 98765 43210","datetime":"2025-09-01T10:30"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp transport.CallResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if resp.ID == uuid.Nil || resp.CallerName != "Asha" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(repo.calls) != 1 {
		t.Fatalf("expected 1 persisted call, got %d", len(repo.calls))
	}
}

func TestCreateCall_EndpointRejectsBadPhone(t *testing.T) {
	repo := &memoryRepo{}
	r := newRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/calls",
		`{"callerName":"Asha","callerPhone":"abc","datetime":"2025-09-01T10:30"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var resp httpkit.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if !strings.Contains(resp.Error, "callerPhone") {
		t.Fatalf("expected the error to name callerPhone, got %q", resp.Error)
	}
	if len(repo.calls) != 0 {
		t.Fatalf("rejected call must not be persisted, got %d records", len(repo.calls))
	}
}

func TestCreateCall_EndpointRejectsMalformedJSON(t *testing.T) {
	r := newRouter(&memoryRepo{})

	w := doJSON(t, r, http.MethodPost, "/api/calls", `{"callerName":`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestResolveIssue_Endpoint(t *testing.T) {
	repo := &memoryRepo{}
	r := newRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/issues", `{"customerName":"Ravi"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created transport.IssueResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/issues/"+created.ID.String()+"/resolve", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resolved transport.IssueResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resolved); err != nil {
		t.Fatalf("unexpected body: %v", err)
	}
	if resolved.Status != repository.IssueStatusResolved {
		t.Fatalf("expected status Resolved, got %q", resolved.Status)
	}
}

func TestResolveIssue_EndpointBadID(t *testing.T) {
	r := newRouter(&memoryRepo{})

	w := doJSON(t, r, http.MethodPatch, "/api/issues/not-a-uuid/resolve", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestResolveIssue_EndpointUnknownID(t *testing.T) {
	r := newRouter(&memoryRepo{})

	w := doJSON(t, r, http.MethodPatch, "/api/issues/"+uuid.NewString()+"/resolve", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}
