package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"tracker_backend/internal/stats/repository"
	"tracker_backend/platform/apperr"
	"tracker_backend/platform/logger"
)

type fakeRepo struct {
	calls    []repository.CallRow
	statuses []string
	callsErr error
	statErr  error
}

func (f *fakeRepo) ListCalls(ctx context.Context) ([]repository.CallRow, error) {
	if f.callsErr != nil {
		return nil, f.callsErr
	}
	return f.calls, nil
}

func (f *fakeRepo) ListFollowupStatuses(ctx context.Context) ([]string, error) {
	if f.statErr != nil {
		return nil, f.statErr
	}
	return f.statuses, nil
}

func newService(repo repository.Repository) *Service {
	return New(repo, logger.New("development"))
}

func TestCompute_FrequentCallersRanking(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	callAt := func(h int) time.Time { return now.Add(-time.Duration(h) * time.Hour) }

	repo := &fakeRepo{
		calls: []repository.CallRow{
			{CallerName: "Asha", CallerPhone: "555-1111", Datetime: callAt(3), CreatedAt: callAt(3)},
			{CallerName: "Asha", CallerPhone: "555-1111", Datetime: callAt(2), CreatedAt: callAt(2)},
			{CallerName: "Asha", CallerPhone: "555-1111", Datetime: callAt(1), CreatedAt: callAt(1)},
			{CallerName: "Ravi", CallerPhone: "555-2222", Datetime: callAt(4), CreatedAt: callAt(4)},
		},
	}

	snapshot, err := newService(repo).Compute(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snapshot.FrequentCallers) != 2 {
		t.Fatalf("expected 2 frequent callers, got %d", len(snapshot.FrequentCallers))
	}
	top := snapshot.FrequentCallers[0]
	if top.CallerName != "Asha" || top.Times != 3 {
		t.Fatalf("expected Asha with times=3 first, got %s times=%d", top.CallerName, top.Times)
	}
	wantLast := callAt(1).Format(time.RFC3339)
	if top.LastCall != wantLast {
		t.Fatalf("expected lastCall %s, got %s", wantLast, top.LastCall)
	}
	if snapshot.FrequentCallers[1].CallerName != "Ravi" {
		t.Fatalf("expected Ravi second, got %s", snapshot.FrequentCallers[1].CallerName)
	}
}

func TestCompute_FrequentCallersTopTenAndTieBreak(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	var calls []repository.CallRow
	names := []string{"Nia", "Asha", "Meera", "Ravi", "Kiran", "Dev", "Tara", "Omar", "Lila", "Zoya", "Bala", "Esha"}
	for _, name := range names {
		calls = append(calls, repository.CallRow{
			CallerName: name, CallerPhone: "555-0000", Datetime: now, CreatedAt: now,
		})
	}

	snapshot, err := newService(&fakeRepo{calls: calls}).Compute(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snapshot.FrequentCallers) != 10 {
		t.Fatalf("expected ranking capped at 10, got %d", len(snapshot.FrequentCallers))
	}
	// All groups have times=1, so the order is callerName ascending.
	if snapshot.FrequentCallers[0].CallerName != "Asha" {
		t.Fatalf("expected tie-break by callerName, got %s first", snapshot.FrequentCallers[0].CallerName)
	}
	for i := 1; i < len(snapshot.FrequentCallers); i++ {
		prev, cur := snapshot.FrequentCallers[i-1], snapshot.FrequentCallers[i]
		if cur.Times > prev.Times {
			t.Fatalf("ranking not sorted by times descending at index %d", i)
		}
		if cur.Times == prev.Times && cur.CallerName < prev.CallerName {
			t.Fatalf("tie-break not deterministic at index %d", i)
		}
	}
}

func TestCompute_FollowupKPIs(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{statuses: []string{"Completed", "Pending"}}

	snapshot, err := newService(repo).Compute(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snapshot.OpenFollowups != 1 {
		t.Fatalf("expected openFollowups=1, got %d", snapshot.OpenFollowups)
	}
	if snapshot.CompletionRate != 50 {
		t.Fatalf("expected completionRate=50, got %d", snapshot.CompletionRate)
	}
}

func TestCompute_CompletionRateZeroWithoutFollowups(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	snapshot, err := newService(&fakeRepo{}).Compute(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.CompletionRate != 0 {
		t.Fatalf("expected completionRate=0 with no followups, got %d", snapshot.CompletionRate)
	}
}

func TestCompletionRate_HalfRoundsAwayFromZero(t *testing.T) {
	// 5 of 8 closed is 62.5%; half rounds away from zero to 63.
	if got := completionRate(8, 3); got != 63 {
		t.Fatalf("expected 62.5 to round to 63, got %d", got)
	}
	// 1 of 8 closed is 12.5%; rounds to 13, not 12.
	if got := completionRate(8, 7); got != 13 {
		t.Fatalf("expected 12.5 to round to 13, got %d", got)
	}
	if got := completionRate(3, 0); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestCompute_TodaysCallsUsesLocalDayBounds(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	dayStart := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	repo := &fakeRepo{
		calls: []repository.CallRow{
			{CallerName: "a", CreatedAt: dayStart},                               // first instant of today
			{CallerName: "b", CreatedAt: dayStart.Add(24*time.Hour - time.Nanosecond)}, // last instant of today
			{CallerName: "c", CreatedAt: dayStart.Add(-time.Nanosecond)},         // yesterday
			{CallerName: "d", CreatedAt: dayStart.Add(24 * time.Hour)},           // tomorrow
		},
	}

	snapshot, err := newService(repo).Compute(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot.TodaysCalls != 2 {
		t.Fatalf("expected todaysCalls=2, got %d", snapshot.TodaysCalls)
	}
}

func TestCompute_CallsPerStaffWindowAndUnassigned(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	windowStart := now.Add(-30 * 24 * time.Hour)

	repo := &fakeRepo{
		calls: []repository.CallRow{
			{CallerName: "a", PersonRequested: "Front Desk", CreatedAt: now},
			{CallerName: "b", PersonRequested: "Front Desk", CreatedAt: windowStart}, // inclusive lower bound
			{CallerName: "c", PersonRequested: "Front Desk", CreatedAt: windowStart.Add(-time.Second)},
			{CallerName: "d", PersonRequested: "", CreatedAt: now},
		},
	}

	snapshot, err := newService(repo).Compute(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snapshot.CallsPerStaff) != 2 {
		t.Fatalf("expected 2 staff buckets, got %d", len(snapshot.CallsPerStaff))
	}
	if snapshot.CallsPerStaff[0].Label != "Front Desk" || snapshot.CallsPerStaff[0].Count != 2 {
		t.Fatalf("expected Front Desk with count=2 first, got %s count=%d",
			snapshot.CallsPerStaff[0].Label, snapshot.CallsPerStaff[0].Count)
	}
	if snapshot.CallsPerStaff[1].Label != "Unassigned" || snapshot.CallsPerStaff[1].Count != 1 {
		t.Fatalf("expected Unassigned with count=1, got %s count=%d",
			snapshot.CallsPerStaff[1].Label, snapshot.CallsPerStaff[1].Count)
	}
}

func TestCompute_AllOrNothingOnStoreFailure(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	storeErr := apperr.Unavailable("store unavailable")

	_, err := newService(&fakeRepo{statErr: storeErr}).Compute(context.Background(), now)
	if err == nil {
		t.Fatal("expected snapshot to fail when a fetch fails")
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the store error to propagate, got %v", err)
	}
}
