package service

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	recordsrepo "tracker_backend/internal/records/repository"
	"tracker_backend/internal/stats/repository"
	"tracker_backend/internal/stats/transport"
	"tracker_backend/platform/logger"
)

const (
	frequentCallerLimit = 10

	unassignedLabel = "Unassigned"

	rollingWindow = 30 * 24 * time.Hour
)

// Service computes the KPI snapshot. Snapshots are recomputed from record
// state on every call; nothing is cached between requests.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new stats service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Compute builds a snapshot as of the given moment. The computation is
// all-or-nothing: if either record fetch fails, no partial snapshot is
// returned. Day boundaries use now's location (the server's local zone).
func (s *Service) Compute(ctx context.Context, now time.Time) (transport.StatsResponse, error) {
	var (
		calls    []repository.CallRow
		statuses []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		calls, err = s.repo.ListCalls(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = s.repo.ListFollowupStatuses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return transport.StatsResponse{}, err
	}

	open := openFollowups(statuses)

	return transport.StatsResponse{
		TodaysCalls:     todaysCalls(calls, now),
		OpenFollowups:   open,
		CompletionRate:  completionRate(len(statuses), open),
		FrequentCallers: frequentCallers(calls),
		CallsPerStaff:   callsPerStaff(calls, now),
	}, nil
}

// todaysCalls counts calls whose record creation time falls within the
// calendar day containing now.
func todaysCalls(calls []repository.CallRow, now time.Time) int {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 0, 1)

	count := 0
	for _, call := range calls {
		if !call.CreatedAt.Before(start) && call.CreatedAt.Before(end) {
			count++
		}
	}
	return count
}

func openFollowups(statuses []string) int {
	count := 0
	for _, status := range statuses {
		if status == recordsrepo.FollowupPending || status == recordsrepo.FollowupInProgress {
			count++
		}
	}
	return count
}

// completionRate is the percentage of follow-ups no longer open, rounded
// half away from zero (math.Round; the same result JS Math.round gives for
// the non-negative operand this produces). Zero follow-ups reports 0.
func completionRate(total, open int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(total-open) / float64(total)))
}

type callerKey struct {
	name  string
	phone string
}

// frequentCallers ranks callers by call volume. lastCall is the latest
// business call time in the group, not the record creation time. Ties on
// times break by callerName then callerPhone ascending so the ranking is
// deterministic across runs.
func frequentCallers(calls []repository.CallRow) []transport.FrequentCaller {
	type group struct {
		times    int
		lastCall time.Time
	}

	groups := make(map[callerKey]*group)
	for _, call := range calls {
		key := callerKey{name: call.CallerName, phone: call.CallerPhone}
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
		}
		g.times++
		if call.Datetime.After(g.lastCall) {
			g.lastCall = call.Datetime
		}
	}

	ranked := make([]transport.FrequentCaller, 0, len(groups))
	for key, g := range groups {
		ranked = append(ranked, transport.FrequentCaller{
			CallerName:  key.name,
			CallerPhone: key.phone,
			Times:       g.times,
			LastCall:    g.lastCall.Format(time.RFC3339),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Times != ranked[j].Times {
			return ranked[i].Times > ranked[j].Times
		}
		if ranked[i].CallerName != ranked[j].CallerName {
			return ranked[i].CallerName < ranked[j].CallerName
		}
		return ranked[i].CallerPhone < ranked[j].CallerPhone
	})

	if len(ranked) > frequentCallerLimit {
		ranked = ranked[:frequentCallerLimit]
	}
	return ranked
}

// callsPerStaff counts calls created within the rolling 30-day window
// (inclusive lower bound) per requested staff member. Calls with no
// personRequested land in the Unassigned bucket. Ordered by count
// descending, label ascending on ties; no limit.
func callsPerStaff(calls []repository.CallRow, now time.Time) []transport.StaffCallCount {
	since := now.Add(-rollingWindow)

	counts := make(map[string]int)
	for _, call := range calls {
		if call.CreatedAt.Before(since) {
			continue
		}
		label := call.PersonRequested
		if label == "" {
			label = unassignedLabel
		}
		counts[label]++
	}

	buckets := make([]transport.StaffCallCount, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, transport.StaffCallCount{Label: label, Count: count})
	}

	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})

	return buckets
}
