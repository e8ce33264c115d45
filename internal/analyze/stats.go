package analyze

import (
	"sort"
	"sync"
	"time"
)

// Stats keeps a rolling window of backend call latencies so operators can
// see what the model is costing per document.
type Stats struct {
	mu     sync.Mutex
	window time.Duration
	calls  []statsCall
}

type statsCall struct {
	at time.Time
	ms int64
}

// StatsSnapshot is a point-in-time aggregate over the window.
type StatsSnapshot struct {
	Count int     `json:"count"`
	MinMs int64   `json:"min_ms"`
	MaxMs int64   `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

func NewStats(window time.Duration) *Stats {
	if window <= 0 {
		window = time.Hour
	}
	return &Stats{window: window}
}

// Record adds one call latency sample.
func (s *Stats) Record(d time.Duration) {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(now)
	s.calls = append(s.calls, statsCall{at: now, ms: ms})
}

// Snapshot aggregates the samples still inside the window.
func (s *Stats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pruneLocked(now)

	if len(s.calls) == 0 {
		return StatsSnapshot{}
	}

	values := make([]int64, len(s.calls))
	var sum int64
	for i, c := range s.calls {
		values[i] = c.ms
		sum += c.ms
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	return StatsSnapshot{
		Count: len(values),
		MinMs: values[0],
		MaxMs: values[len(values)-1],
		AvgMs: float64(sum) / float64(len(values)),
		P50Ms: percentile(values, 50),
		P95Ms: percentile(values, 95),
		P99Ms: percentile(values, 99),
	}
}

func (s *Stats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.window)
	kept := s.calls[:0]
	for _, c := range s.calls {
		if !c.at.Before(cutoff) {
			kept = append(kept, c)
		}
	}
	s.calls = kept
}

// percentile linearly interpolates over sorted values.
func percentile(sorted []int64, pct float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sorted[0])
	}
	if pct >= 100 {
		return float64(sorted[len(sorted)-1])
	}
	idx := float64(len(sorted)-1) * pct / 100.0
	lo := int(idx)
	hi := lo + 1
	if hi >= len(sorted) {
		return float64(sorted[lo])
	}
	frac := idx - float64(lo)
	return float64(sorted[lo]) + (float64(sorted[hi])-float64(sorted[lo]))*frac
}
