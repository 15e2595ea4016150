package metrics

import (
	"sync"
	"time"
)

// Cache lookup outcomes.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheStale = "stale"
	CacheEmpty = "empty"
)

// ProviderStats is a point-in-time copy of the counters kept for one provider.
type ProviderStats struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Recorder keeps in-process counters for provider calls, cache reads and the served match list.
// When built by Setup, every record is mirrored into OpenTelemetry instruments.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	mu          sync.Mutex
	providers   map[string]ProviderStats
	cache       map[string]int
	matchCounts map[string]int
	lastUpdated time.Time
	otel        *otelInstruments
}

// NewRecorder returns an in-memory recorder with no telemetry export.
func NewRecorder() *Recorder {
	return &Recorder{
		providers:   make(map[string]ProviderStats),
		cache:       make(map[string]int),
		matchCounts: make(map[string]int),
	}
}

// updateProvider applies fn to the provider's stats under the lock.
func (r *Recorder) updateProvider(provider string, fn func(*ProviderStats)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.providers[provider]
	fn(&stats)
	r.providers[provider] = stats
}

// RecordProviderAttempt counts one feed call and keeps its latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.updateProvider(provider, func(s *ProviderStats) {
		s.Calls++
		s.LastCallLatency = duration
		if err != nil {
			s.Errors++
		}
	})
	r.otel.recordProviderAttempt(provider, duration, err)
}

// RecordRateLimit counts a 429 and keeps the last non-zero Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}
	r.updateProvider(provider, func(s *ProviderStats) {
		s.RateLimitHits++
		if retryAfter > 0 {
			s.LastRetryAfter = retryAfter
		}
	})
	r.otel.recordRateLimit(provider, retryAfter)
}

// Provider returns a copy of the stats for provider.
func (r *Recorder) Provider(provider string) ProviderStats {
	if r == nil {
		return ProviderStats{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.providers[provider]
}

func (r *Recorder) ProviderCalls(provider string) int  { return r.Provider(provider).Calls }
func (r *Recorder) ProviderErrors(provider string) int { return r.Provider(provider).Errors }
func (r *Recorder) RateLimitHits(provider string) int  { return r.Provider(provider).RateLimitHits }

// RecordHTTPRequest is export-only; nothing is kept in memory.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordCacheLookup counts a match cache read by outcome.
func (r *Recorder) RecordCacheLookup(result string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.cache[result]++
	r.mu.Unlock()
	r.otel.recordCacheLookup(result)
}

// CacheLookups returns how many lookups ended with the given outcome.
func (r *Recorder) CacheLookups(result string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache[result]
}

// RecordPollerCycle is export-only.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// RecordMatchList stores per-category counts and the fetch time of the snapshot now being served.
func (r *Recorder) RecordMatchList(counts map[string]int, updatedAt time.Time) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matchCounts = make(map[string]int, len(counts))
	for k, v := range counts {
		r.matchCounts[k] = v
	}
	r.lastUpdated = updatedAt
}

// MatchCounts returns a copy of the last recorded per-category counts.
func (r *Recorder) MatchCounts() map[string]int {
	if r == nil {
		return map[string]int{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]int, len(r.matchCounts))
	for k, v := range r.matchCounts {
		out[k] = v
	}
	return out
}

// SnapshotAge reports how old the last recorded snapshot is. ok is false before the first record.
func (r *Recorder) SnapshotAge(now time.Time) (time.Duration, bool) {
	if r == nil {
		return 0, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lastUpdated.IsZero() {
		return 0, false
	}
	return now.Sub(r.lastUpdated), true
}
