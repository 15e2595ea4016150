package store

import (
	"context"
	"sync"
	"time"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
	"github.com/preston-bernstein/live-arena-service/internal/metrics"
)

// DefaultTTL is used when the cache is constructed with a non-positive TTL.
const DefaultTTL = 5 * time.Minute

// NoDataMessage is carried by the snapshot returned when nothing has ever been cached.
const NoDataMessage = "no match data available"

// Fetcher produces a snapshot. Failures come back as failure-flagged snapshots, never as errors.
type Fetcher interface {
	Fetch(ctx context.Context) matches.Snapshot
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) matches.Snapshot

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context) matches.Snapshot {
	return f(ctx)
}

// Option customizes a MatchCache.
type Option func(*MatchCache)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *MatchCache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithRecorder counts lookups by outcome.
func WithRecorder(recorder *metrics.Recorder) Option {
	return func(c *MatchCache) {
		c.recorder = recorder
	}
}

// MatchCache holds a single match-list snapshot with an expiry. The lock covers slot
// reads and writes only; a fetch-through runs unlocked, so concurrent cold reads may
// each fetch.
type MatchCache struct {
	mu        sync.Mutex
	snapshot  matches.Snapshot
	present   bool
	expiresAt time.Time

	fetcher  Fetcher
	ttl      time.Duration
	now      func() time.Time
	recorder *metrics.Recorder
}

// NewMatchCache constructs an empty cache. The TTL is fixed for the cache's lifetime.
func NewMatchCache(fetcher Fetcher, ttl time.Duration, opts ...Option) *MatchCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &MatchCache{
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL reports the configured time-to-live.
func (c *MatchCache) TTL() time.Duration {
	return c.ttl
}

// Get returns the cached snapshot while fresh. Otherwise it fetches through; a failed
// fetch falls back to the stale entry, or to an empty failure snapshot when there is none.
func (c *MatchCache) Get(ctx context.Context) matches.Snapshot {
	c.mu.Lock()
	if c.present && c.now().Before(c.expiresAt) {
		snap := c.snapshot
		c.mu.Unlock()
		c.record(metrics.CacheHit)
		return snap
	}
	c.mu.Unlock()

	fresh := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if fresh.Success {
		c.store(fresh)
		c.record(metrics.CacheMiss)
		return fresh
	}
	if c.present {
		c.record(metrics.CacheStale)
		return c.snapshot
	}
	c.record(metrics.CacheEmpty)
	msg := NoDataMessage
	if fresh.Msg != "" {
		msg = NoDataMessage + ": " + fresh.Msg
	}
	return matches.Failed(msg)
}

// Set replaces the entry and resets its expiry without fetching.
func (c *MatchCache) Set(snapshot matches.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(snapshot)
}

// Seed stores a snapshot that is already stale: reads fetch through first and fall back
// to it only when the feed fails.
func (c *MatchCache) Seed(snapshot matches.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = snapshot
	c.present = true
	c.expiresAt = c.now()
}

// Clear drops the entry so the next Get fetches through.
func (c *MatchCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = matches.Snapshot{}
	c.present = false
	c.expiresAt = time.Time{}
}

// Peek returns the current entry, fresh or stale, without fetching.
func (c *MatchCache) Peek() (matches.Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot, c.present
}

// ExpiresAt reports when the current entry goes stale; zero when empty.
func (c *MatchCache) ExpiresAt() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expiresAt
}

func (c *MatchCache) store(snapshot matches.Snapshot) {
	c.snapshot = snapshot
	c.present = true
	c.expiresAt = c.now().Add(c.ttl)
}

func (c *MatchCache) fetch(ctx context.Context) matches.Snapshot {
	if c.fetcher == nil {
		return matches.Failed("no fetcher configured")
	}
	return c.fetcher.Fetch(ctx)
}

func (c *MatchCache) record(result string) {
	if c.recorder != nil {
		c.recorder.RecordCacheLookup(result)
	}
}
