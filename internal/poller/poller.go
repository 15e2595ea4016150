package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/panics"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
	"github.com/preston-bernstein/live-arena-service/internal/leagues"
	"github.com/preston-bernstein/live-arena-service/internal/logging"
	"github.com/preston-bernstein/live-arena-service/internal/metrics"
)

const (
	defaultInterval = 5 * time.Minute
	defaultCooldown = 60 * time.Second
)

// ErrFeedFailure marks a poll whose snapshot came back failure-flagged.
var ErrFeedFailure = errors.New("feed reported failure")

// Fetcher returns the current match list; failures are failure-flagged snapshots.
type Fetcher interface {
	Fetch(ctx context.Context) matches.Snapshot
}

// Cache receives every successful poll.
type Cache interface {
	Set(snapshot matches.Snapshot)
}

// SnapshotWriter persists the latest match list to disk.
type SnapshotWriter interface {
	WriteMatchList(snapshot matches.Snapshot) error
}

// Options configures optional collaborators and timings.
type Options struct {
	AllowList leagues.AllowList
	Writer    SnapshotWriter
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Interval  time.Duration
	Cooldown  time.Duration
}

// Poller refreshes the match cache on an interval, backing off to a cooldown after a failed poll.
type Poller struct {
	fetcher   Fetcher
	cache     Cache
	allowList leagues.AllowList
	writer    SnapshotWriter
	logger    *slog.Logger
	metrics   *metrics.Recorder
	interval  time.Duration
	cooldown  time.Duration
	now       func() time.Time

	done     chan struct{}
	exited   chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastCount           int
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(fetcher Fetcher, cache Cache, opts Options) *Poller {
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	if opts.Cooldown <= 0 {
		opts.Cooldown = defaultCooldown
	}
	return &Poller{
		fetcher:   fetcher,
		cache:     cache,
		allowList: opts.AllowList,
		writer:    opts.Writer,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		interval:  opts.Interval,
		cooldown:  opts.Cooldown,
		now:       time.Now,
		done:      make(chan struct{}),
		exited:    make(chan struct{}),
	}
}

// Start polls once immediately, then on every interval until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	go p.run(ctx)
}

func (p *Poller) run(ctx context.Context) {
	defer close(p.exited)
	logging.Info(p.logger, "poller started",
		logging.FieldDurationMS, p.interval.Milliseconds(),
		"cooldown_ms", p.cooldown.Milliseconds(),
	)

	for {
		// A failed poll waits out the cooldown before the normal interval begins.
		if err := p.PollNow(ctx); err != nil && !p.sleep(ctx, p.cooldown) {
			break
		}
		if !p.sleep(ctx, p.interval) {
			break
		}
	}
	logging.Info(p.logger, "poller stopped")
}

// sleep waits for d and reports false if the loop should exit instead.
func (p *Poller) sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-p.done:
		return false
	case <-timer.C:
		return true
	}
}

// Stop halts the polling loop. When the loop is running it waits for it to exit or for ctx to end.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() {
		close(p.done)
	})

	p.startMu.Lock()
	started := p.started
	p.startMu.Unlock()
	if !started {
		return nil
	}

	select {
	case <-p.exited:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// PollNow runs a single poll. Panics are captured and returned as errors.
func (p *Poller) PollNow(ctx context.Context) (err error) {
	start := p.now()
	p.recordAttempt(start)

	var count int
	var pc panics.Catcher
	pc.Try(func() {
		count, err = p.poll(ctx)
	})
	if recovered := pc.Recovered(); recovered != nil {
		err = errors.Wrap(recovered.AsError(), "poller panic")
	}

	elapsed := p.now().Sub(start)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(elapsed, err)
	}
	if err != nil {
		logging.Error(p.logger, "poller refresh failed", err,
			logging.FieldDurationMS, elapsed.Milliseconds(),
			"retry_in_ms", p.cooldown.Milliseconds(),
		)
		p.recordFailure(err, start)
		return err
	}

	p.recordSuccess(start, count)
	logging.Info(p.logger, "poller refreshed match list",
		logging.FieldCount, count,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return nil
}

func (p *Poller) poll(ctx context.Context) (int, error) {
	if p.fetcher == nil {
		return 0, errors.New("poller has no fetcher")
	}
	snap := p.fetcher.Fetch(ctx)
	if !snap.Success {
		return 0, errors.Wrap(ErrFeedFailure, snap.Msg)
	}

	snap = p.applyAllowList(ctx, snap)
	if snap.LastUpdatedAt.IsZero() {
		snap.LastUpdatedAt = p.now().UTC()
	}

	if p.cache != nil {
		p.cache.Set(snap)
	}
	p.metrics.RecordMatchList(categoryCounts(snap), snap.LastUpdatedAt)
	if p.writer != nil {
		if writeErr := p.writer.WriteMatchList(snap); writeErr != nil {
			logging.Error(p.logger, "poller snapshot write failed", writeErr)
		}
	}
	return snap.Len(), nil
}

func categoryCounts(snap matches.Snapshot) map[string]int {
	counts := matches.Categorize(snap).Counts()
	out := make(map[string]int, len(counts))
	for category, n := range counts {
		out[string(category)] = n
	}
	return out
}

// applyAllowList keeps allowed competitions. A lookup failure stores the snapshot unfiltered.
func (p *Poller) applyAllowList(ctx context.Context, snap matches.Snapshot) matches.Snapshot {
	if p.allowList == nil {
		return snap
	}
	allowed, err := p.allowList.AllowedCompetitions(ctx)
	if err != nil {
		logging.Warn(p.logger, "poller allow-list unavailable, keeping all competitions", logging.FieldError, err)
		return snap
	}
	return leagues.Filter(snap, allowed)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, count int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.LastCount = count
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
