package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
)

// StubProvider is a test double for providers.FeedProvider.
type StubProvider struct {
	mu       sync.Mutex
	snapshot matches.Snapshot
	err      error
	panicVal any

	Calls  atomic.Int32
	Notify chan struct{}
	// Script, when set, decides the result per call (1-based) and overrides the fixed result.
	Script func(call int) (matches.Snapshot, error)
}

// NewStubProvider returns a provider answering with snap and err.
func NewStubProvider(snap matches.Snapshot, err error) *StubProvider {
	return &StubProvider{snapshot: snap, err: err}
}

// SetResult swaps the fixed result; safe to call while a poller is running.
func (s *StubProvider) SetResult(snap matches.Snapshot, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
	s.err = err
	s.panicVal = nil
}

// SetPanic makes subsequent calls panic with v.
func (s *StubProvider) SetPanic(v any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.panicVal = v
}

// FetchMatchList returns the configured result while tracking calls.
func (s *StubProvider) FetchMatchList(ctx context.Context) (matches.Snapshot, error) {
	_ = ctx
	call := int(s.Calls.Add(1))
	s.mu.Lock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	snap, err, panicVal, script := s.snapshot, s.err, s.panicVal, s.Script
	s.mu.Unlock()

	if panicVal != nil {
		panic(panicVal)
	}
	if script != nil {
		return script(call)
	}
	return snap, err
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	Written []matches.Snapshot
	Err     error
}

// WriteMatchList records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteMatchList(snapshot matches.Snapshot) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	w.Written = append(w.Written, snapshot)
	return nil
}

// Last returns the most recent written snapshot.
func (w *StubSnapshotWriter) Last() (matches.Snapshot, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.Written) == 0 {
		return matches.Snapshot{}, false
	}
	return w.Written[len(w.Written)-1], true
}

// StubAllowList is a test double for leagues.AllowList.
type StubAllowList struct {
	IDs []int64
	Err error
}

// AllowedCompetitions returns the configured ids as a set.
func (a StubAllowList) AllowedCompetitions(ctx context.Context) (map[int64]struct{}, error) {
	_ = ctx
	if a.Err != nil {
		return nil, a.Err
	}
	out := make(map[int64]struct{}, len(a.IDs))
	for _, id := range a.IDs {
		out[id] = struct{}{}
	}
	return out, nil
}
