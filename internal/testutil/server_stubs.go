package testutil

import (
	"context"
	"net/http"
	"sync"

	"github.com/preston-bernstein/live-arena-service/internal/poller"
)

// StubPoller records lifecycle calls and returns canned errors and status.
type StubPoller struct {
	StartCalls int
	StopCalls  int
	PollCalls  int
	Err        error
	PollErr    error
	StatusVal  poller.Status
}

func (p *StubPoller) Start(context.Context) { p.StartCalls++ }

func (p *StubPoller) Stop(context.Context) error {
	p.StopCalls++
	return p.Err
}

func (p *StubPoller) PollNow(context.Context) error {
	p.PollCalls++
	return p.PollErr
}

func (p *StubPoller) Status() poller.Status { return p.StatusVal }

// StubHTTPServer stands in for the listener. ListenAndServe returns ListenErr immediately.
// When Block is non-nil, Shutdown waits for it to close or for ctx to expire.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Block       chan struct{}

	mu            sync.Mutex
	ListenCalls   int
	ShutdownCalls int
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.ListenCalls++
	s.mu.Unlock()
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.ShutdownCalls++
	s.mu.Unlock()
	if s.Block == nil {
		return s.ShutdownErr
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.Block:
		return s.ShutdownErr
	}
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}

// Calls returns the listen and shutdown counts under the lock.
func (s *StubHTTPServer) Calls() (listen, shutdown int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ListenCalls, s.ShutdownCalls
}
