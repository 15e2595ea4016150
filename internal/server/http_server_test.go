package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/live-arena-service/internal/config"
)

type failingListener struct{}

func (failingListener) Accept() (net.Conn, error) { return nil, errors.New("listener closed") }
func (failingListener) Close() error              { return nil }
func (failingListener) Addr() net.Addr            { return &net.TCPAddr{IP: net.IPv4zero} }

func TestNetHTTPServerServesInjectedListener(t *testing.T) {
	s := netHTTPServer{srv: &http.Server{Handler: http.NewServeMux()}, listener: failingListener{}}

	assert.Error(t, s.ListenAndServe())
}

func TestNetHTTPServerServesRealListener(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	s := netHTTPServer{srv: &http.Server{Handler: mux, ReadHeaderTimeout: time.Second}, listener: l}

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	resp, err := http.Get("http://" + l.Addr().String() + "/health")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	require.NoError(t, s.Shutdown(context.Background()))
	select {
	case err := <-done:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(time.Second):
		t.Fatal("serve did not return after shutdown")
	}
}

func TestNetHTTPServerAccessors(t *testing.T) {
	mux := http.NewServeMux()
	s := netHTTPServer{srv: &http.Server{Addr: ":4000", Handler: mux}}

	assert.Equal(t, ":4000", s.Addr())
	assert.Equal(t, http.Handler(mux), s.Handler())
}

func TestResolveTimeouts(t *testing.T) {
	defaults := resolveTimeouts(config.HTTPConfig{})
	assert.Equal(t, timeouts{
		read:     fallbackReadTimeout,
		write:    fallbackWriteTimeout,
		idle:     fallbackIdleTimeout,
		shutdown: fallbackShutdownTimeout,
	}, defaults)

	custom := resolveTimeouts(config.HTTPConfig{
		ReadTimeout:     time.Second,
		WriteTimeout:    -time.Second,
		IdleTimeout:     time.Minute,
		ShutdownTimeout: 3 * time.Second,
	})
	assert.Equal(t, time.Second, custom.read)
	assert.Equal(t, fallbackWriteTimeout, custom.write)
	assert.Equal(t, time.Minute, custom.idle)
	assert.Equal(t, 3*time.Second, custom.shutdown)
}

func TestBuildHTTPServerAppliesConfiguredTimeouts(t *testing.T) {
	cfg := config.Config{Port: "0", HTTP: config.HTTPConfig{ReadTimeout: 2 * time.Second, IdleTimeout: 5 * time.Second}}

	srv, ok := buildHTTPServer(cfg, nil, nil, nil, nil).(netHTTPServer)
	require.True(t, ok)
	assert.Equal(t, 2*time.Second, srv.srv.ReadTimeout)
	assert.Equal(t, fallbackWriteTimeout, srv.srv.WriteTimeout)
	assert.Equal(t, 5*time.Second, srv.srv.IdleTimeout)
}
