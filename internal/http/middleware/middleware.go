package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/live-arena-service/internal/http/requestutil"
	"github.com/preston-bernstein/live-arena-service/internal/logging"
	"github.com/preston-bernstein/live-arena-service/internal/metrics"
)

// LoggingMiddleware assigns a request id, attaches a request-scoped logger to the context,
// and records one log line plus one metric sample per request. 5xx responses log at warn.
func LoggingMiddleware(baseLogger *slog.Logger, recorder *metrics.Recorder, next http.Handler) http.Handler {
	if baseLogger == nil {
		baseLogger = slog.Default()
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := requestutil.SanitizeRequestID(r.Header.Get(requestutil.RequestIDHeader))
		w.Header().Set(requestutil.RequestIDHeader, reqID)

		logger := requestLogger(baseLogger, r, reqID)
		ctx := withRequestID(logging.WithLogger(r.Context(), logger), reqID)
		sw := &statusWriter{ResponseWriter: w}

		next.ServeHTTP(sw, r.WithContext(ctx))

		status := sw.Status()
		elapsed := time.Since(start)
		recorder.RecordHTTPRequest(r.Method, normalizePath(r.URL.Path), status, elapsed)

		attrs := []any{
			slog.Int(logging.FieldStatusCode, status),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Int("bytes", sw.bytes),
		}
		if status >= http.StatusInternalServerError {
			logging.Warn(logger, "request failed", attrs...)
			return
		}
		logging.Info(logger, "request complete", attrs...)
	})
}

func requestLogger(base *slog.Logger, r *http.Request, reqID string) *slog.Logger {
	return base.With(
		slog.String(logging.FieldRequestID, reqID),
		slog.String(logging.FieldMethod, r.Method),
		slog.String(logging.FieldPath, r.URL.Path),
		slog.String("query", r.URL.RawQuery),
		slog.String("client_ip", requestutil.ClientIP(r)),
	)
}

// statusWriter remembers the status code and body size written by the handler.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

// Status is the written status, or 200 when the handler never wrote a header.
func (w *statusWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// normalizePath collapses ids so metric label cardinality stays bounded.
func normalizePath(path string) string {
	if path == "" {
		return ""
	}
	path, _, _ = strings.Cut(path, "?")
	switch {
	case strings.HasPrefix(path, "/competitions/"):
		return "/competitions/:id/matches"
	case strings.HasPrefix(path, "/matches/"):
		switch path {
		case "/matches/categories", "/matches/live", "/matches/live/by-competition",
			"/matches/schedule", "/matches/featured":
			return path
		}
		return "/matches/:gmid"
	default:
		return path
	}
}
