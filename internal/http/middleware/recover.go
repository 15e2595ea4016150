package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/sourcegraph/conc/panics"

	"github.com/preston-bernstein/live-arena-service/internal/logging"
)

// RecoverMiddleware turns a handler panic into a 500 JSON error. It reads the request
// logger from the context, so mount it inside LoggingMiddleware. http.ErrAbortHandler is
// re-raised for net/http, and a response that has already started is left as is.
func RecoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w}
		var pc panics.Catcher
		pc.Try(func() { next.ServeHTTP(sw, r) })

		recovered := pc.Recovered()
		if recovered == nil {
			return
		}
		if err, ok := recovered.Value.(error); ok && errors.Is(err, http.ErrAbortHandler) {
			panic(http.ErrAbortHandler)
		}
		logger := logging.FromContext(r.Context(), slog.Default())
		logging.Error(logger, "handler panic", recovered.AsError(),
			slog.String("stack", string(recovered.Stack)),
			slog.Bool("response_started", sw.status != 0),
		)
		if sw.status != 0 {
			return
		}

		body := map[string]string{"error": "internal server error"}
		if id := RequestIDFromContext(r.Context()); id != "" {
			body["requestId"] = id
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = sonic.ConfigStd.NewEncoder(w).Encode(body)
	})
}
