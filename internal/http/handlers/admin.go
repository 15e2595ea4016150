package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/live-arena-service/internal/http/requestutil"
	"github.com/preston-bernstein/live-arena-service/internal/logging"
	"github.com/preston-bernstein/live-arena-service/internal/poller"
)

// Refresher forces an out-of-band poll of the upstream feed.
type Refresher interface {
	PollNow(ctx context.Context) error
	Status() poller.Status
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresher Refresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler. An empty token rejects every request.
func NewAdminHandler(refresher Refresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// RefreshMatchList polls the feed immediately. On failure the cached snapshot is left alone.
func (h *AdminHandler) RefreshMatchList(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "refresh not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	if err := h.refresher.PollNow(r.Context()); err != nil {
		logging.Error(logger, "admin refresh failed", err)
		writeError(w, r, http.StatusBadGateway, "failed to refresh match list", logger)
		return
	}

	status := h.refresher.Status()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"count":       status.LastCount,
		"lastSuccess": status.LastSuccess,
	}, logger)
	logging.Info(logger, "admin refresh complete", slog.Int(logging.FieldCount, status.LastCount))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	token, ok := requestutil.BearerToken(r)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) == 1
}
