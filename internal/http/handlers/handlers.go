package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"

	appmatches "github.com/preston-bernstein/live-arena-service/internal/app/matches"
	domain "github.com/preston-bernstein/live-arena-service/internal/domain/matches"
	"github.com/preston-bernstein/live-arena-service/internal/logging"
	"github.com/preston-bernstein/live-arena-service/internal/poller"
)

const maxFeaturedLimit = 50

// Handler wires HTTP routes to the match service.
type Handler struct {
	svc      *appmatches.Service
	logger   *slog.Logger
	statusFn func() poller.Status
}

// MatchesResponse wraps a filtered match list.
type MatchesResponse struct {
	Count   int            `json:"count"`
	Matches []domain.Match `json:"matches"`
}

// CategoriesResponse is the categorized match list with per-bucket counts.
type CategoriesResponse struct {
	domain.Categories
	Counts map[domain.Category]int `json:"counts"`
}

// NewHandler constructs a Handler. statusFn may be nil, in which case /ready always succeeds.
func NewHandler(svc *appmatches.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

// ServeHTTP dispatches by path so the handler can be mounted without a router.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	path := strings.TrimSuffix(r.URL.Path, "/")
	switch {
	case path == "/health":
		h.Health(w, r)
	case path == "/ready":
		h.Ready(w, r)
	case path == "/matches":
		h.MatchList(w, r)
	case path == "/matches/categories":
		h.Categories(w, r)
	case path == "/matches/live":
		h.Live(w, r)
	case path == "/matches/live/by-competition":
		h.LiveByCompetition(w, r)
	case path == "/matches/schedule":
		h.Schedule(w, r)
	case path == "/matches/featured":
		h.Featured(w, r)
	case strings.HasPrefix(path, "/competitions/"):
		h.CompetitionMatches(w, r)
	case strings.HasPrefix(path, "/matches/"):
		h.MatchByID(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports liveness.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the poller has produced data recently enough to serve traffic.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]any{
			"status":      "ready",
			"lastSuccess": status.LastSuccess,
			"count":       status.LastCount,
		}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// MatchList returns the cached snapshot envelope as the feed shaped it.
// A failure-shaped snapshot (nothing cached, upstream down) answers 503.
func (h *Handler) MatchList(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	snap := h.svc.MatchList(r.Context())
	if !snap.Success {
		logging.Warn(logger, "match list unavailable", slog.String("msg", snap.Msg))
		writeJSON(w, nethttp.StatusServiceUnavailable, snap, logger)
		return
	}
	logging.Info(logger, "served match list", slog.Int(logging.FieldCount, snap.Len()))
	writeJSON(w, nethttp.StatusOK, snap, logger)
}

// Categories returns matches split into live, prematch and finished.
func (h *Handler) Categories(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	cats := h.svc.Categorized(r.Context())
	writeJSON(w, nethttp.StatusOK, CategoriesResponse{
		Categories: cats,
		Counts:     cats.Counts(),
	}, loggerFromContext(r, h.logger))
}

// Live returns the in-play matches.
func (h *Handler) Live(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeMatches(w, h.svc.LiveOnly(r.Context()), loggerFromContext(r, h.logger))
}

// LiveByCompetition returns live matches grouped by competition name.
func (h *Handler) LiveByCompetition(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"competitions": h.svc.LiveByCompetition(r.Context()),
	}, loggerFromContext(r, h.logger))
}

// Schedule returns upcoming matches grouped by start date.
func (h *Handler) Schedule(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]any{
		"days": h.svc.PrematchByDate(r.Context()),
	}, loggerFromContext(r, h.logger))
}

// Featured returns a short list for a headline slot. Query: competition (id), limit.
func (h *Handler) Featured(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	q := r.URL.Query()

	var competitionID int64
	if raw := strings.TrimSpace(q.Get("competition")); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			writeError(w, r, nethttp.StatusBadRequest, "invalid competition id", h.logger)
			return
		}
		competitionID = id
	}

	limit := 0
	if raw := strings.TrimSpace(q.Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxFeaturedLimit {
			writeError(w, r, nethttp.StatusBadRequest, "invalid limit", h.logger)
			return
		}
		limit = n
	}

	writeMatches(w, h.svc.Featured(r.Context(), competitionID, limit), loggerFromContext(r, h.logger))
}

// CompetitionMatches serves /competitions/{id}/matches.
func (h *Handler) CompetitionMatches(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	rest := strings.TrimPrefix(strings.TrimSuffix(r.URL.Path, "/"), "/competitions/")
	rawID, tail, ok := strings.Cut(rest, "/")
	if !ok || tail != "matches" {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	id, ok := parsePathID(rawID)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid competition id", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	list := h.svc.ByCompetition(r.Context(), id)
	logging.Info(logger, "served competition matches",
		slog.Int64(logging.FieldCompetition, id),
		slog.Int(logging.FieldCount, len(list)),
	)
	writeMatches(w, list, logger)
}

// MatchByID serves /matches/{gmid}.
func (h *Handler) MatchByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	rawID := strings.TrimPrefix(strings.TrimSuffix(r.URL.Path, "/"), "/matches/")
	id, ok := parsePathID(rawID)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid match id", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	match, found := h.svc.ByMatchID(r.Context(), id)
	if !found {
		logging.Info(logger, "match not in snapshot", slog.Int64(logging.FieldMatchID, id))
		writeError(w, r, nethttp.StatusNotFound, "match not found", logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, match, logger)
}

func writeMatches(w nethttp.ResponseWriter, list []domain.Match, logger *slog.Logger) {
	if list == nil {
		list = []domain.Match{}
	}
	writeJSON(w, nethttp.StatusOK, MatchesResponse{Count: len(list), Matches: list}, logger)
}

func parsePathID(raw string) (int64, bool) {
	id, err := url.PathUnescape(raw)
	if err != nil {
		return 0, false
	}
	return parseID(id)
}

func parseID(raw string) (int64, bool) {
	if raw == "" || strings.ContainsAny(raw, " \t/+-") {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
