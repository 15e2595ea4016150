package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/live-arena-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. admin may be nil to leave the
// admin endpoints unmounted.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/matches", handler.MatchList)
	mux.HandleFunc("/matches/categories", handler.Categories)
	mux.HandleFunc("/matches/live", handler.Live)
	mux.HandleFunc("/matches/live/by-competition", handler.LiveByCompetition)
	mux.HandleFunc("/matches/schedule", handler.Schedule)
	mux.HandleFunc("/matches/featured", handler.Featured)
	mux.HandleFunc("/matches/", handler.MatchByID)
	mux.HandleFunc("/competitions/", handler.CompetitionMatches)
	if admin != nil {
		mux.HandleFunc("/admin/matchlist/refresh", admin.RefreshMatchList)
	}
	return mux
}
