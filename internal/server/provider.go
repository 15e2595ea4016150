package server

import (
	"log/slog"

	"github.com/preston-bernstein/live-arena-service/internal/config"
	"github.com/preston-bernstein/live-arena-service/internal/logging"
	"github.com/preston-bernstein/live-arena-service/internal/providers"
	"github.com/preston-bernstein/live-arena-service/internal/providers/fixture"
	"github.com/preston-bernstein/live-arena-service/internal/providers/rapidapi"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.FeedProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "rapidapi":
		if cfg.MatchList.APIKey == "" {
			logging.Warn(logger, "rapidapi provider configured without an api key")
		}
		return rapidapi.NewClient(rapidapi.Config{
			BaseURL: cfg.MatchList.BaseURL,
			Path:    cfg.MatchList.Path,
			SportID: cfg.MatchList.SportID,
			APIHost: cfg.MatchList.APIHost,
			APIKey:  cfg.MatchList.APIKey,
			Timeout: cfg.MatchList.Timeout,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
