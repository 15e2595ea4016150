package server

import (
	"log/slog"

	"github.com/preston-bernstein/live-arena-service/internal/config"
	"github.com/preston-bernstein/live-arena-service/internal/metrics"
	"github.com/preston-bernstein/live-arena-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + 429 retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.FeedProvider {
	base := selectProvider(cfg, f.logger)
	return f.wrap(cfg, base)
}

// wrap paces calls to the configured minimum interval, then retries a single 429 on top.
func (f providerFactory) wrap(cfg config.Config, base providers.FeedProvider) providers.FeedProvider {
	limited := providers.NewRateLimitedProvider(base, cfg.MatchList.MinInterval, 1, f.logger)
	return providers.NewRateLimitRetryProvider(limited, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base))
}
