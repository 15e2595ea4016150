package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
)

const defaultMinInterval = time.Second

// rateLimitedProvider wraps a FeedProvider and enforces a minimum spacing between calls,
// shared by the refresh loop and cold cache reads.
type rateLimitedProvider struct {
	next     FeedProvider
	interval time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a FeedProvider that admits at most one call per interval
// (plus burst). Calls block until admitted or the context ends.
func NewRateLimitedProvider(next FeedProvider, interval time.Duration, burst int, logger *slog.Logger) FeedProvider {
	if interval <= 0 {
		interval = defaultMinInterval
	}
	if burst <= 0 {
		burst = 1
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), burst),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchMatchList(ctx context.Context) (matches.Snapshot, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return matches.Snapshot{}, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled", slog.Any("error", err))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return matches.Snapshot{}, ctxErr
		}
		return matches.Snapshot{}, err
	}
	return p.next.FetchMatchList(ctx)
}
