package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
	"github.com/preston-bernstein/live-arena-service/internal/logging"
	"github.com/preston-bernstein/live-arena-service/internal/metrics"
)

const fallbackProviderName = "provider"

// rateLimitRetryProvider retries exactly once, immediately, when the upstream answers 429.
// Any other failure, and a second 429, are returned to the caller as-is.
type rateLimitRetryProvider struct {
	inner        FeedProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewRateLimitRetryProvider wraps inner with the single 429 retry and provider metrics.
func NewRateLimitRetryProvider(inner FeedProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) FeedProvider {
	if providerName == "" {
		providerName = fallbackProviderName
	}
	return &rateLimitRetryProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (r *rateLimitRetryProvider) FetchMatchList(ctx context.Context) (matches.Snapshot, error) {
	if r.inner == nil {
		return matches.Snapshot{}, ErrProviderUnavailable
	}

	snap, err := r.attempt(ctx, 1)
	rlErr, limited := AsRateLimitError(err)
	if !limited {
		return snap, err
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider rate limited, retrying once",
		slog.Int(logging.FieldAttempt, 1),
		slog.Int64("retry_after_ms", rlErr.RetryAfter.Milliseconds()),
	)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return matches.Snapshot{}, ctxErr
	}

	snap, err = r.attempt(ctx, 2)
	if _, stillLimited := AsRateLimitError(err); stillLimited {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider still rate limited after retry",
			slog.Int(logging.FieldAttempt, 2),
		)
	}
	return snap, err
}

func (r *rateLimitRetryProvider) attempt(ctx context.Context, n int) (matches.Snapshot, error) {
	start := r.now()
	snap, err := r.inner.FetchMatchList(ctx)
	r.metrics.RecordProviderAttempt(r.providerName, r.now().Sub(start), err)
	if rlErr, ok := AsRateLimitError(err); ok {
		r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
	} else if err != nil {
		logWithProvider(ctx, r.logger, slog.LevelWarn, r.providerName, "provider fetch failed",
			slog.Int(logging.FieldAttempt, n),
			slog.Any(logging.FieldError, err),
		)
	}
	return snap, err
}
