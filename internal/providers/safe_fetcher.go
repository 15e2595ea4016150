package providers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
	"github.com/preston-bernstein/live-arena-service/internal/logging"
)

// SafeFetcher is the boundary where feed failures become data: Fetch always returns a
// snapshot, failure-flagged with the error text when anything went wrong.
type SafeFetcher struct {
	provider FeedProvider
	logger   *slog.Logger
}

// NewSafeFetcher wraps provider.
func NewSafeFetcher(provider FeedProvider, logger *slog.Logger) *SafeFetcher {
	return &SafeFetcher{provider: provider, logger: logger}
}

// Fetch calls the provider once. It never panics and never returns a nil match list.
func (f *SafeFetcher) Fetch(ctx context.Context) (snap matches.Snapshot) {
	if f == nil || f.provider == nil {
		return matches.Failed(ErrProviderUnavailable.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			err := errors.Newf("provider panic: %v", r)
			logging.Error(logging.FromContext(ctx, f.logger), "match list fetch panicked", err)
			snap = matches.Failed(err.Error())
		}
	}()

	got, err := f.provider.FetchMatchList(ctx)
	if err != nil {
		return matches.Failed(fmt.Sprintf("match list fetch failed: %v", err))
	}
	if !got.Success && got.Msg == "" {
		got.Msg = "upstream reported failure"
	}
	return got.WithMatches(got.Data.T1)
}
