package providers

import (
	"context"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
)

// FeedProvider fetches the current match list from an upstream feed.
// Implementations return an error for transport, status or decode failures;
// callers that need the "always a snapshot" contract wrap them in a SafeFetcher.
type FeedProvider interface {
	FetchMatchList(ctx context.Context) (matches.Snapshot, error)
}

// FeedProviderFunc adapts a function to FeedProvider.
type FeedProviderFunc func(ctx context.Context) (matches.Snapshot, error)

// FetchMatchList calls f.
func (f FeedProviderFunc) FetchMatchList(ctx context.Context) (matches.Snapshot, error) {
	return f(ctx)
}
