package testutil

import (
	"context"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
	"github.com/preston-bernstein/live-arena-service/internal/providers"
)

// GoodProvider returns the provided snapshot with no error.
type GoodProvider struct {
	Snapshot matches.Snapshot
}

func (p GoodProvider) FetchMatchList(ctx context.Context) (matches.Snapshot, error) {
	_ = ctx
	return p.Snapshot, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchMatchList(ctx context.Context) (matches.Snapshot, error) {
	_ = ctx
	return matches.Snapshot{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchMatchList(ctx context.Context) (matches.Snapshot, error) {
	_ = ctx
	return matches.Snapshot{}, providers.ErrProviderUnavailable
}

// NotifyingProvider returns the snapshot and closes Notify on first fetch.
type NotifyingProvider struct {
	Snapshot matches.Snapshot
	Notify   chan struct{}
}

func (p *NotifyingProvider) FetchMatchList(ctx context.Context) (matches.Snapshot, error) {
	_ = ctx
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Snapshot, nil
}
