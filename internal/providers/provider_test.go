package providers

import (
	"context"
	"testing"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
)

func TestFeedProviderFuncImplementsInterface(t *testing.T) {
	var p FeedProvider = FeedProviderFunc(func(ctx context.Context) (matches.Snapshot, error) {
		return matches.Snapshot{Success: true, Msg: "ok"}, nil
	})

	snap, err := p.FetchMatchList(context.Background())
	if err != nil || !snap.Success || snap.Msg != "ok" {
		t.Fatalf("unexpected result %+v err %v", snap, err)
	}
}
