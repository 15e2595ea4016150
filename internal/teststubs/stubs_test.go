package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
)

func TestStubProviderTracksCalls(t *testing.T) {
	err := errors.New("boom")
	p := NewStubProvider(matches.Snapshot{Success: true}, err)
	if _, got := p.FetchMatchList(context.Background()); !errors.Is(got, err) {
		t.Fatalf("expected error passthrough, got %v", got)
	}
	if p.Calls.Load() != 1 {
		t.Fatalf("expected call count 1, got %d", p.Calls.Load())
	}
}

func TestStubProviderScriptAndNotify(t *testing.T) {
	p := &StubProvider{
		Notify: make(chan struct{}),
		Script: func(call int) (matches.Snapshot, error) {
			return matches.Snapshot{Success: true, Status: call}, nil
		},
	}
	snap, _ := p.FetchMatchList(context.Background())
	if snap.Status != 1 {
		t.Fatalf("expected scripted first call, got %d", snap.Status)
	}
	select {
	case <-p.Notify:
	default:
		t.Fatalf("expected notify channel closed")
	}
	snap, _ = p.FetchMatchList(context.Background())
	if snap.Status != 2 {
		t.Fatalf("expected scripted second call, got %d", snap.Status)
	}
}

func TestStubProviderPanics(t *testing.T) {
	p := NewStubProvider(matches.Snapshot{}, nil)
	p.SetPanic("kaboom")
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic")
		}
	}()
	_, _ = p.FetchMatchList(context.Background())
}

func TestStubSnapshotWriter(t *testing.T) {
	w := &StubSnapshotWriter{}
	if _, ok := w.Last(); ok {
		t.Fatalf("expected nothing written")
	}
	if err := w.WriteMatchList(matches.Snapshot{Msg: "one"}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	last, ok := w.Last()
	if !ok || last.Msg != "one" {
		t.Fatalf("expected last snapshot, got %+v", last)
	}

	w.Err = errors.New("disk full")
	if err := w.WriteMatchList(matches.Snapshot{}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestStubAllowList(t *testing.T) {
	set, err := StubAllowList{IDs: []int64{1, 2}}.AllowedCompetitions(context.Background())
	if err != nil || len(set) != 2 {
		t.Fatalf("expected two ids, got %v err %v", set, err)
	}
	if _, err := (StubAllowList{Err: errors.New("x")}).AllowedCompetitions(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}
