package snapshots

import (
	"os"
	"testing"
	"time"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
)

func simpleSnapshot(at time.Time, ids ...int64) matches.Snapshot {
	list := make([]matches.Match, 0, len(ids))
	for _, id := range ids {
		list = append(list, matches.Match{Gmid: id, Ename: "Home v Away", Cid: 7846996})
	}
	return matches.Snapshot{
		Success:       true,
		Msg:           "Success",
		Status:        200,
		Data:          matches.Data{T1: list},
		LastUpdatedAt: at,
	}
}

func writeSnapshot(t *testing.T, w *Writer, snap matches.Snapshot) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil")
	}
	if err := w.WriteMatchList(snap); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
}

func requireFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s to exist: %v", path, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
