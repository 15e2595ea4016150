package testutil

import (
	"testing"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
	"github.com/preston-bernstein/live-arena-service/internal/snapshots"
)

// NewTempWriter returns a snapshot writer rooted in a temp dir.
func NewTempWriter(t *testing.T, retention int) *snapshots.Writer {
	t.Helper()
	return snapshots.NewWriter(t.TempDir(), retention)
}

// WriteSnapshot persists snap as the latest match list.
func WriteSnapshot(t *testing.T, w *snapshots.Writer, snap matches.Snapshot) {
	t.Helper()
	if err := writeSnapshotPayload(w, snap); err != nil {
		t.Fatalf("failed to write snapshot: %v", err)
	}
}

func writeSnapshotPayload(w *snapshots.Writer, snap matches.Snapshot) error {
	return w.WriteMatchList(snap)
}

// SnapshotPath returns the latest match list path for the writer.
func SnapshotPath(w *snapshots.Writer) string {
	return snapshots.LatestPath(w.BasePath())
}
