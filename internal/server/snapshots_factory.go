package server

import (
	"io/fs"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/live-arena-service/internal/config"
	"github.com/preston-bernstein/live-arena-service/internal/logging"
	"github.com/preston-bernstein/live-arena-service/internal/poller"
	"github.com/preston-bernstein/live-arena-service/internal/snapshots"
	"github.com/preston-bernstein/live-arena-service/internal/store"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer poller.SnapshotWriter
}

// buildSnapshots returns empty components when persistence is disabled.
func buildSnapshots(cfg config.Config) snapshotComponents {
	if !cfg.Snapshots.Enabled || cfg.Snapshots.Dir == "" {
		return snapshotComponents{}
	}
	return snapshotComponents{
		store:  snapshots.NewFSStore(cfg.Snapshots.Dir),
		writer: snapshots.NewWriter(cfg.Snapshots.Dir, cfg.Snapshots.RetentionDays),
	}
}

// seedCache loads the last persisted match list into the cache as a stale entry: the first
// read still tries the feed and falls back to it. It reports whether a snapshot was loaded.
func seedCache(cache *store.MatchCache, snaps snapshots.Store, logger *slog.Logger) bool {
	if cache == nil || snaps == nil {
		return false
	}
	snap, err := snaps.LoadMatchList()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Warn(logger, "failed to load persisted match list", slog.Any(logging.FieldError, err))
		}
		return false
	}
	if !snap.Success {
		return false
	}
	cache.Seed(snap)
	logging.Info(logger, "seeded match cache from snapshot",
		slog.Int(logging.FieldCount, snap.Len()),
		slog.Time("last_updated_at", snap.LastUpdatedAt),
	)
	return true
}
