package snapshots

import (
	"os"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
)

// Store defines how persisted match lists are loaded.
type Store interface {
	LoadMatchList() (matches.Snapshot, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadMatchList reads {basePath}/matchlist/latest.json.
func (s *FSStore) LoadMatchList() (matches.Snapshot, error) {
	if s == nil {
		return matches.Snapshot{}, ErrNotConfigured
	}
	return s.decodeFile(LatestPath(s.basePath))
}

// LoadMatchListForDate reads the archived match list for a YYYY-MM-DD date.
func (s *FSStore) LoadMatchListForDate(date string) (matches.Snapshot, error) {
	if s == nil {
		return matches.Snapshot{}, ErrNotConfigured
	}
	if date == "" {
		return matches.Snapshot{}, errors.New("snapshot date required")
	}
	return s.decodeFile(HistoryPath(s.basePath, date))
}

// Manifest returns the manifest, or an error when it is missing or unreadable.
func (s *FSStore) Manifest() (Manifest, error) {
	if s == nil {
		return Manifest{}, ErrNotConfigured
	}
	return readManifest(ManifestPath(s.basePath), defaultRetentionDays)
}

func (s *FSStore) decodeFile(path string) (matches.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return matches.Snapshot{}, err
	}
	var payload matches.Snapshot
	if err := sonic.ConfigStd.Unmarshal(data, &payload); err != nil {
		return matches.Snapshot{}, errors.Wrapf(err, "decode snapshot %s", path)
	}
	return payload.WithMatches(payload.Data.T1), nil
}
