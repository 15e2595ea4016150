package snapshots

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
	"github.com/preston-bernstein/live-arena-service/internal/timeutil"
)

const defaultRetentionDays = 14

// ErrNotConfigured is returned by nil writers and stores.
var ErrNotConfigured = errors.New("snapshot storage not configured")

// Writer persists the latest match list, a per-day archive and the manifest with pruning.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling window retention.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteMatchList replaces latest.json, archives the snapshot under its UTC date and prunes old archives.
func (w *Writer) WriteMatchList(snapshot matches.Snapshot) error {
	if w == nil {
		return ErrNotConfigured
	}
	if snapshot.LastUpdatedAt.IsZero() {
		snapshot.LastUpdatedAt = w.now().UTC()
	}
	date := timeutil.FormatDate(snapshot.LastUpdatedAt.UTC())

	data, err := sonic.ConfigStd.MarshalIndent(snapshot.WithMatches(snapshot.Data.T1), "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode match list snapshot")
	}

	for _, target := range []string{LatestPath(w.basePath), HistoryPath(w.basePath, date)} {
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return errors.Wrap(err, "create snapshot dir")
		}
		if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
			continue
		}
		if err := writeAtomic(target, data); err != nil {
			return err
		}
	}

	return w.updateManifest(date, snapshot)
}

func (w *Writer) updateManifest(date string, snapshot matches.Snapshot) error {
	m, _ := readManifest(ManifestPath(w.basePath), w.retentionDays)

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}

	m.MatchList.Dates = w.pruneOldSnapshots(dates)
	m.MatchList.LastRefreshed = snapshot.LastUpdatedAt.UTC()
	m.MatchList.Count = snapshot.Len()
	m.Retention.MatchListDays = w.retentionDays

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates() ([]string, error) {
	dir := filepath.Dir(HistoryPath(w.basePath, "x"))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, errors.Wrap(err, "list snapshot history")
	}
	dates := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(dates []string) []string {
	cutoff := timeutil.DaysAgoUTC(w.now(), w.retentionDays)
	keep := make([]string, 0, len(dates))
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(HistoryPath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep
}
