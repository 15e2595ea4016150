package snapshots

import (
	"fmt"
	"path/filepath"
)

const matchListDir = "matchlist"

// LatestPath is where the most recent match list is kept.
func LatestPath(basePath string) string {
	return filepath.Join(basePath, matchListDir, "latest.json")
}

// HistoryPath builds the path to the archived match list for a given date.
func HistoryPath(basePath, date string) string {
	return filepath.Join(basePath, matchListDir, "history", fmt.Sprintf("%s.json", date))
}

// ManifestPath is the manifest location under basePath.
func ManifestPath(basePath string) string {
	return filepath.Join(basePath, "manifest.json")
}
