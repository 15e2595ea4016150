package config

// SnapshotConfig controls persistence of the last good match list.
type SnapshotConfig struct {
	Enabled       bool
	Dir           string // base path for snapshot files
	RetentionDays int    // daily history files older than this are pruned
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Enabled:       boolEnvOrDefault(envSnapshotEnabled, defaultSnapshotEnabled),
		Dir:           envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays: intEnvOrDefault(envSnapshotRetention, defaultSnapshotRetention),
	}
}
