package snapshots

import (
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

// Manifest tracks snapshot metadata.
type Manifest struct {
	Version     int           `json:"version"`
	GeneratedAt time.Time     `json:"generatedAt"`
	Retention   Retention     `json:"retention"`
	MatchList   MatchListMeta `json:"matchList"`
}

type Retention struct {
	MatchListDays int `json:"matchListDays"`
}

type MatchListMeta struct {
	Dates         []string  `json:"dates"`
	LastRefreshed time.Time `json:"lastRefreshed"`
	Count         int       `json:"count"`
}

func defaultManifest(retentionDays int) Manifest {
	return Manifest{
		Version:     1,
		GeneratedAt: time.Now().UTC(),
		Retention: Retention{
			MatchListDays: retentionDays,
		},
		MatchList: MatchListMeta{
			Dates: []string{},
		},
	}
}

func readManifest(path string, retentionDays int) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultManifest(retentionDays), err
	}
	var m Manifest
	if err := sonic.ConfigStd.Unmarshal(data, &m); err != nil {
		return defaultManifest(retentionDays), errors.Wrap(err, "decode manifest")
	}
	return m, nil
}

func writeManifest(basePath string, m Manifest) error {
	m.GeneratedAt = time.Now().UTC()
	data, err := sonic.ConfigStd.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode manifest")
	}
	return writeAtomic(ManifestPath(basePath), data)
}

func writeAtomic(target string, data []byte) error {
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %s", tmp)
	}
	if err := os.Rename(tmp, target); err != nil {
		return errors.Wrapf(err, "rename %s", tmp)
	}
	return nil
}
