package leagues

import (
	"context"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
)

// ChampionsLeagueID is the feed's competition id for the UEFA Champions League.
const ChampionsLeagueID int64 = 7846996

// AllowList supplies the competition ids that may be published. An empty set disables filtering.
type AllowList interface {
	AllowedCompetitions(ctx context.Context) (map[int64]struct{}, error)
}

// Alias maps a competition id to a name keyword used when the id is missing from a feed.
type Alias struct {
	CompetitionID int64  `yaml:"competition_id"`
	Keyword       string `yaml:"keyword"`
}

// File is the on-disk reference data.
type File struct {
	AllowedCompetitions []int64 `yaml:"allowed_competitions"`
	Aliases             []Alias `yaml:"aliases"`
}

// Load reads and parses a leagues file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read leagues file %s", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "parse leagues file %s", path)
	}
	return &f, nil
}

// AliasTable resolves competition ids to name keywords.
type AliasTable map[int64]string

// DefaultAliases is the built-in table.
func DefaultAliases() AliasTable {
	return AliasTable{ChampionsLeagueID: "CHAMPIONS LEAGUE"}
}

// Keyword returns the alias keyword for a competition id.
func (t AliasTable) Keyword(competitionID int64) (string, bool) {
	kw, ok := t[competitionID]
	if !ok || strings.TrimSpace(kw) == "" {
		return "", false
	}
	return kw, true
}

// AliasTable returns the default table overlaid with the file's aliases. A nil file yields the defaults.
func (f *File) AliasTable() AliasTable {
	table := DefaultAliases()
	if f == nil {
		return table
	}
	for _, a := range f.Aliases {
		kw := strings.TrimSpace(a.Keyword)
		if a.CompetitionID == 0 || kw == "" {
			continue
		}
		table[a.CompetitionID] = kw
	}
	return table
}

// Static is a fixed allow-list.
type Static struct {
	ids map[int64]struct{}
}

// NewStatic builds an allow-list from the given ids.
func NewStatic(ids ...int64) *Static {
	return &Static{ids: toSet(ids)}
}

// AllowedCompetitions returns a copy of the configured ids.
func (s *Static) AllowedCompetitions(context.Context) (map[int64]struct{}, error) {
	out := make(map[int64]struct{}, len(s.ids))
	for id := range s.ids {
		out[id] = struct{}{}
	}
	return out, nil
}

// FileAllowList re-reads the leagues file on every call so edits apply on the next poll.
type FileAllowList struct {
	path string
}

// NewFileAllowList returns an allow-list backed by the leagues file at path.
func NewFileAllowList(path string) *FileAllowList {
	return &FileAllowList{path: path}
}

// AllowedCompetitions loads the file and returns its allowed ids.
func (a *FileAllowList) AllowedCompetitions(ctx context.Context) (map[int64]struct{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := Load(a.path)
	if err != nil {
		return nil, err
	}
	return toSet(f.AllowedCompetitions), nil
}

// Filter keeps matches whose competition id is allowed. An empty set returns the snapshot unchanged.
func Filter(s matches.Snapshot, allowed map[int64]struct{}) matches.Snapshot {
	if len(allowed) == 0 {
		return s
	}
	kept := make([]matches.Match, 0, s.Len())
	for _, m := range s.Matches() {
		if _, ok := allowed[m.Cid]; ok {
			kept = append(kept, m)
		}
	}
	return s.WithMatches(kept)
}

func toSet(ids []int64) map[int64]struct{} {
	out := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
