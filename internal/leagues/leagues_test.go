package leagues

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
)

const sampleFile = `
allowed_competitions:
  - 7846996
  - 10932509
aliases:
  - competition_id: 4
    keyword: premier league
  - competition_id: 7846996
    keyword: UEFA CHAMPIONS
  - competition_id: 9
    keyword: "  "
`

func writeLeagues(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "leagues.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadParsesFile(t *testing.T) {
	f, err := Load(writeLeagues(t, sampleFile))
	require.NoError(t, err)

	assert.Equal(t, []int64{7846996, 10932509}, f.AllowedCompetitions)
	require.Len(t, f.Aliases, 3)
	assert.Equal(t, int64(4), f.Aliases[0].CompetitionID)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeLeagues(t, "allowed_competitions: [oops"))
	assert.Error(t, err)
}

func TestAliasesOverlayDefaults(t *testing.T) {
	f, err := Load(writeLeagues(t, sampleFile))
	require.NoError(t, err)

	table := f.AliasTable()

	kw, ok := table.Keyword(ChampionsLeagueID)
	assert.True(t, ok)
	assert.Equal(t, "UEFA CHAMPIONS", kw)

	kw, ok = table.Keyword(4)
	assert.True(t, ok)
	assert.Equal(t, "premier league", kw)

	_, ok = table.Keyword(9)
	assert.False(t, ok, "blank keywords are skipped")
}

func TestDefaultAliases(t *testing.T) {
	var f *File
	kw, ok := f.AliasTable().Keyword(ChampionsLeagueID)
	assert.True(t, ok)
	assert.Equal(t, "CHAMPIONS LEAGUE", kw)

	_, ok = DefaultAliases().Keyword(1)
	assert.False(t, ok)
}

func TestStaticReturnsCopy(t *testing.T) {
	s := NewStatic(1, 2)
	ids, err := s.AllowedCompetitions(context.Background())
	require.NoError(t, err)
	delete(ids, 1)

	again, _ := s.AllowedCompetitions(context.Background())
	assert.Len(t, again, 2)
}

func TestFileAllowListRereadsFile(t *testing.T) {
	path := writeLeagues(t, "allowed_competitions: [1]\n")
	a := NewFileAllowList(path)

	ids, err := a.AllowedCompetitions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int64]struct{}{1: {}}, ids)

	require.NoError(t, os.WriteFile(path, []byte("allowed_competitions: [2, 3]\n"), 0o644))
	ids, err = a.AllowedCompetitions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[int64]struct{}{2: {}, 3: {}}, ids)
}

func TestFileAllowListErrors(t *testing.T) {
	a := NewFileAllowList(filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := a.AllowedCompetitions(context.Background())
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewFileAllowList(writeLeagues(t, sampleFile)).AllowedCompetitions(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilter(t *testing.T) {
	snap := matches.Snapshot{Success: true, Data: matches.Data{T1: []matches.Match{
		{Gmid: 1, Cid: 10},
		{Gmid: 2, Cid: 20},
		{Gmid: 3, Cid: 10},
	}}}

	t.Run("keeps_allowed", func(t *testing.T) {
		got := Filter(snap, map[int64]struct{}{10: {}})
		require.Equal(t, 2, got.Len())
		assert.Equal(t, int64(1), got.Matches()[0].Gmid)
		assert.Equal(t, int64(3), got.Matches()[1].Gmid)
		assert.True(t, got.Success)
	})

	t.Run("empty_set_disables_filtering", func(t *testing.T) {
		assert.Equal(t, 3, Filter(snap, nil).Len())
		assert.Equal(t, 3, Filter(snap, map[int64]struct{}{}).Len())
	})

	t.Run("nothing_allowed_matches", func(t *testing.T) {
		got := Filter(snap, map[int64]struct{}{99: {}})
		assert.NotNil(t, got.Data.T1)
		assert.Zero(t, got.Len())
	})

	assert.Equal(t, 3, snap.Len(), "input untouched")
}
