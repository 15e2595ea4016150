package matches

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailedSnapshotIsEmptyButNotNil(t *testing.T) {
	snap := Failed("upstream down")

	assert.False(t, snap.Success)
	assert.Equal(t, "upstream down", snap.Msg)
	require.NotNil(t, snap.Data.T1)
	assert.Empty(t, snap.Matches())
}

func TestMatchesNeverNil(t *testing.T) {
	var snap Snapshot
	assert.NotNil(t, snap.Matches())
	assert.Equal(t, 0, snap.Len())
}

func TestWithMatchesCopiesSnapshot(t *testing.T) {
	orig := Snapshot{Success: true, Msg: "Success", Data: Data{T1: []Match{{Gmid: 1}, {Gmid: 2}}}}

	filtered := orig.WithMatches([]Match{{Gmid: 2}})

	assert.Equal(t, 2, orig.Len())
	assert.Equal(t, 1, filtered.Len())
	assert.True(t, filtered.Success)
	assert.Equal(t, "Success", filtered.Msg)
	assert.NotNil(t, orig.WithMatches(nil).Data.T1)
}

func TestHomeAndAwayTeamUseSlots(t *testing.T) {
	m := Match{Section: []Section{
		{Sno: 3, Nat: "PSV"},
		{Sno: 2, Nat: "The Draw"},
		{Sno: 1, Nat: "Newcastle"},
	}}

	assert.Equal(t, "Newcastle", m.HomeTeam())
	assert.Equal(t, "PSV", m.AwayTeam())
	assert.Equal(t, "", Match{}.HomeTeam())
}

func TestStartTimeLayouts(t *testing.T) {
	tests := []struct {
		raw    string
		expect time.Time
		ok     bool
	}{
		{"1/22/2026 12:30:00 AM", time.Date(2026, 1, 22, 0, 30, 0, 0, time.UTC), true},
		{"1/22/2026 8:15:00 PM", time.Date(2026, 1, 22, 20, 15, 0, 0, time.UTC), true},
		{"2026-01-22T19:45:00Z", time.Date(2026, 1, 22, 19, 45, 0, 0, time.UTC), true},
		{"2026-01-22 19:45:00", time.Date(2026, 1, 22, 19, 45, 0, 0, time.UTC), true},
		{"soon", time.Time{}, false},
		{"", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := Match{Stime: tt.raw}.StartTime()
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, tt.expect.Equal(got), "expected %s, got %s", tt.expect, got)
			}
		})
	}
}

func TestWireNamesArePreserved(t *testing.T) {
	payload := `{
		"success": true,
		"msg": "Success",
		"status": 200,
		"data": {"t1": [{
			"gmid": 509853657,
			"ename": "Newcastle v PSV",
			"cid": 7846996,
			"cname": "EUROPE CHAMPIONS LEAGUE",
			"iplay": true,
			"stime": "1/22/2026 12:30:00 AM",
			"status": "OPEN",
			"section": [{"sid": 781680, "sno": 1, "nat": "Newcastle", "odds": [{"sid": 781680, "odds": 1.35, "otype": "back", "oname": "back1", "size": 17608.52}]}]
		}]}
	}`

	var snap Snapshot
	require.NoError(t, json.Unmarshal([]byte(payload), &snap))

	require.Len(t, snap.Matches(), 1)
	m := snap.Matches()[0]
	assert.Equal(t, int64(509853657), m.Gmid)
	assert.Equal(t, int64(7846996), m.Cid)
	assert.True(t, m.Iplay)
	require.Len(t, m.Section, 1)
	require.Len(t, m.Section[0].Odds, 1)
	assert.Equal(t, 1.35, m.Section[0].Odds[0].Value)
}
