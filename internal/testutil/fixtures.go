package testutil

import (
	"time"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
)

// SampleMatch returns a prematch fixture with home/draw/away sections.
func SampleMatch(gmid int64) matches.Match {
	return matches.Match{
		Gmid:   gmid,
		Ename:  "Home v Away",
		Etid:   1,
		Cid:    10932509,
		Cname:  "ENGLAND Championship",
		Stime:  "1/22/2026 3:00:00 PM",
		Status: "OPEN",
		Section: []matches.Section{
			{Sid: gmid*10 + 1, Sno: 1, Nat: "Home"},
			{Sid: gmid*10 + 2, Sno: 2, Nat: "The Draw"},
			{Sid: gmid*10 + 3, Sno: 3, Nat: "Away"},
		},
	}
}

// SampleSnapshot wraps the given matches in a successful snapshot.
func SampleSnapshot(list ...matches.Match) matches.Snapshot {
	if list == nil {
		list = []matches.Match{}
	}
	return matches.Snapshot{
		Success:       true,
		Msg:           "Success",
		Status:        200,
		Data:          matches.Data{T1: list},
		LastUpdatedAt: time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC),
	}
}
