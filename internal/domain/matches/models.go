package matches

import (
	"strings"
	"time"
)

// Snapshot is the match-list payload returned by the upstream feed at a point in time.
// Field names mirror the upstream wire contract.
type Snapshot struct {
	Success       bool      `json:"success"`
	Msg           string    `json:"msg"`
	Status        int       `json:"status"`
	Data          Data      `json:"data"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// Data holds the match collections keyed the way the feed sends them.
type Data struct {
	T1 []Match `json:"t1"`
	T2 []Match `json:"t2,omitempty"`
}

// Match is a single fixture in the feed.
type Match struct {
	Gmid    int64     `json:"gmid"`
	Ename   string    `json:"ename"`
	Etid    int       `json:"etid"`
	Cid     int64     `json:"cid"`
	Cname   string    `json:"cname"`
	Iplay   bool      `json:"iplay"`
	Stime   string    `json:"stime"`
	Tv      bool      `json:"tv"`
	Bm      bool      `json:"bm"`
	F       bool      `json:"f"`
	F1      bool      `json:"f1"`
	Iscc    int       `json:"iscc"`
	Mid     int64     `json:"mid"`
	Mname   string    `json:"mname"`
	Status  string    `json:"status"`
	Rc      int       `json:"rc"`
	Gscode  int       `json:"gscode"`
	M       int       `json:"m"`
	Oid     int       `json:"oid"`
	Gtype   string    `json:"gtype"`
	Section []Section `json:"section"`
}

// Section is one competing side (or the draw) of a match, identified by its slot number.
type Section struct {
	Sid     int64  `json:"sid"`
	Sno     int    `json:"sno"`
	Gstatus string `json:"gstatus"`
	Gscode  int    `json:"gscode"`
	Nat     string `json:"nat"`
	Odds    []Odds `json:"odds"`
}

// Odds is passed through untouched.
type Odds struct {
	Sid   int64   `json:"sid"`
	Psid  int     `json:"psid"`
	Value float64 `json:"odds"`
	Otype string  `json:"otype"`
	Oname string  `json:"oname"`
	Tno   int     `json:"tno"`
	Size  float64 `json:"size"`
}

const (
	homeSlot = 1
	awaySlot = 3
)

// Failed builds a failure-shaped snapshot: success=false, the message, and an empty match list.
func Failed(msg string) Snapshot {
	return Snapshot{
		Success: false,
		Msg:     msg,
		Data:    Data{T1: []Match{}},
	}
}

// Matches returns the primary match list, never nil.
func (s Snapshot) Matches() []Match {
	if s.Data.T1 == nil {
		return []Match{}
	}
	return s.Data.T1
}

// WithMatches returns a copy of the snapshot carrying the given matches.
func (s Snapshot) WithMatches(list []Match) Snapshot {
	if list == nil {
		list = []Match{}
	}
	s.Data.T1 = list
	return s
}

// Len reports the number of matches in the primary list.
func (s Snapshot) Len() int {
	return len(s.Data.T1)
}

// HomeTeam returns the name on the home slot, or "" if absent.
func (m Match) HomeTeam() string {
	return m.sectionName(homeSlot)
}

// AwayTeam returns the name on the away slot, or "" if absent.
func (m Match) AwayTeam() string {
	return m.sectionName(awaySlot)
}

func (m Match) sectionName(slot int) string {
	for _, s := range m.Section {
		if s.Sno == slot {
			return s.Nat
		}
	}
	return ""
}

// StartTime parses the scheduled start time. The feed uses a US-style
// "1/22/2026 12:30:00 AM" layout but RFC3339 values are accepted too.
func (m Match) StartTime() (time.Time, bool) {
	raw := strings.TrimSpace(m.Stime)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

var startTimeLayouts = []string{
	"1/2/2006 3:04:05 PM",
	"1/2/2006 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}
