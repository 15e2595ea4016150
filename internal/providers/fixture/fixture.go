package fixture

import (
	"context"
	"time"

	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
)

const stimeLayout = "1/2/2006 3:04:05 PM"

// Provider returns a static match list useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return "fixture"
}

// FetchMatchList returns a deterministic feed: one live Champions League tie,
// two upcoming fixtures and one finished one. Start times are anchored to the clock.
func (p *Provider) FetchMatchList(ctx context.Context) (matches.Snapshot, error) {
	_ = ctx

	now := p.now().UTC()
	start := now.Truncate(time.Hour)

	list := []matches.Match{
		{
			Gmid:    509853657,
			Ename:   "Newcastle United v PSV Eindhoven",
			Etid:    1,
			Cid:     7846996,
			Cname:   "EUROPE CHAMPIONS LEAGUE",
			Iplay:   true,
			Stime:   start.Add(-45 * time.Minute).Format(stimeLayout),
			Tv:      true,
			Bm:      true,
			Mid:     1781680,
			Mname:   "MATCH_ODDS",
			Status:  "OPEN",
			Gtype:   "match",
			Section: threeWay(781680, "Newcastle United", "PSV Eindhoven", 1.35, 8.4, 5.6),
		},
		{
			Gmid:    509853701,
			Ename:   "Leeds United v Hull City",
			Etid:    1,
			Cid:     10932509,
			Cname:   "ENGLAND Championship",
			Stime:   start.Add(3 * time.Hour).Format(stimeLayout),
			Bm:      true,
			Mid:     1781702,
			Mname:   "MATCH_ODDS",
			Status:  "OPEN",
			Gtype:   "match",
			Section: threeWay(781702, "Leeds United", "Hull City", 1.62, 5.3, 3.9),
		},
		{
			Gmid:    509853722,
			Ename:   "Inter v Arsenal",
			Etid:    1,
			Cid:     7846996,
			Cname:   "EUROPE CHAMPIONS LEAGUE",
			Stime:   start.Add(27 * time.Hour).Format(stimeLayout),
			Tv:      true,
			Bm:      true,
			Mid:     1781723,
			Mname:   "MATCH_ODDS",
			Status:  "OPEN",
			Gtype:   "match",
			Section: threeWay(781723, "Inter", "Arsenal", 2.7, 2.6, 3.3),
		},
		{
			Gmid:    509853590,
			Ename:   "Sunderland v Millwall",
			Etid:    1,
			Cid:     10932509,
			Cname:   "ENGLAND Championship",
			Stime:   start.Add(-4 * time.Hour).Format(stimeLayout),
			Mid:     1781591,
			Mname:   "MATCH_ODDS",
			Status:  "CLOSED",
			Gtype:   "match",
			Section: threeWay(781591, "Sunderland", "Millwall", 0, 0, 0),
		},
	}

	return matches.Snapshot{
		Success:       true,
		Msg:           "Success",
		Status:        200,
		Data:          matches.Data{T1: list},
		LastUpdatedAt: now,
	}, nil
}

func threeWay(sid int64, home, away string, homeOdds, awayOdds, drawOdds float64) []matches.Section {
	side := func(offset int64, sno int, nat string, price float64) matches.Section {
		sec := matches.Section{Sid: sid + offset, Sno: sno, Gstatus: "ACTIVE", Nat: nat, Odds: []matches.Odds{}}
		if price > 0 {
			sec.Odds = append(sec.Odds, matches.Odds{Sid: sid + offset, Value: price, Otype: "back", Oname: "back1", Size: 1500})
		} else {
			sec.Gstatus = "SUSPENDED"
		}
		return sec
	}
	return []matches.Section{
		side(0, 1, home, homeOdds),
		side(1, 2, "The Draw", drawOdds),
		side(2, 3, away, awayOdds),
	}
}
