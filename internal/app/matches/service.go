package matches

import (
	"context"
	"sort"
	"strings"
	"time"

	domain "github.com/preston-bernstein/live-arena-service/internal/domain/matches"
	"github.com/preston-bernstein/live-arena-service/internal/store"
	"github.com/preston-bernstein/live-arena-service/internal/timeutil"
)

const (
	// UnknownCompetition labels live matches without a competition name.
	UnknownCompetition = "Unknown Competition"

	defaultFeaturedCount = 3
)

// Cache is the read side of the match cache.
type Cache interface {
	Get(ctx context.Context) domain.Snapshot
}

// Aliases resolves a competition id to a name keyword for the by-competition fallback.
type Aliases interface {
	Keyword(competitionID int64) (string, bool)
}

// CompetitionGroup is a set of matches sharing a competition name.
type CompetitionGroup struct {
	Competition string         `json:"competition"`
	Matches     []domain.Match `json:"matches"`
}

// DayGroup is a set of matches starting on the same date (YYYY-MM-DD).
type DayGroup struct {
	Date    string         `json:"date"`
	Matches []domain.Match `json:"matches"`
}

// Service exposes read accessors over the cached match list.
type Service struct {
	cache   Cache
	aliases Aliases
}

// NewService constructs a Service. aliases may be nil to disable the name fallback.
func NewService(cache Cache, aliases Aliases) *Service {
	return &Service{cache: cache, aliases: aliases}
}

// MatchList returns the current snapshot, fetching through when the cache is cold.
func (s *Service) MatchList(ctx context.Context) domain.Snapshot {
	if s.cache == nil {
		return domain.Failed(store.NoDataMessage)
	}
	return s.cache.Get(ctx)
}

// Categorized splits the current snapshot into live, prematch and finished.
func (s *Service) Categorized(ctx context.Context) domain.Categories {
	return domain.Categorize(s.MatchList(ctx))
}

// ByCompetition returns matches with the given competition id in feed order. When none
// match and the id has an alias keyword, it falls back to a case-insensitive substring
// match of the keyword against competition names.
func (s *Service) ByCompetition(ctx context.Context, competitionID int64) []domain.Match {
	return s.byCompetition(s.MatchList(ctx).Matches(), competitionID)
}

func (s *Service) byCompetition(list []domain.Match, competitionID int64) []domain.Match {
	out := filter(list, func(m domain.Match) bool { return m.Cid == competitionID })
	if len(out) > 0 || s.aliases == nil {
		return out
	}

	keyword, ok := s.aliases.Keyword(competitionID)
	if !ok {
		return out
	}
	keyword = strings.ToUpper(keyword)
	return filter(list, func(m domain.Match) bool {
		return strings.Contains(strings.ToUpper(m.Cname), keyword)
	})
}

// LiveOnly returns matches flagged in-play.
func (s *Service) LiveOnly(ctx context.Context) []domain.Match {
	return filter(s.MatchList(ctx).Matches(), func(m domain.Match) bool { return m.Iplay })
}

// ByMatchID returns the first match with the given id.
func (s *Service) ByMatchID(ctx context.Context, gmid int64) (domain.Match, bool) {
	for _, m := range s.MatchList(ctx).Matches() {
		if m.Gmid == gmid {
			return m, true
		}
	}
	return domain.Match{}, false
}

// LiveByCompetition groups the live bucket by competition name, names sorted.
func (s *Service) LiveByCompetition(ctx context.Context) []CompetitionGroup {
	live := s.Categorized(ctx).Live

	index := make(map[string]int)
	groups := make([]CompetitionGroup, 0)
	for _, m := range live {
		name := strings.TrimSpace(m.Cname)
		if name == "" {
			name = UnknownCompetition
		}
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, CompetitionGroup{Competition: name})
		}
		groups[i].Matches = append(groups[i].Matches, m)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Competition < groups[j].Competition
	})
	return groups
}

// PrematchByDate groups the prematch bucket by start date. Matches with an unparseable
// start time are skipped; each day is ordered by kickoff.
func (s *Service) PrematchByDate(ctx context.Context) []DayGroup {
	type timed struct {
		match domain.Match
		at    time.Time
	}

	prematch := s.Categorized(ctx).Prematch
	scheduled := make([]timed, 0, len(prematch))
	for _, m := range prematch {
		at, ok := m.StartTime()
		if !ok {
			continue
		}
		scheduled = append(scheduled, timed{match: m, at: at})
	}
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].at.Before(scheduled[j].at)
	})

	groups := make([]DayGroup, 0)
	for _, t := range scheduled {
		date := timeutil.FormatDate(t.at)
		if n := len(groups); n == 0 || groups[n-1].Date != date {
			groups = append(groups, DayGroup{Date: date})
		}
		last := &groups[len(groups)-1]
		last.Matches = append(last.Matches, t.match)
	}
	return groups
}

// Featured picks up to n matches from the competition (all matches when it has none, or
// when competitionID is zero), live first and then by start time. n <= 0 means three.
func (s *Service) Featured(ctx context.Context, competitionID int64, n int) []domain.Match {
	if n <= 0 {
		n = defaultFeaturedCount
	}
	all := s.MatchList(ctx).Matches()

	var pool []domain.Match
	if competitionID != 0 {
		pool = s.byCompetition(all, competitionID)
	}
	if len(pool) == 0 {
		pool = append([]domain.Match(nil), all...)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		li := domain.Classify(pool[i]) == domain.CategoryLive
		lj := domain.Classify(pool[j]) == domain.CategoryLive
		if li != lj {
			return li
		}
		ti, oki := pool[i].StartTime()
		tj, okj := pool[j].StartTime()
		if oki != okj {
			return oki
		}
		return ti.Before(tj)
	})

	if len(pool) > n {
		pool = pool[:n]
	}
	return pool
}

func filter(list []domain.Match, keep func(domain.Match) bool) []domain.Match {
	out := make([]domain.Match, 0)
	for _, m := range list {
		if keep(m) {
			out = append(out, m)
		}
	}
	return out
}
