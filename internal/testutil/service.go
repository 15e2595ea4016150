package testutil

import (
	"time"

	appmatches "github.com/preston-bernstein/live-arena-service/internal/app/matches"
	"github.com/preston-bernstein/live-arena-service/internal/domain/matches"
	"github.com/preston-bernstein/live-arena-service/internal/leagues"
	"github.com/preston-bernstein/live-arena-service/internal/store"
)

// NewServiceWithSnapshot builds a match service over a cache preloaded with snap.
// The cache has no fetcher, so an expired entry is served stale.
func NewServiceWithSnapshot(snap matches.Snapshot) *appmatches.Service {
	cache := store.NewMatchCache(nil, time.Hour)
	cache.Set(snap)
	return appmatches.NewService(cache, leagues.DefaultAliases())
}

// NewEmptyService builds a match service whose cache has never held data.
func NewEmptyService() *appmatches.Service {
	return appmatches.NewService(store.NewMatchCache(nil, time.Hour), leagues.DefaultAliases())
}
