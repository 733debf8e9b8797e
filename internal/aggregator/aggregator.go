// Package aggregator merges per-platform statistics into one UserStats
// record per user, behind a single time-based freshness policy.
package aggregator

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
	"github.com/crevo-hub/LeaderboardEngineService/internal/platforms"
	"github.com/crevo-hub/LeaderboardEngineService/internal/repo"
)

// Fetcher interfaces, one per platform adapter. The aggregator treats all
// of them the same way: nil result means zeroes.

type LeetcodeFetcher interface {
	Fetch(ctx context.Context, username string) *model.LeetcodeStats
}

type GFGFetcher interface {
	Fetch(ctx context.Context, username string) *model.GFGStats
}

type GithubFetcher interface {
	Fetch(ctx context.Context, username string) *model.GithubStats
}

type CodechefFetcher interface {
	Fetch(ctx context.Context, username string) *model.CodechefStats
}

type HackerrankFetcher interface {
	Fetch(ctx context.Context, username string) *model.HackerrankStats
}

// Adapters bundles the five platform adapters.
type Adapters struct {
	Leetcode   LeetcodeFetcher
	GFG        GFGFetcher
	Github     GithubFetcher
	Codechef   CodechefFetcher
	Hackerrank HackerrankFetcher
}

// IsFresh is the one freshness check shared by every stats consumer.
// lastUpdated is epoch millis.
func IsFresh(lastUpdated int64, now time.Time, window time.Duration) bool {
	age := now.UnixMilli() - lastUpdated
	return age >= 0 && age < window.Milliseconds()
}

type Aggregator struct {
	stats          repo.StatsRepository
	adapters       Adapters
	freshness      time.Duration
	adapterTimeout time.Duration
}

func New(stats repo.StatsRepository, adapters Adapters, freshness, adapterTimeout time.Duration) *Aggregator {
	return &Aggregator{
		stats:          stats,
		adapters:       adapters,
		freshness:      freshness,
		adapterTimeout: adapterTimeout,
	}
}

// GetUserStats returns the user's stats record, re-fetching from the
// platforms only when the stored record is older than the freshness
// window. The returned record is always fully populated; failed platform
// fetches contribute zeroes. Persistence problems are absorbed here: a
// stale read falls through to a re-fetch, a failed write still returns
// the freshly merged record.
func (a *Aggregator) GetUserStats(ctx context.Context, user *model.UserProfile) *model.UserStats {
	cached, err := a.stats.GetUserStats(ctx, user.UID)
	if err != nil {
		log.Printf("[Aggregator] reading cached stats for %s: %v", user.UID, err)
	}
	now := time.Now()
	if cached != nil && IsFresh(cached.LastUpdated, now, a.freshness) {
		return cached
	}

	fetched := a.fetchAll(ctx, user, now)
	if err := a.stats.SaveUserStats(ctx, fetched); err != nil {
		log.Printf("[Aggregator] saving stats for %s: %v", user.UID, err)
	}
	return fetched
}

// fetchAll fans out to all five platforms concurrently and merges the
// results. Each call carries its own timeout so one slow platform cannot
// stall the rest of the pipeline.
func (a *Aggregator) fetchAll(ctx context.Context, user *model.UserProfile, now time.Time) *model.UserStats {
	var (
		lc  *model.LeetcodeStats
		gfg *model.GFGStats
		gh  *model.GithubStats
		cc  *model.CodechefStats
		hr  *model.HackerrankStats
	)

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, a.adapterTimeout)
		defer cancel()
		lc = a.adapters.Leetcode.Fetch(fetchCtx, platforms.ExtractUsername(user.LeetcodeURL))
	}()
	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, a.adapterTimeout)
		defer cancel()
		gfg = a.adapters.GFG.Fetch(fetchCtx, platforms.ExtractUsername(user.GfgURL))
	}()
	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, a.adapterTimeout)
		defer cancel()
		gh = a.adapters.Github.Fetch(fetchCtx, platforms.ExtractUsername(user.GithubURL))
	}()
	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, a.adapterTimeout)
		defer cancel()
		cc = a.adapters.Codechef.Fetch(fetchCtx, platforms.ExtractUsername(user.CodechefURL))
	}()
	go func() {
		defer wg.Done()
		fetchCtx, cancel := context.WithTimeout(ctx, a.adapterTimeout)
		defer cancel()
		hr = a.adapters.Hackerrank.Fetch(fetchCtx, platforms.ExtractUsername(user.HackerrankURL))
	}()

	wg.Wait()

	stats := model.MergeStats(user.UID, now.UnixMilli(), lc, gfg, gh, cc, hr)
	return &stats
}
