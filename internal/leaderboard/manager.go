// Package leaderboard orchestrates the monthly snapshot cycle: aggregate
// stats for every eligible user, score and rank them, diff against the
// previous snapshot and persist the result.
package leaderboard

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
	"github.com/crevo-hub/LeaderboardEngineService/internal/repo"
	"github.com/crevo-hub/LeaderboardEngineService/internal/scoring"
	"github.com/google/uuid"
)

// StatsProvider yields the merged stats record for one user. Implemented
// by the aggregator.
type StatsProvider interface {
	GetUserStats(ctx context.Context, user *model.UserProfile) *model.UserStats
}

// Cache is the optional snapshot read cache. Implemented by
// repo.SnapshotCache.
type Cache interface {
	Get(ctx context.Context, key model.MonthKey) (*model.MonthlyLeaderboard, error)
	Set(ctx context.Context, lb *model.MonthlyLeaderboard) error
}

// Notifier receives the snapshot after every successful refresh.
// Implemented by the WebSocket hub.
type Notifier interface {
	NotifyRefresh(lb *model.MonthlyLeaderboard)
}

type Manager struct {
	users       repo.UserRepository
	boards      repo.LeaderboardRepository
	stats       StatsProvider
	cache       Cache    // may be nil
	notifier    Notifier // may be nil
	workers     int
	adminEmails map[string]struct{}
}

func NewManager(users repo.UserRepository, boards repo.LeaderboardRepository, stats StatsProvider, workers int, adminEmails []string) *Manager {
	if workers < 1 {
		workers = 1
	}
	excluded := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		excluded[email] = struct{}{}
	}
	return &Manager{
		users:       users,
		boards:      boards,
		stats:       stats,
		workers:     workers,
		adminEmails: excluded,
	}
}

// WithCache attaches a snapshot read cache.
func (m *Manager) WithCache(cache Cache) *Manager {
	m.cache = cache
	return m
}

// WithNotifier attaches a refresh notifier.
func (m *Manager) WithNotifier(n Notifier) *Manager {
	m.notifier = n
	return m
}

// eligible filters out administrator accounts, by the isAdmin flag on
// the profile or by the configured exclusion set.
func (m *Manager) eligible(users []model.UserProfile) []model.UserProfile {
	result := make([]model.UserProfile, 0, len(users))
	for _, u := range users {
		if u.IsAdmin {
			continue
		}
		if _, excluded := m.adminEmails[u.Email]; excluded {
			continue
		}
		result = append(result, u)
	}
	return result
}

// RefreshCurrentMonth rebuilds and persists the snapshot for the current
// calendar month. The previous snapshot for the same month key is read
// before the write so position deltas reference the superseded state, not
// the one being written. A user-list or snapshot-write failure aborts the
// cycle; the stored snapshot then stays last-known-good until the next
// tick.
func (m *Manager) RefreshCurrentMonth(ctx context.Context) (*model.MonthlyLeaderboard, error) {
	now := time.Now()
	key := model.MonthKey{Year: now.Year(), Month: int(now.Month())}
	cycle := uuid.New().String()[:8]
	log.Printf("[Leaderboard] cycle %s: refreshing snapshot %s", cycle, key.DocumentID())

	allUsers, err := m.users.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("cycle %s: failed to load users: %w", cycle, err)
	}
	users := m.eligible(allUsers)
	log.Printf("[Leaderboard] cycle %s: processing %d of %d users", cycle, len(users), len(allUsers))

	previous, err := m.boards.GetSnapshot(ctx, key)
	if err != nil {
		log.Printf("[Leaderboard] cycle %s: reading previous snapshot: %v", cycle, err)
		previous = nil
	}
	previousPositions := make(map[string]int)
	if previous != nil {
		for _, row := range previous.Users {
			previousPositions[row.UID] = row.Position
		}
	}

	rows := m.buildRows(ctx, users)

	// Stable sort keeps ties in user-enumeration order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].RankScore > rows[j].RankScore
	})
	for i := range rows {
		rows[i].Position = i + 1
		if prev, ok := previousPositions[rows[i].UID]; ok {
			prevCopy := prev
			rows[i].PreviousPosition = &prevCopy
		}
	}

	lb := &model.MonthlyLeaderboard{
		ID:          key.DocumentID(),
		Month:       key.Month,
		Year:        key.Year,
		GeneratedAt: now.UnixMilli(),
		Users:       rows,
	}

	if err := m.boards.SaveSnapshot(ctx, lb); err != nil {
		return nil, fmt.Errorf("cycle %s: failed to save snapshot: %w", cycle, err)
	}

	if m.cache != nil {
		if err := m.cache.Set(ctx, lb); err != nil {
			log.Printf("[Leaderboard] cycle %s: refreshing cache: %v", cycle, err)
		}
	}
	if m.notifier != nil {
		m.notifier.NotifyRefresh(lb)
	}

	log.Printf("[Leaderboard] cycle %s: snapshot %s saved with %d users", cycle, key.DocumentID(), len(rows))
	return lb, nil
}

// buildRows runs the per-user aggregate+score pipeline over a bounded
// worker pool. Row order matches the user-enumeration order.
func (m *Manager) buildRows(ctx context.Context, users []model.UserProfile) []model.MonthlyUserStats {
	rows := make([]model.MonthlyUserStats, len(users))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < m.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rows[i] = m.buildRow(ctx, users[i])
			}
		}()
	}
	for i := range users {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return rows
}

func (m *Manager) buildRow(ctx context.Context, user model.UserProfile) model.MonthlyUserStats {
	stats := m.stats.GetUserStats(ctx, &user)
	totalSolved := scoring.TotalSolved(stats)
	return model.MonthlyUserStats{
		UserProfile:         user,
		Stats:               *stats,
		TotalSolved:         totalSolved,
		RankScore:           scoring.RankScore(stats),
		ProblemSolvingLevel: scoring.ProblemSolvingLevel(totalSolved),
		DeveloperLevel:      scoring.DeveloperLevel(stats.GithubRepos),
	}
}

// RefreshKey returns the month key a refresh started now would write.
// The scheduler serializes overlapping runs on it.
func (m *Manager) RefreshKey() string {
	now := time.Now()
	return model.MonthKey{Year: now.Year(), Month: int(now.Month())}.DocumentID()
}

// Refresh runs one refresh cycle, discarding the snapshot value.
func (m *Manager) Refresh(ctx context.Context) error {
	_, err := m.RefreshCurrentMonth(ctx)
	return err
}

// GetSnapshot returns the stored snapshot for a month, or nil when none
// exists. Reads go through the cache when one is attached.
func (m *Manager) GetSnapshot(ctx context.Context, month, year int) (*model.MonthlyLeaderboard, error) {
	key := model.MonthKey{Year: year, Month: month}

	if m.cache != nil {
		cached, err := m.cache.Get(ctx, key)
		if err != nil {
			log.Printf("[Leaderboard] cache read for %s: %v", key.DocumentID(), err)
		} else if cached != nil {
			return cached, nil
		}
	}

	lb, err := m.boards.GetSnapshot(ctx, key)
	if err != nil {
		return nil, err
	}
	if lb != nil && m.cache != nil {
		if err := m.cache.Set(ctx, lb); err != nil {
			log.Printf("[Leaderboard] cache fill for %s: %v", key.DocumentID(), err)
		}
	}
	return lb, nil
}

// ListAvailableMonths returns the month keys of all stored snapshots,
// newest first.
func (m *Manager) ListAvailableMonths(ctx context.Context) ([]model.MonthKey, error) {
	keys, err := m.boards.ListMonthKeys(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Year != keys[j].Year {
			return keys[i].Year > keys[j].Year
		}
		return keys[i].Month > keys[j].Month
	})
	return keys, nil
}

// UserStatsView is the single-user dashboard view: the merged stats plus
// the derived score and levels, computed through the same aggregation
// path the leaderboard uses.
type UserStatsView struct {
	User                model.UserProfile `json:"user"`
	Stats               model.UserStats   `json:"stats"`
	TotalSolved         int               `json:"totalSolved"`
	RankScore           float64           `json:"rankScore"`
	ProblemSolvingLevel string            `json:"problemSolvingLevel"`
	DeveloperLevel      string            `json:"developerLevel"`
}

// GetUserStatsView returns the dashboard view for one user, or nil when
// the user does not exist.
func (m *Manager) GetUserStatsView(ctx context.Context, uid string) (*UserStatsView, error) {
	user, err := m.users.GetUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	row := m.buildRow(ctx, *user)
	return &UserStatsView{
		User:                row.UserProfile,
		Stats:               row.Stats,
		TotalSolved:         row.TotalSolved,
		RankScore:           row.RankScore,
		ProblemSolvingLevel: row.ProblemSolvingLevel,
		DeveloperLevel:      row.DeveloperLevel,
	}, nil
}
