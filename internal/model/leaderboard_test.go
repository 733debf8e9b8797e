package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKeyDocumentID(t *testing.T) {
	assert.Equal(t, "2026-9", MonthKey{Year: 2026, Month: 9}.DocumentID())
	assert.Equal(t, "2025-12", MonthKey{Year: 2025, Month: 12}.DocumentID())
}

func TestParseMonthKey(t *testing.T) {
	tests := []struct {
		id      string
		want    MonthKey
		wantErr bool
	}{
		{id: "2026-9", want: MonthKey{Year: 2026, Month: 9}},
		{id: "2025-12", want: MonthKey{Year: 2025, Month: 12}},
		{id: "2026-0", wantErr: true},
		{id: "2026-13", wantErr: true},
		{id: "2026", wantErr: true},
		{id: "abcd-9", wantErr: true},
		{id: "2026-xyz", wantErr: true},
		{id: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			key, err := ParseMonthKey(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, key)
		})
	}
}

func TestParseMonthKeyRoundTrip(t *testing.T) {
	key := MonthKey{Year: 2026, Month: 3}
	parsed, err := ParseMonthKey(key.DocumentID())
	require.NoError(t, err)
	assert.Equal(t, key, parsed)
}

func TestPositionOf(t *testing.T) {
	lb := &MonthlyLeaderboard{Users: []MonthlyUserStats{
		{UserProfile: UserProfile{UID: "a"}, Position: 1},
		{UserProfile: UserProfile{UID: "b"}, Position: 2},
	}}
	assert.Equal(t, 2, lb.PositionOf("b"))
	assert.Equal(t, 0, lb.PositionOf("ghost"))
}

func TestErpID(t *testing.T) {
	u := &UserProfile{Email: "1032230123@mitwpu.edu.in"}
	assert.Equal(t, "1032230123", u.ErpID())

	noAt := &UserProfile{Email: "plainstring"}
	assert.Equal(t, "plainstring", noAt.ErpID())
}

func TestMergeStatsNilPayloadsYieldZeroes(t *testing.T) {
	stats := MergeStats("u1", 1234, nil, nil, nil, nil, nil)
	assert.Equal(t, "u1", stats.UID)
	assert.EqualValues(t, 1234, stats.LastUpdated)
	assert.Zero(t, stats.LeetcodeSolved)
	assert.Zero(t, stats.GfgSolved)
	assert.Zero(t, stats.GithubRepos)
	assert.Zero(t, stats.CodechefProblemsSolved)
	assert.Zero(t, stats.HackerrankRating)
}

func TestMergeStatsCopiesEveryPlatform(t *testing.T) {
	stats := MergeStats("u1", 1234,
		&LeetcodeStats{TotalSolved: 10, EasySolved: 5, MediumSolved: 4, HardSolved: 1, AcceptanceRate: 62.5, Ranking: 90000, ContributionPoints: 300},
		&GFGStats{TotalProblemsSolved: 20, TotalScore: 400, CurrentRating: 1500, Basic: 2, Easy: 8, Medium: 9, Hard: 1},
		&GithubStats{PublicRepos: 7},
		&CodechefStats{ContestRating: 1700, ContestsAttended: 12, ProblemsSolved: 30},
		&HackerrankStats{ContestRating: 1400},
	)

	assert.Equal(t, 10, stats.LeetcodeSolved)
	assert.Equal(t, 1, stats.LeetcodeHardSolved)
	assert.InDelta(t, 62.5, stats.LeetcodeAcceptanceRate, 1e-9)
	assert.Equal(t, 20, stats.GfgSolved)
	assert.Equal(t, 1500, stats.GfgCurrentRating)
	assert.Equal(t, 7, stats.GithubRepos)
	assert.Equal(t, 1700, stats.CodechefRating)
	assert.Equal(t, 30, stats.CodechefProblemsSolved)
	assert.Equal(t, 1400, stats.HackerrankRating)
}
