package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
)

func TestRankScore(t *testing.T) {
	tests := []struct {
		name  string
		stats model.UserStats
		want  float64
	}{
		{
			name: "weighted sum",
			stats: model.UserStats{
				LeetcodeSolved:         100,
				GfgSolved:              100,
				CodechefProblemsSolved: 100,
				GithubRepos:            10,
			},
			want: 45.5,
		},
		{
			name:  "zero record",
			stats: model.UserStats{},
			want:  0,
		},
		{
			name:  "capped at 100",
			stats: model.UserStats{LeetcodeSolved: 800},
			want:  100,
		},
		{
			name:  "exactly at cap",
			stats: model.UserStats{LeetcodeSolved: 600, GfgSolved: 20, CodechefProblemsSolved: 40, GithubRepos: 20},
			want:  100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RankScore(&tt.stats), 1e-9)
		})
	}
}

func TestTotalSolved(t *testing.T) {
	stats := &model.UserStats{LeetcodeSolved: 10, GfgSolved: 20, CodechefProblemsSolved: 5, GithubRepos: 99}
	assert.Equal(t, 35, TotalSolved(stats))
}

func TestProblemSolvingLevel(t *testing.T) {
	tests := []struct {
		solved int
		want   string
	}{
		{0, LevelBeginner},
		{149, LevelBeginner},
		{150, LevelIntermediate},
		{499, LevelIntermediate},
		{500, LevelAdvanced},
		{799, LevelAdvanced},
		{800, LevelExpert},
		{1399, LevelExpert},
		{1400, LevelMaster},
		{5000, LevelMaster},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ProblemSolvingLevel(tt.solved), "solved=%d", tt.solved)
	}
}

func TestDeveloperLevel(t *testing.T) {
	tests := []struct {
		repos int
		want  string
	}{
		{0, LevelBeginner},
		{14, LevelBeginner},
		{15, LevelIntermediate},
		{17, LevelIntermediate},
		{18, LevelAdvanced},
		{29, LevelAdvanced},
		{30, LevelExpert},
		{49, LevelExpert},
		{50, LevelMaster},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeveloperLevel(tt.repos), "repos=%d", tt.repos)
	}
}
