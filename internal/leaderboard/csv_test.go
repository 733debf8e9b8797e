package leaderboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
)

func TestExportSnapshotCSV(t *testing.T) {
	lb := &model.MonthlyLeaderboard{
		ID:    "2026-9",
		Month: 9,
		Year:  2026,
		Users: []model.MonthlyUserStats{
			{
				UserProfile: model.UserProfile{
					UID:         "u1",
					Email:       "1032230001@example.edu",
					DisplayName: "Asha",
					Branch:      "CSE",
					Year:        "3",
				},
				Stats: model.UserStats{
					LeetcodeSolved:         300,
					GfgSolved:              150,
					CodechefProblemsSolved: 50,
					GithubRepos:            22,
				},
				RankScore:           76.1,
				DeveloperLevel:      "Advanced",
				ProblemSolvingLevel: "Advanced",
				Position:            1,
			},
			{
				UserProfile: model.UserProfile{
					UID:         "u2",
					Email:       "1032230002@example.edu",
					DisplayName: "Dev, Jr.",
					Branch:      "ECE",
					Year:        "2",
				},
				Stats:               model.UserStats{LeetcodeSolved: 40},
				RankScore:           6,
				DeveloperLevel:      "Beginner",
				ProblemSolvingLevel: "Beginner",
				Position:            2,
			},
		},
	}

	out := ExportSnapshotCSV(lb)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Rank,Name,Year,Branch,ERP ID,Developer Level,Problem Solving,Github Repo,GFG Solved Question,LeetCode Solved Question,Codechef Questions,Score", lines[0])
	assert.Equal(t, "1,Asha,3,CSE,1032230001,Advanced,Advanced,22,150,300,50,76.10", lines[1])
	assert.Equal(t, `2,"Dev, Jr.",2,ECE,1032230002,Beginner,Beginner,0,0,40,0,6.00`, lines[2])
}

func TestExportSnapshotCSV_EmptySnapshotIsHeaderOnly(t *testing.T) {
	out := ExportSnapshotCSV(&model.MonthlyLeaderboard{ID: "2026-1", Month: 1, Year: 2026})
	assert.False(t, strings.Contains(out, "\n"))
	assert.True(t, strings.HasPrefix(out, "Rank,"))
}

func TestCSVEscape(t *testing.T) {
	assert.Equal(t, "plain", csvEscape("plain"))
	assert.Equal(t, `"a,b"`, csvEscape("a,b"))
	assert.Equal(t, `"say ""hi"""`, csvEscape(`say "hi"`))
}
