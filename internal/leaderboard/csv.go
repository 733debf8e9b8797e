package leaderboard

import (
	"fmt"
	"strings"

	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
)

// csvHeader column order is fixed; downstream spreadsheets depend on it.
var csvHeader = []string{
	"Rank",
	"Name",
	"Year",
	"Branch",
	"ERP ID",
	"Developer Level",
	"Problem Solving",
	"Github Repo",
	"GFG Solved Question",
	"LeetCode Solved Question",
	"Codechef Questions",
	"Score",
}

// ExportSnapshotCSV renders a snapshot as CSV, one row per ranked user.
// Pure formatting, no I/O.
func ExportSnapshotCSV(lb *model.MonthlyLeaderboard) string {
	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))

	for _, user := range lb.Users {
		row := []string{
			fmt.Sprintf("%d", user.Position),
			csvEscape(user.DisplayName),
			csvEscape(user.Year),
			csvEscape(user.Branch),
			csvEscape(user.ErpID()),
			user.DeveloperLevel,
			user.ProblemSolvingLevel,
			fmt.Sprintf("%d", user.Stats.GithubRepos),
			fmt.Sprintf("%d", user.Stats.GfgSolved),
			fmt.Sprintf("%d", user.Stats.LeetcodeSolved),
			fmt.Sprintf("%d", user.Stats.CodechefProblemsSolved),
			fmt.Sprintf("%.2f", user.RankScore),
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(row, ","))
	}

	return b.String()
}

// csvEscape quotes a field containing separators or quotes.
func csvEscape(field string) string {
	if !strings.ContainsAny(field, ",\"\n") {
		return field
	}
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
