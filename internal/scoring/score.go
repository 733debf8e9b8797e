// Package scoring holds the pure ranking functions. No I/O, deterministic.
package scoring

import "github.com/crevo-hub/LeaderboardEngineService/internal/model"

// Level names shared by both categorical scales.
const (
	LevelMaster       = "Master"
	LevelExpert       = "Expert"
	LevelAdvanced     = "Advanced"
	LevelIntermediate = "Intermediate"
	LevelBeginner     = "Beginner"
)

// Problem solving is weighted over repository count; the cap bounds
// outliers to a fixed scale.
const (
	solvedWeight = 0.15
	repoWeight   = 0.05
	maxRankScore = 100.0
)

// RankScore maps a stats record to the composite score in [0, 100].
func RankScore(stats *model.UserStats) float64 {
	score := float64(stats.LeetcodeSolved)*solvedWeight +
		float64(stats.GfgSolved)*solvedWeight +
		float64(stats.CodechefProblemsSolved)*solvedWeight +
		float64(stats.GithubRepos)*repoWeight
	if score > maxRankScore {
		return maxRankScore
	}
	return score
}

// TotalSolved sums the solved counts of the three problem-solving
// platforms.
func TotalSolved(stats *model.UserStats) int {
	return stats.LeetcodeSolved + stats.GfgSolved + stats.CodechefProblemsSolved
}

// ProblemSolvingLevel buckets a total solved count. Boundaries are
// inclusive on the lower bound of each tier.
func ProblemSolvingLevel(totalSolved int) string {
	switch {
	case totalSolved >= 1400:
		return LevelMaster
	case totalSolved >= 800:
		return LevelExpert
	case totalSolved >= 500:
		return LevelAdvanced
	case totalSolved >= 150:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// DeveloperLevel buckets a public repository count.
func DeveloperLevel(repos int) string {
	switch {
	case repos >= 50:
		return LevelMaster
	case repos >= 30:
		return LevelExpert
	case repos >= 18:
		return LevelAdvanced
	case repos >= 15:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}
