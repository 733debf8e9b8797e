package model

// Per-platform payloads returned by the adapters. An adapter returns nil
// for a user it could not resolve; every field then falls back to zero
// when merged into UserStats.

type LeetcodeStats struct {
	TotalSolved        int     `json:"totalSolved"`
	EasySolved         int     `json:"easySolved"`
	MediumSolved       int     `json:"mediumSolved"`
	HardSolved         int     `json:"hardSolved"`
	AcceptanceRate     float64 `json:"acceptanceRate"`
	Ranking            int     `json:"ranking"`
	ContributionPoints int     `json:"contributionPoints"`
}

type GFGStats struct {
	TotalProblemsSolved int `json:"total_problems_solved"`
	TotalScore          int `json:"total_score"`
	CurrentRating       int `json:"current_rating"`
	Basic               int `json:"Basic"`
	Easy                int `json:"Easy"`
	Medium              int `json:"Medium"`
	Hard                int `json:"Hard"`
}

type GithubStats struct {
	PublicRepos int `json:"public_repos"`
}

type CodechefStats struct {
	ContestRating    int `json:"contestRating"`
	ContestsAttended int `json:"numberOfContestAttended"`
	ProblemsSolved   int `json:"problemsSolved"`
}

type HackerrankStats struct {
	ContestRating int `json:"contestRating"`
}

// UserStats is the merged per-user statistics document, one per user,
// keyed by the user's UID. The record is always fully populated: a missing
// platform username or a failed fetch contributes zeroes, never absent
// fields.
type UserStats struct {
	UID         string `bson:"_id" json:"uid"`
	LastUpdated int64  `bson:"lastUpdated" json:"lastUpdated"` // epoch millis

	LeetcodeSolved             int     `bson:"leetcodeSolved" json:"leetcodeSolved"`
	LeetcodeEasySolved         int     `bson:"leetcodeEasySolved" json:"leetcodeEasySolved"`
	LeetcodeMediumSolved       int     `bson:"leetcodeMediumSolved" json:"leetcodeMediumSolved"`
	LeetcodeHardSolved         int     `bson:"leetcodeHardSolved" json:"leetcodeHardSolved"`
	LeetcodeAcceptanceRate     float64 `bson:"leetcodeAcceptanceRate" json:"leetcodeAcceptanceRate"`
	LeetcodeRanking            int     `bson:"leetcodeRanking" json:"leetcodeRanking"`
	LeetcodeContributionPoints int     `bson:"leetcodeContributionPoints" json:"leetcodeContributionPoints"`

	GfgSolved        int `bson:"gfgSolved" json:"gfgSolved"`
	GfgScore         int `bson:"gfgScore" json:"gfgScore"`
	GfgCurrentRating int `bson:"gfgCurrentRating" json:"gfgCurrentRating"`
	GfgBasic         int `bson:"gfgBasic" json:"gfgBasic"`
	GfgEasy          int `bson:"gfgEasy" json:"gfgEasy"`
	GfgMedium        int `bson:"gfgMedium" json:"gfgMedium"`
	GfgHard          int `bson:"gfgHard" json:"gfgHard"`

	GithubRepos int `bson:"githubRepos" json:"githubRepos"`

	CodechefRating          int `bson:"codechefRating" json:"codechefRating"`
	CodechefContestAttended int `bson:"codechefContestAttended" json:"codechefContestAttended"`
	CodechefProblemsSolved  int `bson:"codechefProblemsSolved" json:"codechefProblemsSolved"`

	HackerrankRating int `bson:"hackerrankRating" json:"hackerrankRating"`
}

// MergeStats assembles a fully populated UserStats from whatever the
// adapters managed to fetch. Nil payloads contribute zero values.
func MergeStats(uid string, now int64, lc *LeetcodeStats, gfg *GFGStats, gh *GithubStats, cc *CodechefStats, hr *HackerrankStats) UserStats {
	stats := UserStats{UID: uid, LastUpdated: now}

	if lc != nil {
		stats.LeetcodeSolved = lc.TotalSolved
		stats.LeetcodeEasySolved = lc.EasySolved
		stats.LeetcodeMediumSolved = lc.MediumSolved
		stats.LeetcodeHardSolved = lc.HardSolved
		stats.LeetcodeAcceptanceRate = lc.AcceptanceRate
		stats.LeetcodeRanking = lc.Ranking
		stats.LeetcodeContributionPoints = lc.ContributionPoints
	}
	if gfg != nil {
		stats.GfgSolved = gfg.TotalProblemsSolved
		stats.GfgScore = gfg.TotalScore
		stats.GfgCurrentRating = gfg.CurrentRating
		stats.GfgBasic = gfg.Basic
		stats.GfgEasy = gfg.Easy
		stats.GfgMedium = gfg.Medium
		stats.GfgHard = gfg.Hard
	}
	if gh != nil {
		stats.GithubRepos = gh.PublicRepos
	}
	if cc != nil {
		stats.CodechefRating = cc.ContestRating
		stats.CodechefContestAttended = cc.ContestsAttended
		stats.CodechefProblemsSolved = cc.ProblemsSolved
	}
	if hr != nil {
		stats.HackerrankRating = hr.ContestRating
	}

	return stats
}
