package model

import (
	"fmt"
	"strconv"
	"strings"
)

// MonthKey identifies one calendar month of the leaderboard. Months are
// 1-12 (time.Month numbering).
type MonthKey struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// DocumentID is the snapshot document id, e.g. "2026-9".
func (k MonthKey) DocumentID() string {
	return fmt.Sprintf("%d-%d", k.Year, k.Month)
}

// ParseMonthKey parses a "{year}-{month}" document id.
func ParseMonthKey(id string) (MonthKey, error) {
	parts := strings.SplitN(id, "-", 2)
	if len(parts) != 2 {
		return MonthKey{}, fmt.Errorf("invalid month key %q", id)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return MonthKey{}, fmt.Errorf("invalid year in month key %q", id)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return MonthKey{}, fmt.Errorf("invalid month in month key %q", id)
	}
	return MonthKey{Year: year, Month: month}, nil
}

// MonthlyUserStats is one ranked row of a monthly snapshot: the user's
// profile and stats flattened together with the derived score, levels and
// positions.
type MonthlyUserStats struct {
	UserProfile `bson:",inline" json:",inline"`

	Stats UserStats `bson:"stats" json:"stats"`

	TotalSolved         int     `bson:"totalSolved" json:"totalSolved"`
	RankScore           float64 `bson:"rankScore" json:"rankScore"`
	ProblemSolvingLevel string  `bson:"problemSolvingLevel" json:"problemSolvingLevel"`
	DeveloperLevel      string  `bson:"developerLevel" json:"developerLevel"`

	Position         int  `bson:"position" json:"position"`
	PreviousPosition *int `bson:"previousPosition" json:"previousPosition"`
}

// MonthlyLeaderboard is the snapshot document for one (year, month) pair.
// The current month's document is overwritten on every refresh cycle;
// documents for elapsed months are never touched again.
type MonthlyLeaderboard struct {
	ID          string             `bson:"_id" json:"id"`
	Month       int                `bson:"month" json:"month"`
	Year        int                `bson:"year" json:"year"`
	GeneratedAt int64              `bson:"generatedAt" json:"generatedAt"` // epoch millis
	Users       []MonthlyUserStats `bson:"users" json:"users"`
}

// Key returns the snapshot's MonthKey.
func (lb *MonthlyLeaderboard) Key() MonthKey {
	return MonthKey{Year: lb.Year, Month: lb.Month}
}

// PositionOf returns the position of a user in the snapshot, or 0 if the
// user is not ranked in it.
func (lb *MonthlyLeaderboard) PositionOf(uid string) int {
	for i := range lb.Users {
		if lb.Users[i].UID == uid {
			return lb.Users[i].Position
		}
	}
	return 0
}
