package model

import "strings"

// UserProfile is the user document owned by the community user-management
// service. This engine only ever reads it.
type UserProfile struct {
	UID         string `bson:"_id" json:"uid"`
	Email       string `bson:"email" json:"email"`
	DisplayName string `bson:"displayName" json:"displayName"`
	Branch      string `bson:"branch" json:"branch"`
	Year        string `bson:"year" json:"year"`
	IsAdmin     bool   `bson:"isAdmin" json:"isAdmin"`

	LeetcodeURL   string `bson:"leetcodeUrl" json:"leetcodeUrl"`
	GfgURL        string `bson:"gfgUrl" json:"gfgUrl"`
	GithubURL     string `bson:"githubUrl" json:"githubUrl"`
	CodechefURL   string `bson:"codechefUrl" json:"codechefUrl"`
	HackerrankURL string `bson:"hackerrankUrl" json:"hackerrankUrl"`
}

// ErpID is the institutional id, derived from the email local part.
func (u *UserProfile) ErpID() string {
	at := strings.Index(u.Email, "@")
	if at < 0 {
		return u.Email
	}
	return u.Email[:at]
}
