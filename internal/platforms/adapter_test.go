package platforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractUsername(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"plain profile", "https://leetcode.com/johndoe", "johndoe"},
		{"trailing slash", "https://leetcode.com/u/johndoe/", "johndoe"},
		{"nested path", "https://www.codechef.com/users/chef_jane", "chef_jane"},
		{"query string ignored", "https://auth.geeksforgeeks.org/user/jane?tab=practice", "jane"},
		{"empty url", "", ""},
		{"no path", "https://github.com", ""},
		{"malformed", "::not-a-url::", ""},
		{"bare string", "johndoe", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractUsername(tc.url))
		})
	}
}
