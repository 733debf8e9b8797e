package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
)

// GithubAdapter fetches the public repository count from the GitHub users
// API. An API token is optional; without one the unauthenticated rate
// limit applies.
type GithubAdapter struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewGithubAdapter(baseURL, token string, client *http.Client) *GithubAdapter {
	return &GithubAdapter{baseURL: baseURL, token: token, client: client}
}

// Fetch returns nil for an empty username or any fetch/parse failure.
func (a *GithubAdapter) Fetch(ctx context.Context, username string) *model.GithubStats {
	if username == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", a.baseURL, username), nil)
	if err != nil {
		log.Printf("[GitHub] building request for %s: %v", username, err)
		return nil
	}
	req.Header.Set("User-Agent", "Crevo")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("[GitHub] fetching profile for %s: %v", username, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[GitHub] unexpected status %d for %s", resp.StatusCode, username)
		return nil
	}

	var stats model.GithubStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		log.Printf("[GitHub] decoding profile for %s: %v", username, err)
		return nil
	}

	return &stats
}
