package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
)

// GFGAdapter fetches total solved, score, rating and the per-difficulty
// breakdown from a GeeksforGeeks stats endpoint.
type GFGAdapter struct {
	baseURL string
	client  *http.Client
}

func NewGFGAdapter(baseURL string, client *http.Client) *GFGAdapter {
	return &GFGAdapter{baseURL: baseURL, client: client}
}

// Fetch returns nil for an empty username or any fetch/parse failure.
func (a *GFGAdapter) Fetch(ctx context.Context, username string) *model.GFGStats {
	if username == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s?raw=true", a.baseURL, username), nil)
	if err != nil {
		log.Printf("[GFG] building request for %s: %v", username, err)
		return nil
	}

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("[GFG] fetching stats for %s: %v", username, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[GFG] unexpected status %d for %s", resp.StatusCode, username)
		return nil
	}

	var stats model.GFGStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		log.Printf("[GFG] decoding stats for %s: %v", username, err)
		return nil
	}

	return &stats
}
