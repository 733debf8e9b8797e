package platforms

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
)

// LeetcodeAdapter fetches solved counts, ranking and contribution points
// from a LeetCode stats endpoint.
type LeetcodeAdapter struct {
	baseURL string
	client  *http.Client
}

func NewLeetcodeAdapter(baseURL string, client *http.Client) *LeetcodeAdapter {
	return &LeetcodeAdapter{baseURL: baseURL, client: client}
}

// Fetch returns nil for an empty username or any fetch/parse failure.
func (a *LeetcodeAdapter) Fetch(ctx context.Context, username string) *model.LeetcodeStats {
	if username == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", a.baseURL, username), nil)
	if err != nil {
		log.Printf("[LeetCode] building request for %s: %v", username, err)
		return nil
	}

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("[LeetCode] fetching stats for %s: %v", username, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[LeetCode] unexpected status %d for %s", resp.StatusCode, username)
		return nil
	}

	var stats model.LeetcodeStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		log.Printf("[LeetCode] decoding stats for %s: %v", username, err)
		return nil
	}

	return &stats
}
