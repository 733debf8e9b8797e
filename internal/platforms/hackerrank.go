package platforms

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
)

// HackerrankAdapter scrapes the contest rating badge from a HackerRank
// profile page.
type HackerrankAdapter struct {
	baseURL string
	client  *http.Client
}

func NewHackerrankAdapter(baseURL string, client *http.Client) *HackerrankAdapter {
	return &HackerrankAdapter{baseURL: baseURL, client: client}
}

// Fetch returns nil for an empty username or any fetch/parse failure.
func (a *HackerrankAdapter) Fetch(ctx context.Context, username string) *model.HackerrankStats {
	if username == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", a.baseURL, username), nil)
	if err != nil {
		log.Printf("[HackerRank] building request for %s: %v", username, err)
		return nil
	}

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("[HackerRank] fetching profile for %s: %v", username, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[HackerRank] unexpected status %d for %s", resp.StatusCode, username)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("[HackerRank] parsing profile for %s: %v", username, err)
		return nil
	}

	rating := firstInt(doc.Find("._3ABBR").First().Text())
	return &model.HackerrankStats{ContestRating: rating}
}
