package platforms

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/crevo-hub/LeaderboardEngineService/internal/model"
)

var digitsRe = regexp.MustCompile(`\d+`)

// firstInt extracts the first run of digits from a scraped text node.
func firstInt(s string) int {
	match := digitsRe.FindString(s)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}

// CodechefAdapter scrapes contest rating, contests attended and total
// problems solved from a CodeChef profile page. Profile pages have no
// stats API, so this parses the rendered HTML.
type CodechefAdapter struct {
	baseURL string
	client  *http.Client
}

func NewCodechefAdapter(baseURL string, client *http.Client) *CodechefAdapter {
	return &CodechefAdapter{baseURL: baseURL, client: client}
}

// Fetch returns nil for an empty username or any fetch/parse failure.
func (a *CodechefAdapter) Fetch(ctx context.Context, username string) *model.CodechefStats {
	if username == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s", a.baseURL, username), nil)
	if err != nil {
		log.Printf("[CodeChef] building request for %s: %v", username, err)
		return nil
	}

	resp, err := a.client.Do(req)
	if err != nil {
		log.Printf("[CodeChef] fetching profile for %s: %v", username, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[CodeChef] unexpected status %d for %s", resp.StatusCode, username)
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("[CodeChef] parsing profile for %s: %v", username, err)
		return nil
	}

	stats := &model.CodechefStats{
		ContestRating:    firstInt(doc.Find(".rating-number").First().Text()),
		ContestsAttended: firstInt(doc.Find(".contest-participated-count").First().Text()),
	}

	doc.Find(".problems-solved h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(sel.Text(), "Total Problems Solved") {
			stats.ProblemsSolved = firstInt(sel.Text())
			return false
		}
		return true
	})

	return stats
}
