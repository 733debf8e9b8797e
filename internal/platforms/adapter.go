// Package platforms contains one adapter per external coding platform.
// Each adapter turns a bare username into a normalized stats payload.
// Adapters never return errors: any network failure, non-2xx status or
// parse failure is logged and surfaces as a nil payload, which the
// aggregator coerces to zero-valued statistics.
package platforms

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ExtractUsername pulls the platform username out of a stored profile URL:
// the final non-empty path segment. Returns "" for an absent or malformed
// URL, which the adapters treat as "no account on this platform".
func ExtractUsername(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	segments := strings.Split(parsed.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

// NewHTTPClient builds the client shared by the adapters. The timeout
// bounds a whole fetch so one slow platform cannot stall a user's
// pipeline.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
