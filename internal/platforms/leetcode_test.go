package platforms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeetcodeAdapter_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/johndoe", r.URL.Path)
		w.Write([]byte(`{
			"totalSolved": 412,
			"easySolved": 200,
			"mediumSolved": 180,
			"hardSolved": 32,
			"acceptanceRate": 63.5,
			"ranking": 52344,
			"contributionPoints": 1200
		}`))
	}))
	defer server.Close()

	adapter := NewLeetcodeAdapter(server.URL, server.Client())
	stats := adapter.Fetch(context.Background(), "johndoe")

	require.NotNil(t, stats)
	assert.Equal(t, 412, stats.TotalSolved)
	assert.Equal(t, 200, stats.EasySolved)
	assert.Equal(t, 180, stats.MediumSolved)
	assert.Equal(t, 32, stats.HardSolved)
	assert.Equal(t, 63.5, stats.AcceptanceRate)
	assert.Equal(t, 52344, stats.Ranking)
	assert.Equal(t, 1200, stats.ContributionPoints)
}

func TestLeetcodeAdapter_MissingFieldsDefaultToZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalSolved": 10}`))
	}))
	defer server.Close()

	adapter := NewLeetcodeAdapter(server.URL, server.Client())
	stats := adapter.Fetch(context.Background(), "johndoe")

	require.NotNil(t, stats)
	assert.Equal(t, 10, stats.TotalSolved)
	assert.Equal(t, 0, stats.HardSolved)
	assert.Equal(t, 0, stats.Ranking)
}

func TestLeetcodeAdapter_EmptyUsername(t *testing.T) {
	adapter := NewLeetcodeAdapter("http://unused", http.DefaultClient)
	assert.Nil(t, adapter.Fetch(context.Background(), ""))
}

func TestLeetcodeAdapter_Non200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	adapter := NewLeetcodeAdapter(server.URL, server.Client())
	assert.Nil(t, adapter.Fetch(context.Background(), "ghost"))
}

func TestLeetcodeAdapter_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>rate limited</html>`))
	}))
	defer server.Close()

	adapter := NewLeetcodeAdapter(server.URL, server.Client())
	assert.Nil(t, adapter.Fetch(context.Background(), "johndoe"))
}

func TestLeetcodeAdapter_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	adapter := NewLeetcodeAdapter(server.URL, server.Client())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.Nil(t, adapter.Fetch(ctx, "johndoe"))
}
