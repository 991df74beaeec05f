package lever

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobscout-engine/internal/domain"
)

const postingsJSON = `[
  {
    "id": "abc-123",
    "text": "Senior Backend Engineer",
    "hostedUrl": "https://jobs.lever.co/acme/abc-123",
    "categories": {"location": "Remote - US"},
    "description": "<p>Build services.</p><p>Requirements: Node.js, PostgreSQL, REST APIs.</p>"
  },
  {
    "id": "",
    "text": "Ignored: no id",
    "hostedUrl": "https://jobs.lever.co/acme/nope"
  }
]`

func TestScrapeParsesPostings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/postings/acme", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(postingsJSON))
	}))
	defer srv.Close()

	s := New("Acme", "acme", nil, zap.NewNop())
	s.baseURL = srv.URL

	jobs := s.Scrape(context.Background())
	require.Len(t, jobs, 1)

	j := jobs[0]
	assert.Equal(t, "Acme", j.Company)
	assert.Equal(t, "Senior Backend Engineer", j.Title)
	assert.Equal(t, "https://jobs.lever.co/acme/abc-123", j.URL)
	assert.NotContains(t, j.Description, "<p>", "markup must be stripped")
	assert.Contains(t, j.Requirements, "Requirements:")
	assert.Contains(t, j.TechStack, "postgresql")
	assert.True(t, j.Remote)
	assert.Equal(t, domain.Fingerprint("Acme", "Senior Backend Engineer"), j.Fingerprint)
}

func TestScrapeSwallowsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	s := New("Acme", "acme", nil, zap.NewNop())
	s.baseURL = srv.URL

	assert.Empty(t, s.Scrape(context.Background()))
}
