package ashby

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

const boardJSON = `{
  "jobs": [
    {
      "title": "Staff Platform Engineer",
      "location": "New York",
      "isRemote": true,
      "jobUrl": "https://jobs.ashbyhq.com/acme/xyz-1",
      "descriptionHtml": "<h2>About</h2><p>Run our Kubernetes platform.</p><h2>Requirements</h2><p>Terraform, AWS, Go.</p>"
    },
    {
      "title": "   ",
      "jobUrl": "https://jobs.ashbyhq.com/acme/blank"
    }
  ]
}`

func TestScrapeParsesBoard(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posting-api/job-board/acme", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(boardJSON))
	}))
	defer srv.Close()

	s := New("Acme", "acme", nil, zap.NewNop())
	s.baseURL = srv.URL

	jobs := s.Scrape(context.Background())
	require.Len(t, jobs, 1)

	j := jobs[0]
	assert.Equal(t, "Staff Platform Engineer", j.Title)
	assert.Equal(t, "https://jobs.ashbyhq.com/acme/xyz-1", j.URL)
	assert.NotContains(t, j.Description, "<h2>")
	assert.Contains(t, j.Requirements, "Requirements")
	assert.Contains(t, j.TechStack, "terraform")
	assert.True(t, j.Remote, "isRemote from the API wins even without remote text")
	assert.Equal(t, domain.Fingerprint("Acme", "Staff Platform Engineer"), j.Fingerprint)
}

func TestScrapeSwallowsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	s := New("Acme", "acme", nil, zap.NewNop())
	s.baseURL = srv.URL

	assert.Empty(t, s.Scrape(context.Background()))
}
