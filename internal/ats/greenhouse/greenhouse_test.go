package greenhouse

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBoardServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/acme", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body>
<div class="opening">
  <a href="/acme/jobs/100">Platform Engineer</a>
  <span class="location">Berlin, Germany</span>
</div>
<div class="opening">
  <a href="/acme/jobs/101">Data Engineer</a>
  <span class="location">Remote</span>
</div>
<a href="/acme/jobs/100">View opening</a>
</body></html>`)
	})
	mux.HandleFunc("/acme/jobs/100", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body><div class="location">Berlin, Germany</div>
<div id="content"><p>We run Kubernetes on AWS.</p>
<p>Requirements: Terraform and Go experience.</p></div></body></html>`)
	})
	mux.HandleFunc("/acme/jobs/101", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><body><div class="location">Remote</div>
<div id="content"><p>Airflow pipelines into Snowflake.</p></div></body></html>`)
	})
	return srv
}

func TestScrapeParsesBoardAndHydrates(t *testing.T) {
	srv := newBoardServer(t)

	s := New("Acme", "acme", nil, zap.NewNop())
	s.baseURL = srv.URL

	jobs := s.Scrape(context.Background())
	require.Len(t, jobs, 2)

	byTitle := map[string]int{}
	for i, j := range jobs {
		byTitle[j.Title] = i
	}
	require.Contains(t, byTitle, "Platform Engineer")
	require.Contains(t, byTitle, "Data Engineer")

	pe := jobs[byTitle["Platform Engineer"]]
	assert.Equal(t, "Berlin, Germany", pe.Location)
	assert.False(t, pe.Remote)
	assert.Contains(t, pe.Description, "Kubernetes")
	assert.Contains(t, pe.Requirements, "Requirements:")
	assert.Contains(t, pe.TechStack, "terraform")

	de := jobs[byTitle["Data Engineer"]]
	assert.True(t, de.Remote)
	assert.Contains(t, de.TechStack, "airflow")
}

func TestScrapeSkipsJunkAnchors(t *testing.T) {
	srv := newBoardServer(t)

	s := New("Acme", "acme", nil, zap.NewNop())
	s.baseURL = srv.URL

	for _, j := range s.Scrape(context.Background()) {
		assert.NotContains(t, j.Title, "View")
	}
}

func TestScrapeReturnsEmptyOnBoardFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	s := New("Acme", "acme", nil, zap.NewNop())
	s.baseURL = srv.URL

	assert.Empty(t, s.Scrape(context.Background()))
}
