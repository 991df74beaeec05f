package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jobscout-engine/internal/aggregate"
	"jobscout-engine/internal/ats/atsutil"
	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/engine"
	"jobscout-engine/internal/events"
	"jobscout-engine/internal/match"
	"jobscout-engine/internal/store"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	log := zap.NewNop()
	runner := aggregate.NewRunner(st, atsutil.NewHostLimiter(10, 10), log)
	eng := engine.New(st, runner, match.NewKeywordMatcher(match.DefaultRegistry()), log)
	hub := events.NewHub()

	mux := NewMux(Deps{Engine: eng, Hub: hub, Log: log})
	srv := httptest.NewServer(Chain(mux, RequestID, Recover(log)))
	t.Cleanup(srv.Close)
	return srv, st
}

func addJob(t *testing.T, st *store.Store, company, title, desc string) int64 {
	t.Helper()
	id, err := st.AddJob(context.Background(), domain.ScrapedJob{
		Company:     company,
		Title:       title,
		Description: desc,
		Fingerprint: domain.Fingerprint(company, title),
	})
	require.NoError(t, err)
	return id
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func postJSON(t *testing.T, url, body string, out any) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	var body map[string]any
	resp := getJSON(t, srv.URL+"/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.NotEmpty(t, body["time"])
}

func TestListJobsEmptyIsArray(t *testing.T) {
	srv, _ := newTestServer(t)
	var jobs []domain.Job
	resp := getJSON(t, srv.URL+"/jobs", &jobs)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, jobs)
	assert.Empty(t, jobs)
}

func TestListJobsWithFilter(t *testing.T) {
	srv, st := newTestServer(t)
	addJob(t, st, "Acme", "Backend Engineer", "")
	addJob(t, st, "Globex", "SRE", "")

	var jobs []domain.Job
	getJSON(t, srv.URL+"/jobs?company=Acme", &jobs)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme", jobs[0].Company)
}

func TestGetJobNotFound(t *testing.T) {
	srv, _ := newTestServer(t)
	var e APIError
	resp := getJSON(t, srv.URL+"/jobs/9999", &e)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "job_not_found", e.Error.Code)
}

func TestPatchJobStatusAndNotes(t *testing.T) {
	srv, st := newTestServer(t)
	id := addJob(t, st, "Acme", "Backend Engineer", "")

	req, err := http.NewRequest(http.MethodPatch,
		srv.URL+"/jobs/"+strconv.FormatInt(id, 10),
		strings.NewReader(`{"status":"applied","notes":"phone screen friday"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var job domain.Job
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&job))
	assert.Equal(t, domain.StatusApplied, job.Status)
	assert.Equal(t, "phone screen friday", job.Notes)
}

func TestPatchJobRejectsUnknownStatus(t *testing.T) {
	srv, st := newTestServer(t)
	id := addJob(t, st, "Acme", "Backend Engineer", "")

	req, err := http.NewRequest(http.MethodPatch,
		srv.URL+"/jobs/"+strconv.FormatInt(id, 10),
		strings.NewReader(`{"status":"bogus"}`))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyzeSkills(t *testing.T) {
	srv, _ := newTestServer(t)
	var out match.SkillExtraction
	resp := postJSON(t, srv.URL+"/analyze/skills",
		`{"text":"We use Go, Kubernetes and PostgreSQL in production."}`, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, out.Skills)
}

func TestAnalyzeDomains(t *testing.T) {
	srv, _ := newTestServer(t)
	var out struct {
		Domains []string `json:"domains"`
	}
	resp := postJSON(t, srv.URL+"/analyze/domains",
		`{"title":"Backend Engineer","description":"Build REST APIs on PostgreSQL and Redis with Go microservices."}`, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, out.Domains, "backend-engineering")
}

func TestAnalyzeJobPersistsScore(t *testing.T) {
	srv, st := newTestServer(t)
	id := addJob(t, st, "Acme", "Backend Engineer",
		"Build REST APIs on PostgreSQL and Redis with Go microservices.")

	var out engine.JobAnalysis
	resp := postJSON(t, srv.URL+"/jobs/"+strconv.FormatInt(id, 10)+"/analyze",
		`{"cv_text":"Senior backend engineer. Go, PostgreSQL, REST APIs, microservices, Redis.","user_domains":[]}`, &out)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, id, out.JobID)
	assert.Greater(t, out.Alignment.Score, 0)

	stored, err := st.GetJob(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, out.Alignment.Score, stored.AlignmentScore)
}

func TestAnalyzeRejectsUnknownFields(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := postJSON(t, srv.URL+"/analyze/skills", `{"txet":"typo"}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := postJSON(t, srv.URL+"/health", `{}`, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

