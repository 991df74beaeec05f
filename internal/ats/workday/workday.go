// Package workday scrapes one company's postings from the Workday cxs JSON
// API. The configured board URL (e.g. https://acme.wd5.myworkdayjobs.com/External)
// is parsed into tenant/site, then /wday/cxs/<tenant>/<site>/jobs is paged
// with POST requests.
package workday

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobscout-engine/internal/ats/atsutil"
	"jobscout-engine/internal/domain"
)

const pageSize = 20

// maxPages bounds pagination so a misbehaving tenant cannot stall a pass.
const maxPages = 25

type Scraper struct {
	company string
	board   board
	hc      *http.Client
	limiter *atsutil.HostLimiter
	log     *zap.Logger
}

type board struct {
	scheme string
	host   string
	tenant string
	site   string
}

func New(company, boardURL string, limiter *atsutil.HostLimiter, log *zap.Logger) (*Scraper, error) {
	b, err := parseBoardURL(boardURL)
	if err != nil {
		return nil, fmt.Errorf("workday board url: %w", err)
	}
	return &Scraper{
		company: company,
		board:   b,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
		log:     log,
	}, nil
}

func (s *Scraper) Provider() string { return "workday" }
func (s *Scraper) Company() string  { return s.company }

type searchRequest struct {
	AppliedFacets map[string]any `json:"appliedFacets"`
	Limit         int            `json:"limit"`
	Offset        int            `json:"offset"`
	SearchText    string         `json:"searchText"`
}

type searchResponse struct {
	Total       int       `json:"total"`
	JobPostings []wdEntry `json:"jobPostings"`
}

type wdEntry struct {
	Title         string `json:"title"`
	ExternalPath  string `json:"externalPath"`
	LocationsText string `json:"locationsText"`
}

type wdDetail struct {
	JobPostingInfo struct {
		Title          string `json:"title"`
		JobDescription string `json:"jobDescription"` // html
		Location       string `json:"location"`
		Remote         string `json:"remoteType"`
	} `json:"jobPostingInfo"`
}

func (s *Scraper) Scrape(ctx context.Context) []domain.ScrapedJob {
	jobs, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn("workday scrape failed",
			zap.String("company", s.company),
			zap.String("tenant", s.board.tenant),
			zap.Error(err))
		return nil
	}
	return jobs
}

func (s *Scraper) fetch(ctx context.Context) ([]domain.ScrapedJob, error) {
	var out []domain.ScrapedJob

	for page := 0; page < maxPages; page++ {
		res, err := s.searchPage(ctx, page*pageSize)
		if err != nil {
			return nil, err
		}
		for _, e := range res.JobPostings {
			if strings.TrimSpace(e.Title) == "" {
				continue
			}
			jobURL := s.board.jobURL(e.ExternalPath)
			descHTML, loc := s.detail(ctx, e.ExternalPath)
			if loc == "" {
				loc = e.LocationsText
			}
			out = append(out, atsutil.Canonicalize(s.company, e.Title, jobURL, descHTML, loc))
		}
		if (page+1)*pageSize >= res.Total || len(res.JobPostings) == 0 {
			break
		}
	}
	return out, nil
}

func (s *Scraper) searchPage(ctx context.Context, offset int) (*searchResponse, error) {
	endpoint := s.board.jobsEndpoint()

	body, _ := json.Marshal(searchRequest{
		AppliedFacets: map[string]any{},
		Limit:         pageSize,
		Offset:        offset,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "jobscout/1.0 (+local)")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, endpoint); err != nil {
			return nil, err
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("workday search: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("workday search status %d", res.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("workday decode: %w", err)
	}
	return &sr, nil
}

// detail fetches one posting's description. Failures degrade to empty
// fields; the listing-level data still makes a valid record.
func (s *Scraper) detail(ctx context.Context, externalPath string) (descHTML, loc string) {
	endpoint := s.board.detailEndpoint(externalPath)
	if endpoint == "" {
		return "", ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", ""
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "jobscout/1.0 (+local)")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, endpoint); err != nil {
			return "", ""
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		s.log.Debug("workday detail failed", zap.String("path", externalPath), zap.Error(err))
		return "", ""
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return "", ""
	}

	var d wdDetail
	if err := json.NewDecoder(res.Body).Decode(&d); err != nil {
		return "", ""
	}
	return d.JobPostingInfo.JobDescription, d.JobPostingInfo.Location
}

func parseBoardURL(raw string) (board, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return board{}, errors.New("empty board url")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return board{}, err
	}
	if u.Host == "" {
		return board{}, fmt.Errorf("missing host in %q", raw)
	}

	parts := strings.Split(u.Host, ".")
	if len(parts) < 3 {
		return board{}, fmt.Errorf("unexpected host %q", u.Host)
	}
	tenant := parts[0]

	segs := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segs) == 0 || segs[0] == "" {
		return board{}, fmt.Errorf("could not derive site from path %q", u.Path)
	}
	site := segs[len(segs)-1]

	return board{scheme: u.Scheme, host: u.Host, tenant: tenant, site: site}, nil
}

func (b board) jobsEndpoint() string {
	return fmt.Sprintf("%s://%s/wday/cxs/%s/%s/jobs", b.scheme, b.host, b.tenant, b.site)
}

func (b board) detailEndpoint(externalPath string) string {
	p := strings.TrimSpace(externalPath)
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return fmt.Sprintf("%s://%s/wday/cxs/%s/%s%s", b.scheme, b.host, b.tenant, b.site, p)
}

func (b board) jobURL(externalPath string) string {
	p := strings.TrimSpace(externalPath)
	if p == "" {
		return fmt.Sprintf("%s://%s/%s", b.scheme, b.host, b.site)
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return fmt.Sprintf("%s://%s%s", b.scheme, b.host, p)
}
