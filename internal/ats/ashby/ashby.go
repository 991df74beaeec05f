// Package ashby scrapes one company's postings from the public Ashby
// job-board API (api.ashbyhq.com/posting-api/job-board/<slug>).
package ashby

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"jobscout-engine/internal/ats/atsutil"
	"jobscout-engine/internal/domain"
)

const defaultBaseURL = "https://api.ashbyhq.com"

type Scraper struct {
	company string
	slug    string
	hc      *http.Client
	limiter *atsutil.HostLimiter
	log     *zap.Logger
	baseURL string
}

func New(company, slug string, limiter *atsutil.HostLimiter, log *zap.Logger) *Scraper {
	return &Scraper{
		company: company,
		slug:    slug,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
		log:     log,
		baseURL: defaultBaseURL,
	}
}

func (s *Scraper) Provider() string { return "ashby" }
func (s *Scraper) Company() string  { return s.company }

type boardResponse struct {
	Jobs []posting `json:"jobs"`
}

type posting struct {
	Title           string `json:"title"`
	Location        string `json:"location"`
	IsRemote        bool   `json:"isRemote"`
	JobURL          string `json:"jobUrl"`
	DescriptionHTML string `json:"descriptionHtml"`
}

func (s *Scraper) Scrape(ctx context.Context) []domain.ScrapedJob {
	jobs, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn("ashby scrape failed",
			zap.String("company", s.company),
			zap.String("slug", s.slug),
			zap.Error(err))
		return nil
	}
	return jobs
}

func (s *Scraper) fetch(ctx context.Context) ([]domain.ScrapedJob, error) {
	apiURL := fmt.Sprintf("%s/posting-api/job-board/%s?includeCompensation=false", s.baseURL, s.slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "jobscout/1.0 (+local)")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, apiURL); err != nil {
			return nil, err
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ashby get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("ashby status %d", res.StatusCode)
	}

	var br boardResponse
	if err := json.NewDecoder(res.Body).Decode(&br); err != nil {
		return nil, fmt.Errorf("ashby decode: %w", err)
	}

	out := make([]domain.ScrapedJob, 0, len(br.Jobs))
	for _, p := range br.Jobs {
		if strings.TrimSpace(p.Title) == "" {
			continue
		}
		sj := atsutil.Canonicalize(s.company, p.Title, p.JobURL, p.DescriptionHTML, p.Location)
		// Ashby reports remote explicitly; trust it over the text heuristic.
		if p.IsRemote {
			sj.Remote = true
		}
		out = append(out, sj)
	}
	return out, nil
}
