// Package lever scrapes one company's postings from the public Lever
// postings API (api.lever.co/v0/postings/<slug>?mode=json).
package lever

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

const defaultBaseURL = "https://api.lever.co"

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

func (s *Scraper) Provider() string { return "lever" }
func (s *Scraper) Company() string  { return s.company }

type posting struct {
	ID         string `json:"id"`
	Text       string `json:"text"` // title
	HostedURL  string `json:"hostedUrl"`
	Categories struct {
		Location   string `json:"location"`
		Commitment string `json:"commitment"`
	} `json:"categories"`
	Description string `json:"description"` // html
}

func (s *Scraper) Scrape(ctx context.Context) []domain.ScrapedJob {
	jobs, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn("lever scrape failed",
			zap.String("company", s.company),
			zap.String("slug", s.slug),
			zap.Error(err))
		return nil
	}
	return jobs
}

func (s *Scraper) fetch(ctx context.Context) ([]domain.ScrapedJob, error) {
	apiURL := fmt.Sprintf("%s/v0/postings/%s?mode=json", s.baseURL, s.slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "jobscout/1.0 (+local)")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, apiURL); err != nil {
			return nil, err
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lever get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("lever status %d", res.StatusCode)
	}

	var postings []posting
	if err := json.NewDecoder(res.Body).Decode(&postings); err != nil {
		return nil, fmt.Errorf("lever decode: %w", err)
	}

	out := make([]domain.ScrapedJob, 0, len(postings))
	for _, p := range postings {
		if p.ID == "" || strings.TrimSpace(p.Text) == "" {
			continue
		}
		out = append(out, atsutil.Canonicalize(
			s.company, p.Text, p.HostedURL, p.Description, p.Categories.Location))
	}
	return out, nil
}
