// Package smartrecruiters scrapes one company's postings from the public
// SmartRecruiters postings API (api.smartrecruiters.com/v1/companies/<slug>/postings).
// The listing endpoint carries no description, so each posting is followed
// by a detail fetch.
package smartrecruiters

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

const (
	defaultBaseURL = "https://api.smartrecruiters.com"
	pageSize       = 100
	maxPages       = 10
)

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
		hc:      &http.Client{Timeout: 25 * time.Second},
		limiter: limiter,
		log:     log,
		baseURL: defaultBaseURL,
	}
}

func (s *Scraper) Provider() string { return "smartrecruiters" }
func (s *Scraper) Company() string  { return s.company }

type postingsResponse struct {
	Content    []posting `json:"content"`
	TotalFound int       `json:"totalFound"`
}

type posting struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location struct {
		City    string `json:"city"`
		Region  string `json:"region"`
		Country string `json:"country"`
		Remote  bool   `json:"remote"`
	} `json:"location"`
}

type postingDetail struct {
	JobAd struct {
		Sections struct {
			JobDescription struct {
				Text string `json:"text"` // html
			} `json:"jobDescription"`
			Qualifications struct {
				Text string `json:"text"` // html
			} `json:"qualifications"`
		} `json:"sections"`
	} `json:"jobAd"`
}

func (s *Scraper) Scrape(ctx context.Context) []domain.ScrapedJob {
	jobs, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn("smartrecruiters scrape failed",
			zap.String("company", s.company),
			zap.String("slug", s.slug),
			zap.Error(err))
		return nil
	}
	return jobs
}

func (s *Scraper) fetch(ctx context.Context) ([]domain.ScrapedJob, error) {
	var out []domain.ScrapedJob

	for page := 0; page < maxPages; page++ {
		res, err := s.listPage(ctx, page*pageSize)
		if err != nil {
			return nil, err
		}
		for _, p := range res.Content {
			if p.ID == "" || strings.TrimSpace(p.Name) == "" {
				continue
			}
			descHTML := s.detail(ctx, p.ID)
			sj := atsutil.Canonicalize(
				s.company, p.Name, s.publicJobURL(p.ID), descHTML, formatLocation(p))
			if p.Location.Remote {
				sj.Remote = true
			}
			out = append(out, sj)
		}
		if (page+1)*pageSize >= res.TotalFound || len(res.Content) == 0 {
			break
		}
	}
	return out, nil
}

func (s *Scraper) listPage(ctx context.Context, offset int) (*postingsResponse, error) {
	apiURL := fmt.Sprintf("%s/v1/companies/%s/postings?limit=%d&offset=%d",
		s.baseURL, s.slug, pageSize, offset)

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
		return nil, fmt.Errorf("smartrecruiters get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("smartrecruiters status %d", res.StatusCode)
	}

	var pr postingsResponse
	if err := json.NewDecoder(res.Body).Decode(&pr); err != nil {
		return nil, fmt.Errorf("smartrecruiters decode: %w", err)
	}
	return &pr, nil
}

// detail fetches one posting's ad sections; failure degrades to an empty
// description.
func (s *Scraper) detail(ctx context.Context, id string) string {
	apiURL := fmt.Sprintf("%s/v1/companies/%s/postings/%s", s.baseURL, s.slug, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "jobscout/1.0 (+local)")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, apiURL); err != nil {
			return ""
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		s.log.Debug("smartrecruiters detail failed", zap.String("id", id), zap.Error(err))
		return ""
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return ""
	}

	var d postingDetail
	if err := json.NewDecoder(res.Body).Decode(&d); err != nil {
		return ""
	}
	return d.JobAd.Sections.JobDescription.Text + " " + d.JobAd.Sections.Qualifications.Text
}

func (s *Scraper) publicJobURL(id string) string {
	return fmt.Sprintf("https://jobs.smartrecruiters.com/%s/%s", s.slug, id)
}

func formatLocation(p posting) string {
	var parts []string
	for _, v := range []string{p.Location.City, p.Location.Region, p.Location.Country} {
		if strings.TrimSpace(v) != "" {
			parts = append(parts, strings.TrimSpace(v))
		}
	}
	return strings.Join(parts, ", ")
}
