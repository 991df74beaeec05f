// Package greenhouse scrapes one company's board from the public Greenhouse
// HTML board (boards.greenhouse.io/<slug>). Greenhouse board markup varies
// by theme, so listing and detail parsing work through ordered fallback
// selectors.
package greenhouse

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"jobscout-engine/internal/ats/atsutil"
	"jobscout-engine/internal/domain"
)

const defaultBaseURL = "https://boards.greenhouse.io"

// locationSelectors are tried in order on a job detail page.
var locationSelectors = []string{
	".location",
	".job__location",
	"[data-testid='job-location']",
	"[data-testid='location']",
}

// descriptionSelectors are tried in order on a job detail page.
var descriptionSelectors = []string{
	"#content",
	".job__description",
	"[data-testid='job-description']",
	"main",
}

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

func (s *Scraper) Provider() string { return "greenhouse" }
func (s *Scraper) Company() string  { return s.company }

func (s *Scraper) Scrape(ctx context.Context) []domain.ScrapedJob {
	jobs, err := s.fetch(ctx)
	if err != nil {
		s.log.Warn("greenhouse scrape failed",
			zap.String("company", s.company),
			zap.String("slug", s.slug),
			zap.Error(err))
		return nil
	}
	return jobs
}

type listing struct {
	title string
	url   string
	loc   string
}

func (s *Scraper) fetch(ctx context.Context) ([]domain.ScrapedJob, error) {
	boardURL := fmt.Sprintf("%s/%s", s.baseURL, s.slug)

	doc, err := s.get(ctx, boardURL)
	if err != nil {
		return nil, fmt.Errorf("greenhouse board: %w", err)
	}

	listings := s.parseBoard(doc)

	out := make([]domain.ScrapedJob, 0, len(listings))
	for _, l := range listings {
		descHTML, loc := s.hydrate(ctx, l)
		if loc == "" {
			loc = l.loc
		}
		out = append(out, atsutil.Canonicalize(s.company, l.title, l.url, descHTML, loc))
	}
	return out, nil
}

// parseBoard collects job links from the board page. Boards link postings
// as /<slug>/jobs/<id> (theme-dependent, sometimes absolute).
func (s *Scraper) parseBoard(doc *goquery.Document) []listing {
	seen := map[string]bool{}
	var out []listing

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := strings.TrimSpace(a.AttrOr("href", ""))
		if href == "" {
			return
		}
		abs := href
		if strings.HasPrefix(href, "/") {
			abs = s.baseURL + href
		}
		if !strings.Contains(strings.ToLower(abs), "/jobs/") {
			return
		}
		if seen[abs] {
			return
		}
		seen[abs] = true

		title := atsutil.CleanText(a.Text())
		if title == "" || looksLikeJunkTitle(title) {
			return
		}

		// Opening rows usually carry the location as a sibling span.
		loc := atsutil.CleanText(a.Parent().Find(".location").First().Text())

		out = append(out, listing{title: title, url: abs, loc: loc})
	})
	return out
}

// hydrate fetches a detail page for description and location. Failures are
// tolerated; the listing entry survives with board-level data only.
func (s *Scraper) hydrate(ctx context.Context, l listing) (descHTML, loc string) {
	doc, err := s.get(ctx, l.url)
	if err != nil {
		s.log.Debug("greenhouse hydrate failed",
			zap.String("company", s.company),
			zap.String("url", l.url),
			zap.Error(err))
		return "", ""
	}

	for _, sel := range descriptionSelectors {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			if h, err := node.Html(); err == nil && strings.TrimSpace(h) != "" {
				descHTML = h
				break
			}
		}
	}
	for _, sel := range locationSelectors {
		if t := atsutil.CleanText(doc.Find(sel).First().Text()); t != "" {
			loc = t
			break
		}
	}
	return descHTML, loc
}

func (s *Scraper) get(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "jobscout/1.0 (+local)")

	if s.limiter != nil {
		if err := s.limiter.WaitURL(ctx, rawURL); err != nil {
			return nil, err
		}
	}
	res, err := s.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("status %d", res.StatusCode)
	}
	return goquery.NewDocumentFromReader(res.Body)
}

func looksLikeJunkTitle(t string) bool {
	l := strings.ToLower(t)
	return strings.Contains(l, "view") || strings.Contains(l, "apply")
}
