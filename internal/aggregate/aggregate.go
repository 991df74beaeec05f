// Package aggregate runs one full polling pass: fan out over all active,
// non-custom companies, collect every adapter's results, then reconcile
// the joined set against the store (dedup) and advance the expiry
// bookkeeping.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"jobscout-engine/internal/ats"
	"jobscout-engine/internal/ats/atsutil"
	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/events"
)

// DefaultExpiryThreshold is the number of consecutive missed passes after
// which a posting is considered taken down.
const DefaultExpiryThreshold = 3

// JobStore is the slice of the persistence contract a pass consumes.
type JobStore interface {
	GetAllCompanies(ctx context.Context) ([]domain.Company, error)
	GetJobByFingerprint(ctx context.Context, fp string) (*domain.Job, error)
	AddJob(ctx context.Context, sj domain.ScrapedJob) (int64, error)
	MarkJobAsSeen(ctx context.Context, fp string) error
	GetAllJobsForExpiryCheck(ctx context.Context) ([]domain.Job, error)
	IncrementExpiryCheckCount(ctx context.Context, fp string) error
	DetectExpiredJobs(ctx context.Context, threshold int) ([]string, error)
	MarkJobExpired(ctx context.Context, fp string) error
}

// ErrPassInProgress means another process holds the pass lock.
var ErrPassInProgress = errors.New("aggregate: another pass holds the lock")

// PassResult summarizes one pass.
type PassResult struct {
	Companies int          `json:"companies"`
	Scraped   int          `json:"scraped"`
	Failures  int          `json:"failures"`
	NewJobs   []domain.Job `json:"newJobs"`
	Expired   []string     `json:"expired"`
}

type Runner struct {
	store     JobStore
	limiter   *atsutil.HostLimiter
	log       *zap.Logger
	hub       *events.Hub
	threshold int

	// lock serializes passes across processes sharing one data dir.
	// Optional; nil skips locking (tests, single-shot runs).
	lock *flock.Flock

	// newScraper is the adapter factory; swappable for tests.
	newScraper func(domain.Company, *atsutil.HostLimiter, *zap.Logger) (ats.Scraper, error)
}

type Option func(*Runner)

// WithLock serializes passes via a lock file.
func WithLock(path string) Option {
	return func(r *Runner) { r.lock = flock.New(path) }
}

// WithExpiryThreshold overrides the default consecutive-miss threshold.
func WithExpiryThreshold(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.threshold = n
		}
	}
}

// WithScraperFactory swaps the adapter factory (tests).
func WithScraperFactory(f func(domain.Company, *atsutil.HostLimiter, *zap.Logger) (ats.Scraper, error)) Option {
	return func(r *Runner) { r.newScraper = f }
}

// WithEvents publishes job_created/job_expired events to the hub.
func WithEvents(hub *events.Hub) Option {
	return func(r *Runner) { r.hub = hub }
}

func NewRunner(store JobStore, limiter *atsutil.HostLimiter, log *zap.Logger, opts ...Option) *Runner {
	r := &Runner{
		store:      store,
		limiter:    limiter,
		log:        log,
		threshold:  DefaultExpiryThreshold,
		newScraper: ats.New,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// RunPass executes one scrape, dedup and expiry pass. companyFilter,
// when non-empty, restricts scraping to one company by name; expiry
// bookkeeping is likewise confined to the companies polled this pass, so a
// filtered scan never counts a miss against a company it did not visit.
// Adapter failures degrade to empty results inside the adapters; a failed
// company simply contributes nothing and is retried on the next scheduled
// pass.
func (r *Runner) RunPass(ctx context.Context, companyFilter string) (PassResult, error) {
	var res PassResult

	if r.lock != nil {
		locked, err := r.lock.TryLock()
		if err != nil {
			return res, fmt.Errorf("pass lock: %w", err)
		}
		if !locked {
			return res, ErrPassInProgress
		}
		defer func() { _ = r.lock.Unlock() }()
	}

	companies, err := r.store.GetAllCompanies(ctx)
	if err != nil {
		return res, fmt.Errorf("load companies: %w", err)
	}

	scrapers := r.buildScrapers(companies, companyFilter)
	res.Companies = len(scrapers)

	polled := make(map[string]bool, len(scrapers))
	for _, sc := range scrapers {
		polled[strings.ToLower(sc.Company())] = true
	}

	scraped := r.scrapeAll(ctx, scrapers)
	res.Scraped = len(scraped)

	// Dedup must only start after every scrape has joined: the expiry
	// sweep below needs the complete seen-this-pass set.
	seen := make(map[string]bool, len(scraped))
	for _, sj := range scraped {
		if sj.Fingerprint == "" || seen[sj.Fingerprint] {
			continue
		}
		seen[sj.Fingerprint] = true

		existing, err := r.store.GetJobByFingerprint(ctx, sj.Fingerprint)
		if err != nil {
			return res, fmt.Errorf("lookup %s: %w", sj.Fingerprint, err)
		}
		if existing == nil {
			id, err := r.store.AddJob(ctx, sj)
			if err != nil {
				r.log.Warn("insert failed",
					zap.String("company", sj.Company),
					zap.String("title", sj.Title),
					zap.Error(err))
				continue
			}
			res.NewJobs = append(res.NewJobs, newJob(id, sj))
			r.publish("job_created", map[string]any{"id": id, "company": sj.Company, "title": sj.Title})
			continue
		}
		if err := r.store.MarkJobAsSeen(ctx, sj.Fingerprint); err != nil {
			return res, fmt.Errorf("mark seen %s: %w", sj.Fingerprint, err)
		}
	}

	// Expiry: increment misses for everything not resighted, then detect.
	// Order matters; a job seen this pass has its counter already reset.
	expired, err := r.sweepExpiry(ctx, seen, polled)
	if err != nil {
		return res, err
	}
	res.Expired = expired

	r.log.Info("pass complete",
		zap.Int("companies", res.Companies),
		zap.Int("scraped", res.Scraped),
		zap.Int("new", len(res.NewJobs)),
		zap.Int("expired", len(res.Expired)))
	return res, nil
}

// buildScrapers constructs one adapter per eligible company. Custom
// companies are skipped silently (they have no scraper by design); a
// missing identifier skips the company with a warning, never fatally.
func (r *Runner) buildScrapers(companies []domain.Company, companyFilter string) []ats.Scraper {
	var out []ats.Scraper
	for _, co := range companies {
		if !co.Active || co.Provider == domain.ProviderCustom {
			continue
		}
		if companyFilter != "" && !strings.EqualFold(co.Name, companyFilter) {
			continue
		}
		sc, err := r.newScraper(co, r.limiter, r.log)
		if err != nil {
			r.log.Warn("skipping company",
				zap.String("company", co.Name),
				zap.String("provider", string(co.Provider)),
				zap.Error(err))
			continue
		}
		out = append(out, sc)
	}
	return out
}

// scrapeAll fans the adapters out in parallel and joins all results before
// returning. Scrape never errors past its boundary, so the group exists
// purely for the barrier.
func (r *Runner) scrapeAll(ctx context.Context, scrapers []ats.Scraper) []domain.ScrapedJob {
	results := make(chan []domain.ScrapedJob, len(scrapers))

	var g errgroup.Group
	for _, sc := range scrapers {
		g.Go(func() error {
			r.log.Debug("scraping",
				zap.String("company", sc.Company()),
				zap.String("provider", sc.Provider()))
			results <- sc.Scrape(ctx)
			return nil
		})
	}
	_ = g.Wait()
	close(results)

	var out []domain.ScrapedJob
	for batch := range results {
		out = append(out, batch...)
	}
	return out
}

// sweepExpiry advances the miss bookkeeping for jobs belonging to polled
// companies only. A miss means the posting was absent from a pass that
// actually visited its company; jobs outside the polled set were never up
// for resighting and must not move toward expiry.
func (r *Runner) sweepExpiry(ctx context.Context, seen, polled map[string]bool) ([]string, error) {
	tracked, err := r.store.GetAllJobsForExpiryCheck(ctx)
	if err != nil {
		return nil, fmt.Errorf("expiry load: %w", err)
	}
	eligible := make(map[string]bool, len(tracked))
	for _, j := range tracked {
		if !polled[strings.ToLower(j.Company)] {
			continue
		}
		eligible[j.Fingerprint] = true
		if seen[j.Fingerprint] {
			continue
		}
		if err := r.store.IncrementExpiryCheckCount(ctx, j.Fingerprint); err != nil {
			return nil, fmt.Errorf("expiry increment: %w", err)
		}
	}

	detected, err := r.store.DetectExpiredJobs(ctx, r.threshold)
	if err != nil {
		return nil, fmt.Errorf("expiry detect: %w", err)
	}
	var expired []string
	for _, fp := range detected {
		if !eligible[fp] {
			continue
		}
		if err := r.store.MarkJobExpired(ctx, fp); err != nil {
			return nil, fmt.Errorf("expiry mark: %w", err)
		}
		r.publish("job_expired", map[string]any{"fingerprint": fp})
		expired = append(expired, fp)
	}
	return expired, nil
}

func (r *Runner) publish(typ string, data map[string]any) {
	if r.hub != nil {
		r.hub.Publish(events.Make(typ, data))
	}
}

func newJob(id int64, sj domain.ScrapedJob) domain.Job {
	return domain.Job{
		ID:           id,
		Fingerprint:  sj.Fingerprint,
		Company:      sj.Company,
		Title:        sj.Title,
		URL:          sj.URL,
		Description:  sj.Description,
		Requirements: sj.Requirements,
		TechStack:    sj.TechStack,
		Location:     sj.Location,
		Remote:       sj.Remote,
		Status:       domain.StatusNew,
	}
}
