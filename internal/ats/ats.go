// Package ats holds the source-adapter contract and the factory that picks
// the right provider implementation for a configured company.
package ats

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"jobscout-engine/internal/ats/ashby"
	"jobscout-engine/internal/ats/atsutil"
	"jobscout-engine/internal/ats/greenhouse"
	"jobscout-engine/internal/ats/lever"
	"jobscout-engine/internal/ats/smartrecruiters"
	"jobscout-engine/internal/ats/workday"
	"jobscout-engine/internal/domain"
)

// Scraper fetches one company's listings from its provider. Scrape never
// fails past its own boundary: fetch or parse trouble is logged inside the
// adapter and degrades to an empty result, so a broken board never blocks
// the rest of a pass.
type Scraper interface {
	Provider() string
	Company() string
	Scrape(ctx context.Context) []domain.ScrapedJob
}

// ErrManualProvider marks companies whose provider is "custom": they are
// curated by hand and have no automated scraper.
var ErrManualProvider = errors.New("ats: custom provider has no scraper")

// New selects and builds the adapter for a company. A missing provider
// identifier yields an error; callers skip the company with a warning
// rather than aborting the pass.
func New(co domain.Company, limiter *atsutil.HostLimiter, log *zap.Logger) (Scraper, error) {
	name := strings.TrimSpace(co.Name)
	if name == "" {
		return nil, errors.New("ats: company has no name")
	}

	switch co.Provider {
	case domain.ProviderGreenhouse:
		if strings.TrimSpace(co.BoardSlug) == "" {
			return nil, fmt.Errorf("ats: greenhouse company %q has no board slug", name)
		}
		return greenhouse.New(name, co.BoardSlug, limiter, log), nil
	case domain.ProviderLever:
		if strings.TrimSpace(co.BoardSlug) == "" {
			return nil, fmt.Errorf("ats: lever company %q has no board slug", name)
		}
		return lever.New(name, co.BoardSlug, limiter, log), nil
	case domain.ProviderAshby:
		if strings.TrimSpace(co.BoardSlug) == "" {
			return nil, fmt.Errorf("ats: ashby company %q has no board slug", name)
		}
		return ashby.New(name, co.BoardSlug, limiter, log), nil
	case domain.ProviderSmartRecruiters:
		if strings.TrimSpace(co.BoardSlug) == "" {
			return nil, fmt.Errorf("ats: smartrecruiters company %q has no board slug", name)
		}
		return smartrecruiters.New(name, co.BoardSlug, limiter, log), nil
	case domain.ProviderWorkday:
		if strings.TrimSpace(co.BoardURL) == "" {
			return nil, fmt.Errorf("ats: workday company %q has no board url", name)
		}
		return workday.New(name, co.BoardURL, limiter, log)
	case domain.ProviderCustom:
		return nil, ErrManualProvider
	default:
		return nil, fmt.Errorf("ats: unknown provider %q for company %q", co.Provider, name)
	}
}
