package config

import (
	"fmt"
	"strings"

	"jobscout-engine/internal/domain"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

var knownProviders = map[domain.Provider]bool{
	domain.ProviderGreenhouse:      true,
	domain.ProviderLever:           true,
	domain.ProviderWorkday:         true,
	domain.ProviderAshby:           true,
	domain.ProviderSmartRecruiters: true,
	domain.ProviderCustom:          true,
}

// NormalizeAndValidate fills defaults, trims company entries and reports
// problems. Errors stop startup; warnings just get logged.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if out.App.Port == 0 {
		out.App.Port = 38561
	}
	if out.App.Port < 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}
	if out.App.DataDir == "" {
		out.App.DataDir = "."
	}

	if out.Polling.Spec == "" {
		out.Polling.Spec = "@every 6h"
	}
	if out.Polling.ExpiryThreshold == 0 {
		out.Polling.ExpiryThreshold = 3
	}
	if out.Polling.ExpiryThreshold < 0 {
		res.addErr("polling.expiry_threshold must be > 0")
	}
	if out.Polling.ExpiryThreshold == 1 {
		res.addWarn("polling.expiry_threshold of 1 expires a job after a single missed pass; transient board outages will expire everything.")
	}

	if out.Scrape.RequestsPerSecond == 0 {
		out.Scrape.RequestsPerSecond = 2
	}
	if out.Scrape.RequestsPerSecond < 0 {
		res.addErr("scrape.requests_per_second must be > 0")
	}
	if out.Scrape.Burst == 0 {
		out.Scrape.Burst = 4
	}

	seen := map[string]bool{}
	for i := range out.Companies {
		c := &out.Companies[i]
		c.Name = strings.TrimSpace(c.Name)
		c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
		c.BoardSlug = strings.TrimSpace(c.BoardSlug)
		c.BoardURL = strings.TrimSpace(c.BoardURL)

		if c.Name == "" {
			res.addErr("companies[%d].name is required", i)
			continue
		}
		key := strings.ToLower(c.Name)
		if seen[key] {
			res.addWarn("duplicate company %q; later entry wins on upsert", c.Name)
		}
		seen[key] = true

		p := domain.Provider(c.Provider)
		if !knownProviders[p] {
			res.addErr("companies[%d] (%s): unknown provider %q", i, c.Name, c.Provider)
			continue
		}
		switch p {
		case domain.ProviderWorkday:
			if c.BoardURL == "" {
				res.addErr("companies[%d] (%s): workday requires board_url", i, c.Name)
			}
		case domain.ProviderCustom:
			// nothing to scrape, nothing to validate
		default:
			if c.BoardSlug == "" {
				res.addErr("companies[%d] (%s): provider %s requires board_slug", i, c.Name, c.Provider)
			}
		}
	}

	if len(out.Companies) == 0 {
		res.addWarn("no companies configured; passes will do nothing")
	}

	return out, res
}
