// Package config loads and validates the engine's YAML configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"jobscout-engine/internal/domain"
)

type CompanyEntry struct {
	Name      string `yaml:"name"`
	Provider  string `yaml:"provider"`
	BoardSlug string `yaml:"board_slug"`
	BoardURL  string `yaml:"board_url"`
	CareerURL string `yaml:"career_url"`
	Active    *bool  `yaml:"active"` // nil means active
}

func (c CompanyEntry) Company() domain.Company {
	active := c.Active == nil || *c.Active
	return domain.Company{
		Name:      c.Name,
		Provider:  domain.Provider(c.Provider),
		BoardSlug: c.BoardSlug,
		BoardURL:  c.BoardURL,
		CareerURL: c.CareerURL,
		Active:    active,
	}
}

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
		Debug   bool   `yaml:"debug"`
		JSONLog bool   `yaml:"json_log"`
	} `yaml:"app"`

	Polling struct {
		Spec            string `yaml:"spec"` // robfig/cron spec, e.g. "@every 6h"
		ExpiryThreshold int    `yaml:"expiry_threshold"`
	} `yaml:"polling"`

	Scrape struct {
		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`
	} `yaml:"scrape"`

	Registry struct {
		DomainsPath string `yaml:"domains_path"`
		SkillsPath  string `yaml:"skills_path"`
	} `yaml:"registry"`

	Companies []CompanyEntry `yaml:"companies"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
