package match

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Domain is one static registry entry: a professional specialization with
// its detection keywords, per-domain detection threshold and directed
// transferability edges.
type Domain struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Category       string   `yaml:"category"`
	JobKeywords    []string `yaml:"job_keywords"`
	CVKeywords     []string `yaml:"cv_keywords"`
	RequiredCount  int      `yaml:"required_count"`
	TransferableTo []string `yaml:"transferable_to"`
}

// Skill maps a canonical skill name to its synonym keywords.
type Skill struct {
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Synonyms []string `yaml:"synonyms"`
}

// Registry is the process-wide, read-only matching configuration. Built
// once at startup and passed by reference into the matcher; never mutated
// afterwards.
type Registry struct {
	domains   []Domain
	byID      map[string]Domain
	skills    []Skill
	levels    []levelRule
	yearRules []yearRule
}

// NewRegistry assembles a registry from domain and skill definitions. The
// role-level rule table is fixed (see rolelevel.go) since the level scale
// itself is part of the contract.
func NewRegistry(domains []Domain, skills []Skill) (*Registry, error) {
	byID := make(map[string]Domain, len(domains))
	for _, d := range domains {
		if d.ID == "" {
			return nil, fmt.Errorf("match: domain with empty id (name %q)", d.Name)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("match: duplicate domain id %q", d.ID)
		}
		if d.RequiredCount <= 0 {
			return nil, fmt.Errorf("match: domain %q has non-positive required_count", d.ID)
		}
		byID[d.ID] = d
	}
	return &Registry{
		domains:   domains,
		byID:      byID,
		skills:    skills,
		levels:    levelRules,
		yearRules: yearLevelRules,
	}, nil
}

// Domains returns the registry entries in declaration order.
func (r *Registry) Domains() []Domain { return r.domains }

// DomainByID looks up one domain.
func (r *Registry) DomainByID(id string) (Domain, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// DomainNames resolves ids to display names. Unknown ids are silently
// dropped rather than raising; callers get names for what exists.
func (r *Registry) DomainNames(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if d, ok := r.byID[id]; ok {
			out = append(out, d.Name)
		}
	}
	return out
}

// Skills returns the dictionary in declaration order.
func (r *Registry) Skills() []Skill { return r.skills }

type domainsFile struct {
	Domains []Domain `yaml:"domains"`
}

type skillsFile struct {
	Skills []Skill `yaml:"skills"`
}

// LoadDomains reads a domain registry override from YAML.
func LoadDomains(path string) ([]Domain, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f domainsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse domains %s: %w", path, err)
	}
	return f.Domains, nil
}

// LoadSkills reads a skill dictionary override from YAML.
func LoadSkills(path string) ([]Skill, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f skillsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse skills %s: %w", path, err)
	}
	return f.Skills, nil
}

// DefaultRegistry builds the built-in registry. Panics on an invalid
// built-in table, which would be a programming error.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultDomains, defaultSkills)
	if err != nil {
		panic(err)
	}
	return r
}
