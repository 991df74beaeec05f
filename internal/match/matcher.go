// Package match implements the deterministic alignment engine: keyword
// driven domain detection, skill extraction and role-level analysis over an
// immutable registry. Everything here is pure computation; no method does
// I/O or needs synchronization.
package match

// Matcher is the scoring capability consumed by callers. Exactly one
// implementation exists today (KeywordMatcher); the contract is kept
// stable so a generative implementation can be added without touching
// callers.
type Matcher interface {
	DetectJobDomains(title, description string) []string
	DetectCVDomains(cvText string) []string
	MatchDomains(cvText string, userDomainIDs, jobDomainIDs []string) AlignmentResult
	ExtractSkills(text string) SkillExtraction
	AnalyzeRoleLevel(title, description, cvText string) RoleAnalysis
}

// KeywordMatcher scores against the static registry. Safe for concurrent
// use; it only reads the registry.
type KeywordMatcher struct {
	reg *Registry
}

var _ Matcher = (*KeywordMatcher)(nil)

func NewKeywordMatcher(reg *Registry) *KeywordMatcher {
	return &KeywordMatcher{reg: reg}
}

// Registry exposes the underlying configuration for name resolution.
func (m *KeywordMatcher) Registry() *Registry { return m.reg }
