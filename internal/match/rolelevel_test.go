package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLevelDirectPatterns(t *testing.T) {
	m := newTestMatcher(t)

	cases := []struct {
		text string
		want Level
	}{
		{"Senior Backend Engineer", LevelSenior},
		{"Staff Software Engineer", LevelStaff},
		{"Principal Engineer, Storage", LevelPrincipal},
		{"Engineering Team Lead", LevelLead},
		{"Junior Developer", LevelJunior},
		{"Software Engineering Intern", LevelIntern},
		{"Director of Engineering", LevelDirector},
		{"VP of Engineering", LevelVP},
		{"CTO", LevelExec},
	}
	for _, tc := range cases {
		got := m.ExtractLevel(tc.text)
		assert.Equal(t, tc.want, got.Level, tc.text)
		assert.Equal(t, "high", got.Confidence, tc.text)
	}
}

func TestExtractLevelRuleOrderBreaksTies(t *testing.T) {
	m := newTestMatcher(t)

	// Rule order is most senior first, so a combined title resolves to the
	// higher level.
	got := m.ExtractLevel("Senior Team Lead")
	assert.Equal(t, LevelLead, got.Level)
}

func TestExtractLevelYearsFallback(t *testing.T) {
	m := newTestMatcher(t)

	cases := []struct {
		text string
		want Level
	}{
		{"Engineer with 10+ years of experience", LevelPrincipal},
		{"requires 7 years of experience", LevelStaff},
		{"5 years of professional experience", LevelLead},
		{"3 years of experience building APIs", LevelSenior},
		{"1 year of experience", LevelMid},
	}
	for _, tc := range cases {
		got := m.ExtractLevel(tc.text)
		assert.Equal(t, tc.want, got.Level, tc.text)
		assert.Equal(t, "low", got.Confidence, tc.text)
	}
}

func TestExtractLevelDefaultsToMid(t *testing.T) {
	m := newTestMatcher(t)

	got := m.ExtractLevel("Software Engineer")
	assert.Equal(t, LevelMid, got.Level)
	assert.Equal(t, "low", got.Confidence)
}

func TestAnalyzeRoleLevelProgressionBands(t *testing.T) {
	m := newTestMatcher(t)

	cv := "Current position: Senior Software Engineer at Acme since 2021."

	cases := []struct {
		title       string
		progression Progression
		growth      int
	}{
		{"Principal Engineer", ProgressionSignificantStepUp, 95}, // senior -> principal (+3)
		{"Engineering Team Lead", ProgressionStepUp, 85},         // senior -> lead (+1)
		{"Senior Software Engineer", ProgressionLateral, 60},
		{"Software Engineer, Mid-Level", ProgressionStepDown, 30}, // senior -> mid (-1)
		{"Junior Developer", ProgressionSignificantStepDown, 10},  // senior -> junior (-2)
	}
	for _, tc := range cases {
		res := m.AnalyzeRoleLevel(tc.title, "", cv)
		assert.Equal(t, tc.progression, res.Progression, tc.title)
		assert.Equal(t, tc.growth, res.GrowthScore, tc.title)
		assert.NotEmpty(t, res.Explanation)
		assert.NotEmpty(t, res.Recommendation)
	}
}

func TestAnalyzeRoleLevelExampleFromReference(t *testing.T) {
	m := newTestMatcher(t)

	res := m.AnalyzeRoleLevel("Senior Backend Engineer", "Node.js, PostgreSQL, REST APIs", "")
	assert.Equal(t, LevelSenior, res.JobLevel.Level)
	assert.Equal(t, "high", res.JobLevel.Confidence)
}

func TestAnalyzeRoleLevelPrefersCurrentPositionLine(t *testing.T) {
	m := newTestMatcher(t)

	// The CV opens with an aspiration mentioning "lead"; the current
	// position line must win.
	cv := "Current role: Junior Developer\nAspiring to lead teams building large systems."
	res := m.AnalyzeRoleLevel("Senior Engineer", "", cv)
	assert.Equal(t, LevelJunior, res.CandidateLevel.Level)
	assert.Equal(t, ProgressionSignificantStepUp, res.Progression)
}

func TestAnalyzeRoleLevelUsesDescriptionYears(t *testing.T) {
	m := newTestMatcher(t)

	res := m.AnalyzeRoleLevel("Software Engineer",
		"You bring 10+ years of experience running storage systems.", "")
	assert.Equal(t, LevelPrincipal, res.JobLevel.Level)
	assert.Equal(t, "low", res.JobLevel.Confidence)
}
