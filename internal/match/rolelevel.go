package match

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Level is a standardized seniority level on an ordered scale.
type Level int

const (
	LevelIntern Level = iota
	LevelJunior
	LevelMid
	LevelSenior
	LevelLead
	LevelStaff
	LevelPrincipal
	LevelDirector
	LevelVP
	LevelExec
)

var levelNames = map[Level]string{
	LevelIntern:    "intern",
	LevelJunior:    "junior",
	LevelMid:       "mid",
	LevelSenior:    "senior",
	LevelLead:      "lead",
	LevelStaff:     "staff",
	LevelPrincipal: "principal",
	LevelDirector:  "director",
	LevelVP:        "vp",
	LevelExec:      "c_level",
}

func (l Level) String() string {
	if n, ok := levelNames[l]; ok {
		return n
	}
	return "mid"
}

// levelRule pairs a level with its textual patterns. Rule order encodes
// tie-break priority: most senior/specific first, so "Senior Team Lead"
// resolves to lead, not senior.
type levelRule struct {
	level    Level
	patterns *regexp.Regexp
}

func rule(l Level, alternatives ...string) levelRule {
	return levelRule{
		level:    l,
		patterns: regexp.MustCompile(`(?i)\b(?:` + strings.Join(alternatives, "|") + `)\b`),
	}
}

var levelRules = []levelRule{
	rule(LevelExec, "chief (?:technology|technical|executive|product|information) officer", "cto", "ceo", "cpo", "cio", "c-level"),
	rule(LevelVP, "vp", "vice president", "head of"),
	rule(LevelDirector, "director"),
	rule(LevelPrincipal, "principal", "distinguished"),
	rule(LevelStaff, "staff"),
	rule(LevelLead, "lead", "tech lead", "team lead"),
	rule(LevelSenior, "senior", "sr\\.?"),
	rule(LevelJunior, "junior", "jr\\.?", "entry[ -]level", "graduate", "new grad"),
	rule(LevelIntern, "intern", "internship", "working student", "co-op"),
	rule(LevelMid, "mid[ -]level", "intermediate"),
}

// yearRule maps a minimum years-of-experience mention to a level. Used as a
// low-confidence fallback when no title pattern matched.
type yearRule struct {
	minYears int
	level    Level
}

var yearLevelRules = []yearRule{
	{10, LevelPrincipal},
	{7, LevelStaff},
	{5, LevelLead},
	{3, LevelSenior},
	{1, LevelMid},
}

var yearsRe = regexp.MustCompile(`(?i)(\d{1,2})\s*\+?\s*years?(?:\s+of)?\s+(?:\w+\s+){0,3}?experience`)

// LevelEstimate is an extracted level with how it was derived.
type LevelEstimate struct {
	Level      Level  `json:"level"`
	Name       string `json:"name"`
	Confidence string `json:"confidence"` // high | low
}

// ExtractLevel resolves a seniority level from text. Direct pattern hits
// are high confidence; a years-of-experience fallback and the mid-level
// default are low confidence.
func (m *KeywordMatcher) ExtractLevel(text string) LevelEstimate {
	for _, r := range m.reg.levels {
		if r.patterns.MatchString(text) {
			return LevelEstimate{Level: r.level, Name: r.level.String(), Confidence: "high"}
		}
	}

	if ms := yearsRe.FindStringSubmatch(text); ms != nil {
		years, err := strconv.Atoi(ms[1])
		if err == nil {
			for _, yr := range m.reg.yearRules {
				if years >= yr.minYears {
					return LevelEstimate{Level: yr.level, Name: yr.level.String(), Confidence: "low"}
				}
			}
		}
	}

	return LevelEstimate{Level: LevelMid, Name: LevelMid.String(), Confidence: "low"}
}

// Progression is the direction from the candidate's level to the job's.
type Progression string

const (
	ProgressionSignificantStepUp   Progression = "significant_step_up"
	ProgressionStepUp              Progression = "step_up"
	ProgressionLateral             Progression = "lateral"
	ProgressionStepDown            Progression = "step_down"
	ProgressionSignificantStepDown Progression = "significant_step_down"
)

// RoleAnalysis compares a posting's level with the candidate's.
type RoleAnalysis struct {
	JobLevel       LevelEstimate `json:"jobLevel"`
	CandidateLevel LevelEstimate `json:"candidateLevel"`
	Progression    Progression   `json:"progression"`
	GrowthScore    int           `json:"growthScore"`
	Explanation    string        `json:"explanation"`
	Recommendation string        `json:"recommendation"`
}

// currentPositionRe finds an explicit "current position/role/title" line in
// a candidate document.
var currentPositionRe = regexp.MustCompile(`(?im)^.*current\s+(?:position|role|title)\b.*$`)

const cvPrefixLen = 400

// AnalyzeRoleLevel extracts job and candidate levels and derives the
// progression direction with its fixed growth-score band. The candidate
// level prefers a detected current-position line over the document prefix.
func (m *KeywordMatcher) AnalyzeRoleLevel(title, description, cvText string) RoleAnalysis {
	jobLevel := m.ExtractLevel(title)
	if jobLevel.Confidence == "low" {
		// Title had no direct hit; the description may carry an explicit
		// years-of-experience requirement or a clearer wording.
		if fromDesc := m.ExtractLevel(description); fromDesc.Confidence == "high" || jobLevel.Level == LevelMid {
			jobLevel = fromDesc
		}
	}

	candidateText := cvText
	if line := currentPositionRe.FindString(cvText); line != "" {
		candidateText = line
	} else if len(candidateText) > cvPrefixLen {
		candidateText = candidateText[:cvPrefixLen]
	}
	candidateLevel := m.ExtractLevel(candidateText)

	diff := int(jobLevel.Level) - int(candidateLevel.Level)

	var (
		progression Progression
		growth      int
		explanation string
	)
	switch {
	case diff >= 2:
		progression = ProgressionSignificantStepUp
		growth = 95
		explanation = fmt.Sprintf("This %s role is a significant step up from your current %s level.",
			jobLevel.Name, candidateLevel.Name)
	case diff == 1:
		progression = ProgressionStepUp
		growth = 85
		explanation = fmt.Sprintf("This %s role is a natural next step from your current %s level.",
			jobLevel.Name, candidateLevel.Name)
	case diff == 0:
		progression = ProgressionLateral
		growth = 60
		explanation = fmt.Sprintf("This role is a lateral move at your current %s level.", candidateLevel.Name)
	case diff == -1:
		progression = ProgressionStepDown
		growth = 30
		explanation = fmt.Sprintf("This %s role sits one level below your current %s level.",
			jobLevel.Name, candidateLevel.Name)
	default:
		progression = ProgressionSignificantStepDown
		growth = 10
		explanation = fmt.Sprintf("This %s role is well below your current %s level.",
			jobLevel.Name, candidateLevel.Name)
	}

	return RoleAnalysis{
		JobLevel:       jobLevel,
		CandidateLevel: candidateLevel,
		Progression:    progression,
		GrowthScore:    growth,
		Explanation:    explanation,
		Recommendation: recommendationFor(progression),
	}
}

func recommendationFor(p Progression) string {
	switch p {
	case ProgressionSignificantStepUp:
		return "Ambitious target: expect a demanding interview bar and emphasize leadership evidence."
	case ProgressionStepUp:
		return "Strong growth opportunity: apply and highlight recent scope increases."
	case ProgressionLateral:
		return "Good fit for consolidating skills; negotiate on scope or compensation."
	case ProgressionStepDown:
		return "Likely below your level; consider only for a domain switch or better conditions."
	default:
		return "Well below your level; probably not worth pursuing unless priorities changed."
	}
}
