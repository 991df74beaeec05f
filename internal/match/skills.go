package match

import "sort"

// Skill-count thresholds for the extraction confidence tier.
const (
	highConfidenceSkills   = 10
	mediumConfidenceSkills = 5
)

// SkillExtraction is the result of scanning free text against the skill
// dictionary.
type SkillExtraction struct {
	Skills     []string            `json:"skills"`
	Categories map[string][]string `json:"categories"`
	Confidence string              `json:"confidence"` // high | medium | low
}

// ExtractSkills tests every dictionary entry against the normalized text.
// The first matching synonym marks a skill as found; remaining synonyms are
// not tested. "No skills found" is a valid low-confidence result, not an
// error.
func (m *KeywordMatcher) ExtractSkills(text string) SkillExtraction {
	padded := pad(Normalize(text))

	var found []string
	categories := make(map[string][]string)

	for _, sk := range m.reg.Skills() {
		for _, syn := range sk.Synonyms {
			if phraseIn(padded, syn) {
				found = append(found, sk.Name)
				categories[sk.Category] = append(categories[sk.Category], sk.Name)
				break
			}
		}
	}

	sort.Strings(found)
	for cat := range categories {
		sort.Strings(categories[cat])
	}

	confidence := "low"
	switch {
	case len(found) >= highConfidenceSkills:
		confidence = "high"
	case len(found) >= mediumConfidenceSkills:
		confidence = "medium"
	}

	return SkillExtraction{Skills: found, Categories: categories, Confidence: confidence}
}
