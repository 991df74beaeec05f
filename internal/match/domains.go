package match

import (
	"fmt"
	"math"
	"strings"
)

// Weights of the alignment score formula. Each ratio is the share of job
// domains in that bucket.
const (
	matchedWeight      = 100
	transferableWeight = 60
	mismatchedWeight   = 20

	// neutralScore applies when a posting declares no detectable domain.
	neutralScore = 70
)

// AlignmentResult explains how a candidate's domains line up with a
// posting's detected domains.
type AlignmentResult struct {
	JobDomains   []string `json:"jobDomains"`
	UserDomains  []string `json:"userDomains"`
	Matched      []string `json:"matched"`
	Mismatched   []string `json:"mismatched"`
	Transferable []string `json:"transferable"`
	Score        int      `json:"score"`
	Reasoning    string   `json:"reasoning"`
}

// DetectJobDomains counts, for every registry domain, how many of its job
// keywords appear in the combined title+description text. A domain is
// detected iff its hit count reaches the domain's own threshold. Detection
// is all-or-nothing per domain; several domains may fire at once.
func (m *KeywordMatcher) DetectJobDomains(title, description string) []string {
	return m.detect(title+" "+description, func(d Domain) []string { return d.JobKeywords })
}

// DetectCVDomains runs the same detection against a candidate document,
// using the per-domain CV keyword lists.
func (m *KeywordMatcher) DetectCVDomains(cvText string) []string {
	return m.detect(cvText, func(d Domain) []string { return d.CVKeywords })
}

func (m *KeywordMatcher) detect(text string, keywords func(Domain) []string) []string {
	padded := pad(Normalize(text))

	var out []string
	for _, d := range m.reg.Domains() {
		hits := 0
		for _, kw := range keywords(d) {
			if phraseIn(padded, kw) {
				hits++
			}
		}
		if hits >= d.RequiredCount {
			out = append(out, d.ID)
		}
	}
	return out
}

// MatchDomains buckets every job domain as matched, transferable or
// mismatched against the user's domains and folds the buckets into a 0-100
// score with human-readable reasoning. When the user declares no domains,
// they are detected from cvText instead.
func (m *KeywordMatcher) MatchDomains(cvText string, userDomainIDs, jobDomainIDs []string) AlignmentResult {
	if len(userDomainIDs) == 0 && strings.TrimSpace(cvText) != "" {
		userDomainIDs = m.DetectCVDomains(cvText)
	}

	if len(jobDomainIDs) == 0 {
		return AlignmentResult{
			JobDomains:   []string{},
			UserDomains:  userDomainIDs,
			Matched:      []string{},
			Mismatched:   []string{},
			Transferable: []string{},
			Score:        neutralScore,
			Reasoning:    "No specific domain requirement was detected for this role; general experience applies.",
		}
	}

	userSet := make(map[string]bool, len(userDomainIDs))
	for _, id := range userDomainIDs {
		userSet[id] = true
	}

	var matched, transferable, mismatched []string
	for _, jobID := range jobDomainIDs {
		switch {
		case userSet[jobID]:
			matched = append(matched, jobID)
		case m.isTransferable(jobID, userDomainIDs):
			transferable = append(transferable, jobID)
		default:
			mismatched = append(mismatched, jobID)
		}
	}

	total := float64(len(jobDomainIDs))
	matchRatio := float64(len(matched)) / total
	transferRatio := float64(len(transferable)) / total
	mismatchRatio := float64(len(mismatched)) / total

	raw := matchRatio*matchedWeight + transferRatio*transferableWeight + mismatchRatio*mismatchedWeight
	score := int(math.Round(raw))
	if score > 100 {
		score = 100
	}

	return AlignmentResult{
		JobDomains:   jobDomainIDs,
		UserDomains:  userDomainIDs,
		Matched:      matched,
		Mismatched:   mismatched,
		Transferable: transferable,
		Score:        score,
		Reasoning:    m.reasoning(matched, transferable, mismatched),
	}
}

// isTransferable checks the directed transfer relation in either direction:
// a user domain lists the job domain as a target, or the job domain lists a
// user domain as a target.
func (m *KeywordMatcher) isTransferable(jobID string, userDomainIDs []string) bool {
	for _, userID := range userDomainIDs {
		if userDomain, ok := m.reg.DomainByID(userID); ok {
			for _, target := range userDomain.TransferableTo {
				if target == jobID {
					return true
				}
			}
		}
	}
	if jobDomain, ok := m.reg.DomainByID(jobID); ok {
		for _, target := range jobDomain.TransferableTo {
			for _, userID := range userDomainIDs {
				if target == userID {
					return true
				}
			}
		}
	}
	return false
}

// reasoning builds the explanation by priority: a perfect match gets one
// sentence, otherwise sentences for matched, transferable and mismatched
// domains are concatenated. Wording hardens when nothing matches at all.
func (m *KeywordMatcher) reasoning(matched, transferable, mismatched []string) string {
	if len(matched) > 0 && len(mismatched) == 0 && len(transferable) == 0 {
		return fmt.Sprintf("Excellent domain match: your experience in %s aligns directly with this role.",
			joinNames(m.reg.DomainNames(matched)))
	}

	var parts []string
	if len(matched) > 0 {
		parts = append(parts, fmt.Sprintf("Direct experience in %s.",
			joinNames(m.reg.DomainNames(matched))))
	}
	if len(transferable) > 0 {
		parts = append(parts, fmt.Sprintf("Your background offers transferable skills toward %s.",
			joinNames(m.reg.DomainNames(transferable))))
	}
	if len(mismatched) > 0 {
		if len(matched) == 0 && len(transferable) == 0 {
			parts = append(parts, fmt.Sprintf("Significant mismatch: the role requires %s, which is outside your declared background.",
				joinNames(m.reg.DomainNames(mismatched))))
		} else {
			parts = append(parts, fmt.Sprintf("Gap in %s: highlight transferable skills when applying.",
				joinNames(m.reg.DomainNames(mismatched))))
		}
	}
	return strings.Join(parts, " ")
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "the required domains"
	}
	return strings.Join(names, ", ")
}
