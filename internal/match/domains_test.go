package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T) *KeywordMatcher {
	t.Helper()
	return NewKeywordMatcher(DefaultRegistry())
}

func TestDetectJobDomainsThreshold(t *testing.T) {
	m := newTestMatcher(t)

	// Two backend keyword hits (node.js, postgresql) meet the threshold of 2.
	got := m.DetectJobDomains("Senior Backend Engineer", "Node.js, PostgreSQL, REST APIs")
	assert.Contains(t, got, "backend-engineering")

	// One hit alone must not detect the domain.
	got = m.DetectJobDomains("Engineer", "We use PostgreSQL somewhere.")
	assert.NotContains(t, got, "backend-engineering")
}

func TestDetectJobDomainsSoundness(t *testing.T) {
	m := newTestMatcher(t)
	reg := m.Registry()

	detected := m.DetectJobDomains("Platform Engineer",
		"Kubernetes, Terraform, CI/CD pipelines on AWS. Also some React and TypeScript UI work.")

	// Every detected domain must actually meet its own threshold.
	for _, id := range detected {
		d, ok := reg.DomainByID(id)
		require.True(t, ok)

		hits := 0
		for _, kw := range d.JobKeywords {
			if ContainsKeyword("Platform Engineer Kubernetes, Terraform, CI/CD pipelines on AWS. Also some React and TypeScript UI work.", kw) {
				hits++
			}
		}
		assert.GreaterOrEqual(t, hits, d.RequiredCount, id)
	}
	assert.Contains(t, detected, "platform-engineering")
	assert.Contains(t, detected, "frontend-engineering")
}

func TestMatchDomainsNeutralWhenJobHasNone(t *testing.T) {
	m := newTestMatcher(t)

	res := m.MatchDomains("", []string{"backend-engineering"}, nil)
	assert.Equal(t, 70, res.Score)
	assert.Empty(t, res.Matched)
	assert.Empty(t, res.Mismatched)
	assert.Empty(t, res.Transferable)
	assert.Contains(t, res.Reasoning, "No specific domain requirement")
}

func TestMatchDomainsTransferableExample(t *testing.T) {
	m := newTestMatcher(t)

	// frontend-engineering lists backend-engineering as a transfer target,
	// so the single job domain is transferable: round(0*100+1*60+0*20) = 60.
	res := m.MatchDomains("", []string{"frontend-engineering"}, []string{"backend-engineering"})
	assert.Equal(t, 60, res.Score)
	assert.Equal(t, []string{"backend-engineering"}, res.Transferable)
	assert.Empty(t, res.Matched)
	assert.Empty(t, res.Mismatched)
	assert.Contains(t, res.Reasoning, "transferable")
}

func TestMatchDomainsPerfectMatch(t *testing.T) {
	m := newTestMatcher(t)

	res := m.MatchDomains("", []string{"backend-engineering"}, []string{"backend-engineering"})
	assert.Equal(t, 100, res.Score)
	assert.Contains(t, res.Reasoning, "Excellent domain match")
}

func TestMatchDomainsMismatchWording(t *testing.T) {
	m := newTestMatcher(t)

	// No direct or transferable coverage at all: hard wording.
	res := m.MatchDomains("", []string{"product-management"}, []string{"machine-learning"})
	assert.Equal(t, 20, res.Score)
	assert.Contains(t, res.Reasoning, "Significant mismatch")

	// Partial coverage: soft wording.
	res = m.MatchDomains("", []string{"backend-engineering"},
		[]string{"backend-engineering", "product-management"})
	assert.Contains(t, res.Reasoning, "highlight transferable skills")
	assert.NotContains(t, res.Reasoning, "Significant mismatch")
}

func TestMatchDomainsScoreMonotonicity(t *testing.T) {
	m := newTestMatcher(t)

	// mismatched -> transferable cannot decrease the score.
	mismatch := m.MatchDomains("", []string{"product-management"}, []string{"backend-engineering"})
	transfer := m.MatchDomains("", []string{"frontend-engineering"}, []string{"backend-engineering"})
	direct := m.MatchDomains("", []string{"backend-engineering"}, []string{"backend-engineering"})

	assert.LessOrEqual(t, mismatch.Score, transfer.Score)
	assert.LessOrEqual(t, transfer.Score, direct.Score)
}

func TestMatchDomainsDerivesUserDomainsFromCV(t *testing.T) {
	m := newTestMatcher(t)

	cv := "Built REST APIs in Go with PostgreSQL; designed microservices."
	res := m.MatchDomains(cv, nil, []string{"backend-engineering"})
	assert.Equal(t, []string{"backend-engineering"}, res.Matched)
	assert.Equal(t, 100, res.Score)
}

func TestDomainNamesFilterUnknownIDs(t *testing.T) {
	reg := DefaultRegistry()
	names := reg.DomainNames([]string{"backend-engineering", "no-such-domain"})
	assert.Equal(t, []string{"Backend Engineering"}, names)
}
