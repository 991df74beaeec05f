package atsutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a  b\n\tc  "))
	assert.Equal(t, "", CleanText("   "))
}

func TestStripHTML(t *testing.T) {
	got := StripHTML("<div><h2>About</h2><p>Build <b>APIs</b> daily.</p></div>")
	assert.Equal(t, "About Build APIs daily.", got)

	// plain text passes through
	assert.Equal(t, "no markup here", StripHTML("no markup here"))
}

func TestExtractRequirementsFindsHeader(t *testing.T) {
	desc := strings.Repeat("intro text ", 20) +
		"Requirements: 5 years of Go, PostgreSQL, and Kubernetes experience. " +
		strings.Repeat("tail ", 300)

	got := ExtractRequirements(desc)
	require.True(t, strings.HasPrefix(got, "Requirements:"))
	assert.LessOrEqual(t, len(got), 900)
	assert.Contains(t, got, "PostgreSQL")
}

func TestExtractRequirementsFallsBackToPrefix(t *testing.T) {
	desc := strings.Repeat("we build useful software every day ", 30)
	got := ExtractRequirements(desc)
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 300)
}

func TestDetectRemote(t *testing.T) {
	assert.True(t, DetectRemote("Remote — EMEA", ""))
	assert.True(t, DetectRemote("", "This role is work from home friendly"))
	assert.False(t, DetectRemote("Berlin, Germany", "On-site role in our office"))
}

func TestExtractTechStack(t *testing.T) {
	got := ExtractTechStack("Senior Backend Engineer — Node.js, PostgreSQL, REST APIs and C++")
	assert.Contains(t, got, "node.js")
	assert.Contains(t, got, "postgresql")
	assert.Contains(t, got, "rest")
	assert.Contains(t, got, "c++")
	// "go" must not fire on arbitrary substrings like "Google"
	assert.NotContains(t, ExtractTechStack("Google Ads specialist"), "go")
}
