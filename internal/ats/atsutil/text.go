package atsutil

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CleanText collapses whitespace (incl. non-breaking spaces) into single
// spaces and trims the result.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// StripHTML renders provider HTML down to plain text. Block elements are
// separated so headings don't fuse with the following paragraph. Input that
// is not parseable HTML comes back cleaned but otherwise untouched.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	if !strings.ContainsAny(s, "<>") {
		return CleanText(s)
	}
	// Pad tag openings so adjacent block elements don't fuse into one word
	// once tags are dropped.
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(strings.ReplaceAll(s, "<", " <")))
	if err != nil {
		return CleanText(s)
	}
	return CleanText(doc.Text())
}

// requirementsHeader matches the section headers ATS descriptions commonly
// use to introduce the requirements block.
var requirementsHeader = regexp.MustCompile(`(?i)(requirements|qualifications|what you.{0,3}ll need|what we.{0,3}re looking for|who you are|about you|must have)`)

const (
	requirementsWindow = 900
	requirementsPrefix = 300
)

// ExtractRequirements pulls a bounded excerpt starting at a recognized
// requirements header. Without a header it degrades to a fixed-length
// prefix of the description.
func ExtractRequirements(description string) string {
	desc := CleanText(description)
	if desc == "" {
		return ""
	}
	if loc := requirementsHeader.FindStringIndex(desc); loc != nil {
		end := loc[0] + requirementsWindow
		if end > len(desc) {
			end = len(desc)
		}
		return CleanText(desc[loc[0]:end])
	}
	if len(desc) > requirementsPrefix {
		return CleanText(desc[:requirementsPrefix])
	}
	return desc
}

// remoteIndicators is the vocabulary used to derive the remote flag from
// location and description text.
var remoteIndicators = []string{
	"remote",
	"work from home",
	"work-from-home",
	"wfh",
	"fully distributed",
	"distributed team",
	"anywhere",
	"telecommute",
}

// DetectRemote reports whether location or description text mentions any
// remote indicator.
func DetectRemote(location, description string) bool {
	blob := strings.ToLower(location + " " + description)
	for _, ind := range remoteIndicators {
		if strings.Contains(blob, ind) {
			return true
		}
	}
	return false
}

// techVocabulary is the token set scanned for the tech-stack field.
// Tokens with + # . survive normalization (see normalizeToken).
var techVocabulary = []string{
	"go", "golang", "python", "java", "kotlin", "scala", "ruby", "rust",
	"c++", "c#", "php", "swift", "elixir", "typescript", "javascript",
	"react", "vue", "angular", "svelte", "next.js", "node.js", "django",
	"rails", "spring", "flask", "graphql", "grpc", "rest",
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "kafka",
	"rabbitmq", "clickhouse", "cassandra", "dynamodb", "sqlite", "snowflake",
	"aws", "gcp", "azure", "kubernetes", "docker", "terraform", "ansible",
	"linux", "ci/cd", "prometheus", "grafana", "spark", "airflow",
}

// ExtractTechStack scans the text for known technology tokens using
// word-boundary matching and returns the sorted hits.
func ExtractTechStack(text string) []string {
	padded := " " + normalizeTokens(text) + " "
	var out []string
	for _, tok := range techVocabulary {
		if strings.Contains(padded, " "+normalizeTokens(tok)+" ") {
			out = append(out, tok)
		}
	}
	sort.Strings(out)
	return out
}

// normalizeTokens lowercases and turns punctuation into spaces, keeping
// + # . / so tokens like c++, c#, node.js and ci/cd stay intact.
func normalizeTokens(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '+', r == '#', r == '.', r == '/':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
