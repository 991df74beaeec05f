package match

import (
	"strings"
	"unicode"
)

// Normalize case-folds text and collapses punctuation into whitespace.
// + and # survive as word characters so tokens like c++ and c# keep their
// identity; dots and slashes become spaces, which also normalizes keyword
// forms ("node.js" and "node js" match each other).
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '+', r == '#':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// pad wraps normalized text in sentinel spaces for phrase-boundary checks.
func pad(normalized string) string {
	return " " + normalized + " "
}

// phraseIn checks a word/phrase-boundary match of keyword inside padded,
// which must be pad(Normalize(text)).
func phraseIn(padded, keyword string) bool {
	kw := Normalize(keyword)
	if kw == "" {
		return false
	}
	return strings.Contains(padded, " "+kw+" ")
}

// ContainsKeyword reports a word/phrase-boundary match of keyword in text.
func ContainsKeyword(text, keyword string) bool {
	return phraseIn(pad(Normalize(text)), keyword)
}
