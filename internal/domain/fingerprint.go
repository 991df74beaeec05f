package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint derives the stable identity of a posting from company and
// title only. URL and location are deliberately excluded so re-scrapes of
// the same title under the same company resolve to the same identity even
// when the posting URL changes. Two distinct same-titled postings at one
// company therefore collapse into one identity; that matches the tracked
// behavior and is kept on purpose.
func Fingerprint(company, title string) string {
	norm := func(s string) string {
		return strings.Join(strings.Fields(strings.ToLower(s)), " ")
	}
	sum := sha256.Sum256([]byte(norm(company) + "|" + norm(title)))
	return hex.EncodeToString(sum[:])
}
