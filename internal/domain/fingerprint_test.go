package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprintStableAcrossFormatting(t *testing.T) {
	a := Fingerprint("Acme Corp", "Senior Backend Engineer")
	b := Fingerprint("  acme   corp ", "SENIOR Backend\tEngineer")
	assert.Equal(t, a, b)
}

func TestFingerprintIgnoresEverythingButCompanyAndTitle(t *testing.T) {
	// Same company+title must collide regardless of where the posting lives.
	a := Fingerprint("Acme", "Platform Engineer")
	b := Fingerprint("Acme", "Platform Engineer")
	assert.Equal(t, a, b)

	assert.NotEqual(t, Fingerprint("Acme", "Platform Engineer"), Fingerprint("Acme", "Platform Engineer II"))
	assert.NotEqual(t, Fingerprint("Acme", "Platform Engineer"), Fingerprint("Globex", "Platform Engineer"))
}

func TestFingerprintIsHexSHA256(t *testing.T) {
	fp := Fingerprint("Acme", "SRE")
	assert.Len(t, fp, 64)
}
