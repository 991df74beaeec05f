package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout-engine/internal/domain"
)

const sampleYAML = `
app:
  port: 4000
  data_dir: /tmp/scout
polling:
  spec: "@every 2h"
  expiry_threshold: 5
companies:
  - name: Acme
    provider: lever
    board_slug: acme
  - name: Globex
    provider: workday
    board_url: https://globex.wd1.myworkdayjobs.com/en-US/careers
  - name: Initech
    provider: custom
    active: false
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadAndValidate(t *testing.T) {
	cfg, err := Load(writeTemp(t, sampleYAML))
	require.NoError(t, err)

	out, res := NormalizeAndValidate(cfg)
	require.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Equal(t, 4000, out.App.Port)
	assert.Equal(t, "@every 2h", out.Polling.Spec)
	assert.Equal(t, 5, out.Polling.ExpiryThreshold)
	require.Len(t, out.Companies, 3)

	acme := out.Companies[0].Company()
	assert.Equal(t, domain.ProviderLever, acme.Provider)
	assert.True(t, acme.Active)

	initech := out.Companies[2].Company()
	assert.False(t, initech.Active)
}

func TestDefaultsApplied(t *testing.T) {
	out, res := NormalizeAndValidate(Config{})
	assert.True(t, res.OK())
	assert.Equal(t, "@every 6h", out.Polling.Spec)
	assert.Equal(t, 3, out.Polling.ExpiryThreshold)
	assert.NotZero(t, out.App.Port)
	assert.NotZero(t, out.Scrape.RequestsPerSecond)
}

func TestValidateRejectsMissingIdentifiers(t *testing.T) {
	cfg, err := Load(writeTemp(t, `
companies:
  - name: Broken
    provider: greenhouse
  - name: AlsoBroken
    provider: workday
  - name: Mystery
    provider: taleo
`))
	require.NoError(t, err)

	_, res := NormalizeAndValidate(cfg)
	require.False(t, res.OK())
	assert.Len(t, res.Errors, 3)
}

func TestEnsureUserConfigCopiesDefault(t *testing.T) {
	dir := t.TempDir()
	def := filepath.Join(dir, "default.yml")
	require.NoError(t, os.WriteFile(def, []byte(sampleYAML), 0o644))

	dataDir := t.TempDir()
	p, err := EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "config.yml"), p)

	// Second call must not overwrite the user copy.
	require.NoError(t, os.WriteFile(p, []byte("app:\n  port: 9999\n"), 0o644))
	p2, err := EnsureUserConfig(dataDir, def)
	require.NoError(t, err)
	assert.Equal(t, p, p2)
	b, err := os.ReadFile(p2)
	require.NoError(t, err)
	assert.Contains(t, string(b), "9999")
}
