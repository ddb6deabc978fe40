package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInitializeWithoutFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, 1024, cfg.Agent.MailboxSize)
	assert.Equal(t, 30*time.Second, cfg.Actions.Timeout.Std())

	def := cfg.ProfileRegistry.Default()
	assert.Equal(t, "default", def.Name)
	assert.NotEmpty(t, def.Models)
}

func TestInitializeMergesUserOverDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  listen_addr: ":9090"
agent:
  max_tokens: 2048
shell:
  smart_wait: 250ms
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, 2048, cfg.Agent.MaxTokens)
	assert.Equal(t, 250*time.Millisecond, cfg.Shell.SmartWait.Std())
	// Untouched defaults survive the merge.
	assert.Equal(t, 1024, cfg.Agent.MailboxSize)
	assert.Equal(t, "default", cfg.DefaultProfile)
}

func TestInitializeUserProfiles(t *testing.T) {
	path := writeConfig(t, `
default_profile: deep
profiles:
  deep:
    models: [claude-sonnet-4-5, gpt-5]
    capabilities: [core, delegation]
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)

	deep, ok := cfg.ProfileRegistry.Get("deep")
	require.True(t, ok)
	assert.Equal(t, []string{"claude-sonnet-4-5", "gpt-5"}, deep.Models)
	assert.Equal(t, "deep", cfg.ProfileRegistry.Default().Name)

	// Built-in profiles are still present.
	_, ok = cfg.ProfileRegistry.Get("lightweight")
	assert.True(t, ok)
}

func TestInitializeExpandsEnvironment(t *testing.T) {
	t.Setenv("CONCLAVE_TEST_ADDR", ":7070")
	path := writeConfig(t, `
server:
  listen_addr: "{{.CONCLAVE_TEST_ADDR}}"
`)

	cfg, err := Initialize(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.ListenAddr)
}

func TestInitializeRejectsInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [not: a: mapping")

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeRejectsUnknownDefaultProfile(t *testing.T) {
	path := writeConfig(t, "default_profile: nonexistent")

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}

func TestInitializeRejectsUnknownCapability(t *testing.T) {
	path := writeConfig(t, `
profiles:
  weird:
    models: [gpt-5]
    capabilities: [teleportation]
`)

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "teleportation")
}

func TestInitializeRejectsBadDuration(t *testing.T) {
	path := writeConfig(t, `
shell:
  smart_wait: quickly
`)

	_, err := Initialize(context.Background(), path)
	require.Error(t, err)
}

func TestPricingTableConversion(t *testing.T) {
	cfg := Default()
	table := cfg.PricingTable()

	cost := table.Cost("claude-sonnet-4-5", 1_000_000, 0)
	assert.Equal(t, "3", cost.String())
}
