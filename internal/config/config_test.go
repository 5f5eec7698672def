package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no provider keys set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.Generation.MaxAttempts)
	assert.Equal(t, 10, cfg.Generation.DefaultCount)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
	assert.False(t, cfg.AIEnabled())
	assert.False(t, cfg.Production())
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := isolate(t)
	file := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
env: production
generation:
  max_attempts: 50
  max_count: 40
server:
  read_timeout: 3s
llm:
  provider: mock
`), 0o644))

	t.Setenv("WORKSHEETZ_GENERATION_MAX_COUNT", "30")
	t.Setenv("WORKSHEETZ_LOG_LEVEL", "debug")

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.True(t, cfg.Production())
	assert.Equal(t, 50, cfg.Generation.MaxAttempts)
	assert.Equal(t, 30, cfg.Generation.MaxCount, "environment overrides the file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.True(t, cfg.AIEnabled())
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("WORKSHEETZ_GENERATION_CONCURRENCY=2\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("WORKSHEETZ_GENERATION_CONCURRENCY") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Generation.Concurrency)
}

func TestDiscoverProvider(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
}

func TestExplicitProviderNeedsKey(t *testing.T) {
	isolate(t)
	t.Setenv("WORKSHEETZ_LLM_PROVIDER", "anthropic")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WORKSHEETZ_LLM_ANTHROPIC_API_KEY")
}

func TestMissingExplicitFile(t *testing.T) {
	isolate(t)
	_, err := Load("does-not-exist.yaml")
	require.Error(t, err)
}

func TestValidateRanges(t *testing.T) {
	isolate(t)
	cfg, err := Load("")
	require.NoError(t, err)

	bad := *cfg
	bad.Generation.DefaultCount = bad.Generation.MaxCount + 1
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Generation.Concurrency = 0
	assert.Error(t, bad.Validate())
}
