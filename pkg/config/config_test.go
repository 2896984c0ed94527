package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_YAMLAndDefaults(t *testing.T) {
	t.Setenv("MORALIS_API_KEY", "")
	t.Setenv("PORT", "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yamlData := `
server:
  host: 127.0.0.1
  port: "9000"
gateway:
  api_key: from-file
  timeout: 5s
narrative:
  model: gpt-4o
ratio_thresholds:
  "Buy/Sell Ratio":
    min: 0.8
    max: 2
`
	require.NoError(t, os.WriteFile(path, []byte(yamlData), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "from-file", cfg.Gateway.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, DefaultGatewayBaseURL, cfg.Gateway.BaseURL)
	assert.Equal(t, "gpt-4o", cfg.Narrative.Model)
	assert.Equal(t, DefaultSessionTTL, cfg.Auth.SessionTTL)
	assert.Equal(t, DefaultSessionCookie, cfg.Auth.CookieName)

	rule, ok := cfg.RatioThresholds["Buy/Sell Ratio"]
	require.True(t, ok)
	require.NotNil(t, rule.Min)
	require.NotNil(t, rule.Max)
	assert.Nil(t, rule.Equals)
	assert.Equal(t, 0.8, *rule.Min)
	assert.Equal(t, 2.0, *rule.Max)
}

func TestLoadFile_MissingFileUsesEnv(t *testing.T) {
	t.Setenv("MORALIS_API_KEY", "moralis-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")
	t.Setenv("PASSWORD", "hunter2")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PORT", "3000")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "moralis-key", cfg.Gateway.APIKey)
	assert.Equal(t, "openai-key", cfg.Narrative.APIKey)
	assert.Equal(t, "hunter2", cfg.Auth.Password)
	assert.Empty(t, cfg.Auth.JWTSecret)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, DefaultNarrativeModel, cfg.Narrative.Model)
	assert.Equal(t, DefaultUpstreamTimeout, cfg.Narrative.Timeout)
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
