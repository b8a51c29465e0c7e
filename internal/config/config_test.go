package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
env: prod
fixture_path: "./fixtures/dashboard.yaml"
http_server:
  address: ":9090"
  timeout: 10s
  idle_timeout: 30s
redis_connection:
  enabled: true
  address: "localhost:6380"
  password: "redis_pass"
  user: "redis_user"
  db: 2
  max_retries: 5
  dial_timeout: 2s
  timeout: 1s
  ttl: 1m
rate_limit:
  rps: 5
  burst: 10
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "./fixtures/dashboard.yaml", cfg.FixturePath)
	assert.Equal(t, ":9090", cfg.AddressHTTP)
	assert.Equal(t, 10*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 30*time.Second, cfg.IdleTimeout)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "localhost:6380", cfg.AddressRedis)
	assert.Equal(t, "redis_pass", cfg.Password)
	assert.Equal(t, "redis_user", cfg.User)
	assert.Equal(t, 2, cfg.DB)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.DialTimeout)
	assert.Equal(t, time.Second, cfg.TimeoutRedis)
	assert.Equal(t, time.Minute, cfg.TTL)
	assert.Equal(t, 5.0, cfg.RPS)
	assert.Equal(t, 10, cfg.Burst)
}

func TestLoad_DefaultValues(t *testing.T) {
	path := writeConfig(t, "env: local\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Empty(t, cfg.FixturePath)
	assert.Equal(t, ":8080", cfg.AddressHTTP)
	assert.Equal(t, 4*time.Second, cfg.TimeoutHTTP)
	assert.Equal(t, 60*time.Second, cfg.IdleTimeout)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 5*time.Minute, cfg.TTL)
	assert.Equal(t, 20.0, cfg.RPS)
	assert.Equal(t, 40, cfg.Burst)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "env: local\nhttp_server:\n  address: \":8080\"\n")
	t.Setenv("HTTP_ADDRESS", ":7070")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.AddressHTTP)
	assert.True(t, cfg.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "env: [unclosed\n")

	cfg, err := Load(path)
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

func TestConfig_String(t *testing.T) {
	cfg := &Config{Env: "local", HTTPServer: HTTPServer{AddressHTTP: ":8080"}}
	out := cfg.String()

	assert.Contains(t, out, "Env: local")
	assert.Contains(t, out, "Address: :8080")
}
