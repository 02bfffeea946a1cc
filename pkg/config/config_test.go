package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
database:
  host: db.internal
  user: app
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 3031, cfg.Server.Port)
	require.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, "countries", cfg.Database.Database)
	require.Equal(t, "cache/summary.png", cfg.Summary.CachePath)
	require.Equal(t, "@every 10m", cfg.Summary.Schedule)
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)

	require.Equal(t, "https://open.er-api.com/v6/latest/USD", cfg.Upstream.RatesURL)
	require.Contains(t, cfg.Upstream.CountriesURL, "restcountries.com/v2/all")
	require.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
	require.InDelta(t, 5.0, cfg.Upstream.RateLimit, 0.0001)
	require.Equal(t, 2, cfg.Upstream.Burst)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8088
database:
  host: localhost
summary:
  cache_path: /tmp/summary.png
  schedule: ""
upstream:
  rates_url: http://rates.local/latest
  timeout: 5s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, 8088, cfg.Server.Port)
	require.Equal(t, "/tmp/summary.png", cfg.Summary.CachePath)
	require.Empty(t, cfg.Summary.Schedule)
	require.Equal(t, "http://rates.local/latest", cfg.Upstream.RatesURL)
	require.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
}

func TestLoad_LegacyEnvironmentNames(t *testing.T) {
	t.Setenv("DB_HOST", "legacy-host")
	t.Setenv("DB_USER", "legacy-user")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "legacy_db")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "legacy-host", cfg.Database.Host)
	require.Equal(t, "legacy-user", cfg.Database.User)
	require.Equal(t, "secret", cfg.Database.Password)
	require.Equal(t, "legacy_db", cfg.Database.Database)
}

func TestLoad_InvalidPortRejected(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 70000
`)

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "server.port")
}

func TestLoad_UpstreamEnvironmentOverrides(t *testing.T) {
	t.Setenv("UPSTREAM_COUNTRIES_URL", "http://countries.local/all")
	t.Setenv("UPSTREAM_RATES_URL", "http://rates.local/USD")
	t.Setenv("UPSTREAM_TIMEOUT", "7s")
	t.Setenv("UPSTREAM_RATE_LIMIT", "2.5")
	t.Setenv("UPSTREAM_BURST", "4")
	t.Setenv("UPSTREAM_USER_AGENT", "mirror-test")

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "http://countries.local/all", cfg.Upstream.CountriesURL)
	require.Equal(t, "http://rates.local/USD", cfg.Upstream.RatesURL)
	require.Equal(t, 7*time.Second, cfg.Upstream.Timeout)
	require.InDelta(t, 2.5, cfg.Upstream.RateLimit, 0.0001)
	require.Equal(t, 4, cfg.Upstream.Burst)
	require.Equal(t, "mirror-test", cfg.Upstream.UserAgent)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(LoggingConfig{Level: "loud", Format: "json"})
	require.Error(t, err)

	logger, err := NewLogger(LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	require.NotNil(t, logger)
}
