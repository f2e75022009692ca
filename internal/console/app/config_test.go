package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	require.Equal(t, "file", cfg.CredStore)
	require.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "dev", cfg.Env)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "text", cfg.LogFormat)
	require.Contains(t, cfg.CredFile, ".bloodlink")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("BLOODLINK_API_URL", "https://api.example.com")
	t.Setenv("BLOODLINK_CRED_STORE", "sqlite")
	t.Setenv("BLOODLINK_CRED_DB", "/tmp/creds.db")
	t.Setenv("BLOODLINK_HTTP_TIMEOUT", "30s")
	t.Setenv("LOG_FORMAT", "json")

	cfg := LoadConfig()

	require.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	require.Equal(t, "sqlite", cfg.CredStore)
	require.Equal(t, "/tmp/creds.db", cfg.CredDB)
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigBadDurationFallsBack(t *testing.T) {
	t.Setenv("BLOODLINK_HTTP_TIMEOUT", "soon")

	cfg := LoadConfig()
	require.Equal(t, 10*time.Second, cfg.HTTPTimeout)
}
