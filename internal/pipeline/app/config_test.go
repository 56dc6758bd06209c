package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"SESSION_ISSUER", "SESSION_TTL", "LOGIN_DELAY", "SEED_CANDIDATES",
		"ENV", "LOG_LEVEL", "LOG_FORMAT", "PORT", "SHUTDOWN_GRACE_PERIOD",
	} {
		t.Setenv(k, "")
	}

	require.Equal(t, Config{
		SessionIssuer:       "hirejoy",
		SessionTTL:          8 * time.Hour,
		LoginDelay:          0,
		SeedCandidates:      true,
		Env:                 "dev",
		LogLevel:            "info",
		LogFormat:           "json",
		Port:                8080,
		ShutdownGracePeriod: 10 * time.Second,
	}, LoadConfig())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LOGIN_DELAY", "800")
	t.Setenv("SEED_CANDIDATES", "false")
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_FORMAT", "text")

	cfg := LoadConfig()
	require.Equal(t, 30*time.Minute, cfg.SessionTTL)
	require.Equal(t, 800*time.Millisecond, cfg.LoginDelay)
	require.False(t, cfg.SeedCandidates)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("SEED_CANDIDATES", "maybe")
	t.Setenv("SESSION_TTL", "forever")

	cfg := LoadConfig()
	require.Equal(t, 8080, cfg.Port)
	require.True(t, cfg.SeedCandidates)
	require.Equal(t, 8*time.Hour, cfg.SessionTTL)
}
