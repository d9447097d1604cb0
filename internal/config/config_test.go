package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_FlagsAndDefaults(t *testing.T) {
	cfg, err := Load([]string{"--jwt-key", "secret", "--timezone", "UTC", "--insecure"})
	require.NoError(t, err)
	require.Equal(t, "secret", cfg.JWTKey)
	require.Equal(t, ":8443", cfg.Addr)
	require.Equal(t, 12*time.Hour, cfg.AccessTTL)
	require.Equal(t, 5, cfg.LoginMaxFails)
	require.True(t, cfg.Insecure)
	require.Equal(t, "UTC", cfg.Location.String())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("TQ_JWT_KEY", "from-env")
	t.Setenv("TQ_LOGIN_MAX_FAILS", "3")
	t.Setenv("TQ_ACCESS_TTL", "1h")

	cfg, err := Load(nil)
	require.NoError(t, err)
	require.Equal(t, "from-env", cfg.JWTKey)
	require.Equal(t, 3, cfg.LoginMaxFails)
	require.Equal(t, time.Hour, cfg.AccessTTL)
}

func TestLoad_FlagBeatsEnv(t *testing.T) {
	t.Setenv("TQ_ADDR", ":1111")

	cfg, err := Load([]string{"--jwt-key", "k", "--addr", ":2222"})
	require.NoError(t, err)
	require.Equal(t, ":2222", cfg.Addr)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tq.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jwt-key: file-key\ntimezone: Europe/Berlin\n"), 0o600))

	cfg, err := Load([]string{"--config", path})
	require.NoError(t, err)
	require.Equal(t, "file-key", cfg.JWTKey)
	require.Equal(t, "Europe/Berlin", cfg.Location.String())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(nil)
	require.ErrorContains(t, err, "jwt")

	_, err = Load([]string{"--jwt-key", "k", "--timezone", "Mars/Olympus"})
	require.ErrorContains(t, err, "timezone")

	_, err = Load([]string{"--jwt-key", "k", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)

	_, err = Load([]string{"--no-such-flag"})
	require.Error(t, err)
}
