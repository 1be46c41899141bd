package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_parseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("reads process environment", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvAPIURL, "http://api.example/api")
		t.Setenv(EnvPollInterval, "750ms")
		t.Setenv(EnvRequestTimeout, "5s")
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://api.example/api", cfg.APIBaseURL)
		assert.Equal(t, 750*time.Millisecond, cfg.PollInterval)
		assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
		assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	})

	t.Run("reads env file, process env wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvLogLevel, "error")
		path := writeEnvFile(t, "NGO_API_URL=http://file.example/api\nNGO_LOG_LEVEL=debug\n")
		os.Args = []string{"testbin", "-env", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://file.example/api", cfg.APIBaseURL)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("empty process variable falls back to env file", func(t *testing.T) {
		clearEnv(t)
		path := writeEnvFile(t, "NGO_API_URL=http://file.example/api\nNGO_POLL_INTERVAL=3s\n")
		os.Args = []string{"testbin", "-e", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseEnv(cfg)

		assert.Equal(t, "http://file.example/api", cfg.APIBaseURL)
		assert.Equal(t, 3*time.Second, cfg.PollInterval)
	})

	t.Run("missing default file ignored", func(t *testing.T) {
		clearEnv(t)
		t.Chdir(t.TempDir())
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NotPanics(t, func() { parseEnv(cfg) })
		assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	})

	t.Run("missing explicit file panics", func(t *testing.T) {
		clearEnv(t)
		os.Args = []string{"testbin", "-e", filepath.Join(t.TempDir(), "nope.env")}

		require.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("bad duration panics", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvPollInterval, "soon")
		os.Args = []string{"testbin"}

		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
