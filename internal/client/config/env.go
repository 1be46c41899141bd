package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/ngoreports/internal/flagx"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvAPIURL         = "NGO_API_URL"
	EnvPollInterval   = "NGO_POLL_INTERVAL"
	EnvRequestTimeout = "NGO_REQUEST_TIMEOUT"
	EnvLogLevel       = "NGO_LOG_LEVEL"
)

// defaultEnvFile is read when present; its absence is not an error.
const defaultEnvFile = ".env"

// parseEnv overlays cfg with NGO_* variables. Values come from the process
// environment first and from a dotenv file second. An empty variable counts
// as unset. The file is the one named
// by -e/-env, or ./.env when that flag is absent. A file named explicitly
// must exist. Malformed durations panic.
func parseEnv(cfg *Config) {
	explicit := flagx.EnvFileFlags()
	file := explicit
	if file == "" {
		file = defaultEnvFile
	}

	fileVars, err := godotenv.Read(file)
	if err != nil {
		if explicit != "" || !errors.Is(err, fs.ErrNotExist) {
			panic(fmt.Errorf("read env file %s: %w", file, err))
		}
		fileVars = map[string]string{}
	}

	applyEnv(cfg, func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	})
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAPIURL); ok && v != "" {
		cfg.APIBaseURL = v
	}
	if v, ok := lookup(EnvPollInterval); ok && v != "" {
		cfg.PollInterval = mustDuration(EnvPollInterval, v)
	}
	if v, ok := lookup(EnvRequestTimeout); ok && v != "" {
		cfg.RequestTimeout = mustDuration(EnvRequestTimeout, v)
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}

func mustDuration(key, v string) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	return d
}
