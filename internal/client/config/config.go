package config

import "time"

// Config holds runtime settings of the reporting CLI.
//
// Fields:
//   - APIBaseURL: absolute base URL of the reporting API, e.g. http://host/api.
//   - PollInterval: cadence of job-status lookups after an upload.
//   - RequestTimeout: upper bound of every single HTTP request.
//   - LogLevel: debug|info|warn|error.
type Config struct {
	APIBaseURL     string
	PollInterval   time.Duration
	RequestTimeout time.Duration
	LogLevel       string
}

const (
	DefaultAPIBaseURL     = "http://localhost:8000/api"
	DefaultPollInterval   = 2 * time.Second
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

// LoadDefaults populates c with the built-in defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.PollInterval = DefaultPollInterval
	c.RequestTimeout = DefaultRequestTimeout
	c.LogLevel = DefaultLogLevel
}

// LoadConfig applies defaults, then the environment, then an optional JSON
// file, then command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
