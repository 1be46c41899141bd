package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/ngoreports/internal/flagx"
	"github.com/dmitrijs2005/ngoreports/internal/timex"
)

// JsonConfig is the on-disk shape of the -c/-config file. Intervals use
// timex.Duration, so both "2s" and integer nanoseconds are accepted.
type JsonConfig struct {
	APIURL         string         `json:"api_url"`
	PollInterval   timex.Duration `json:"poll_interval"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       string         `json:"log_level"`
}

// parseJson overlays cfg with the non-zero values of the JSON file named by
// -c or -config. Without that flag nothing happens. Read and decode errors
// panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIURL != "" {
		cfg.APIBaseURL = jc.APIURL
	}
	if jc.PollInterval.Duration > 0 {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
