package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/ngoreports/internal/flagx"
)

// parseFlags populates Config from command-line flags:
//
//	-a string   API base URL
//	-i int      job-status poll interval (milliseconds)
//	-t int      per-request timeout (seconds)
//	-l string   log level
//
// Only these flags are picked out of os.Args; the rest belong to other
// parsers.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	pollInterval := fs.Int("i", int(cfg.PollInterval.Milliseconds()), "job status poll interval (in milliseconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.PollInterval = time.Duration(*pollInterval) * time.Millisecond
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
