// Package config loads runtime configuration for the reporting CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. NGO_* environment variables, then a dotenv file (-e/-env, or ./.env).
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   API base URL
//	-i int      job-status poll interval (milliseconds)
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:8000/api",
//	  "poll_interval": "2s",
//	  "request_timeout": "30s",
//	  "log_level": "info"
//	}
package config
