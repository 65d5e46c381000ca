// Package config loads runtime configuration for the reflections CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally from a .env file (see parseEnv).
//  3. Optional JSON file (see parseJSON) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend server
//	-t int      request timeout (seconds)
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://site.example",
//	  "request_timeout": "15s",
//	  "online_check_interval": "30s"
//	}
package config
