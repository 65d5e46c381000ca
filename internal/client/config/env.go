package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables, after
// loading a .env file from the working directory when one exists. Real
// environment variables win over .env entries (godotenv does not override).
//
// Recognized variables:
//
//	REFLECTIONS_BASE_URL        string (e.g. "https://site.example")
//	REFLECTIONS_REQUEST_TIMEOUT duration (e.g. "15s")
//	REFLECTIONS_ONLINE_CHECK    duration (e.g. "30s")
//
// Unparsable durations are ignored; the previous value stays in effect.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("REFLECTIONS_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("REFLECTIONS_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("REFLECTIONS_ONLINE_CHECK"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
}
