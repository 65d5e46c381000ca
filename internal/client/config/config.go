package config

import "time"

// Config holds runtime settings for the reflections CLI.
//
// Fields:
//   - BaseURL: root URL of the portfolio backend, without the /api suffix.
//   - RequestTimeout: upper bound for one API round-trip; superseded list
//     fetches are discarded rather than cancelled, so this bounds how long
//     a stale request can hold resources.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	BaseURL             string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 15 * time.Second
	c.OnlineCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file, if present), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
