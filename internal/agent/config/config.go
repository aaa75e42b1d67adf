// Package config loads runtime settings for the agent terminal.
package config

import "time"

// Config holds runtime settings for the customs agent terminal.
//
// Fields:
//   - ServerBaseURL: base URL of the platform REST API.
//   - OnlineCheckInterval: how often the terminal probes backend reachability.
//   - RequestTimeout: overall HTTP timeout for API calls.
//   - DataDir: directory holding the offline buffer and the session file.
type Config struct {
	ServerBaseURL       string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	DataDir             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 15 * time.Second
	c.DataDir = ".taxfree-agent"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
