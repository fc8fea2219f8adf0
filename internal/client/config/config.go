// Package config holds runtime settings for the eduforum CLI, assembled
// from defaults, an optional JSON file and command-line flags, in that
// order of precedence.
package config

import "time"

// Config holds runtime settings for the eduforum CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the forum REST API.
//   - RequestTimeout: per-call deadline for API requests.
//   - RefreshTimeout: deadline for the token-refresh call.
//   - EditWindowMinutes: how long after creation content stays editable.
//   - DatabasePath: location of the local SQLite session database.
type Config struct {
	ServerBaseURL     string
	RequestTimeout    time.Duration
	RefreshTimeout    time.Duration
	EditWindowMinutes int
	DatabasePath      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 30 * time.Second
	c.RefreshTimeout = 12 * time.Second
	c.EditWindowMinutes = 15
	c.DatabasePath = "eduforum.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
