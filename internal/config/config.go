// Package config loads runtime settings for the FinanzApp CLI.
package config

import "time"

// Config holds runtime settings for the FinanzApp CLI.
//
// Fields:
//   - DatabasePath: path to the local SQLite file backing the store.
//   - SessionValidity: how long a login session stays valid.
//   - SessionSecret: HMAC key used to sign session tokens.
type Config struct {
	DatabasePath    string
	SessionValidity time.Duration
	SessionSecret   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "finanzapp.db"
	c.SessionValidity = 24 * time.Hour
	c.SessionSecret = "finanzapp-dev-secret"
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
