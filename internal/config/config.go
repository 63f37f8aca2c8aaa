// Package config assembles runtime settings for the CLI from, in order of
// increasing precedence: built-in defaults, environment (including a .env
// file when present), a JSON config file, and command-line flags.
package config

import "time"

// Config holds runtime settings for the expense CLI.
type Config struct {
	// ServerBaseURL is the root URL of the remote ledger service.
	ServerBaseURL string

	// RequestTimeout bounds every outgoing HTTP request.
	RequestTimeout time.Duration

	// LocalDBPath is the SQLite file holding the persisted session. An
	// empty path switches the client to an in-memory session store.
	LocalDBPath string

	// NotificationTTL is how long a status notification stays visible.
	NotificationTTL time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.RequestTimeout = 10 * time.Second
	c.LocalDBPath = "spendcli.db"
	c.NotificationTTL = 3 * time.Second
}

// LoadConfig builds a Config by layering defaults, environment, JSON file
// and flags. Later sources override earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
