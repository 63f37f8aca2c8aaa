package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("SPENDCLI_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("SPENDCLI_DB_PATH"); v != "" {
		cfg.LocalDBPath = v
	}
	if v := os.Getenv("SPENDCLI_REQUEST_TIMEOUT"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
}
