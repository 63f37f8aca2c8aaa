package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/ispolnov/spendcli/internal/flagx"
)

// jsonConfig is the DTO for the optional JSON config file. Durations are
// given in seconds.
type jsonConfig struct {
	ServerBaseURL         string `json:"server_base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	LocalDBPath           string `json:"local_db_path"`
}

// parseJSON overlays Config with values from the file named by -c/-config.
// No flag, no file read. A present but unreadable or malformed file is a
// hard error: the user explicitly asked for it.
func parseJSON(cfg *Config) {
	path := flagx.JSONConfigFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.LocalDBPath != "" {
		cfg.LocalDBPath = jc.LocalDBPath
	}
}
