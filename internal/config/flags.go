package config

import (
	"flag"
	"os"
	"time"

	"github.com/ispolnov/spendcli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   base URL of the ledger service
//	-d string   path to the local session database
//	-t int      request timeout in seconds
//
// Only these flags are parsed; the rest of os.Args is filtered out so other
// components can define their own.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "s", cfg.ServerBaseURL, "base URL of the ledger service")
	fs.StringVar(&cfg.LocalDBPath, "d", cfg.LocalDBPath, "path to the local session database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
