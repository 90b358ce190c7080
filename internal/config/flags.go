package config

import (
	"flag"
	"os"

	"beervault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-m string   backend mode: auto, local or remote
//	-a string   base URL of the remote blob service
//	-k string   pre-shared backend key
//	-d string   directory of the local document store
//
// The function filters os.Args to only the flags it owns, via
// flagx.FilterArgs, so it does not interfere with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-m", "-a", "-k", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Mode, "m", cfg.Mode, "backend mode: auto, local or remote")
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the remote blob service")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "pre-shared backend key")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "directory of the local document store")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
