package config

import (
	"flag"
	"os"
	"time"

	"github.com/dcastano/finanzapp/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path to the local database file (default from Config)
//	-s int      session validity in hours (default from Config)
//
// The function filters os.Args to only include the flags it knows about
// to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	sessionValidity := fs.Int("s", int(cfg.SessionValidity.Hours()), "session validity (in hours)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SessionValidity = time.Duration(*sessionValidity) * time.Hour
}
