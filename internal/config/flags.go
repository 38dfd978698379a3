package config

import (
	"flag"

	"github.com/dmitrijs2005/lechworld/internal/flagx"
)

// parseFlags overlays cfg with -l, -d, -k and -v. Other arguments are
// filtered out first so the -c flag and REPL input do not interfere.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-l", "-d", "-k", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.LocalDBPath, "l", cfg.LocalDBPath, "path of the local database")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "family database DSN")
	fs.StringVar(&cfg.CredentialsKey, "k", cfg.CredentialsKey, "storage key for remembered credentials")
	fs.StringVar(&cfg.LogLevel, "v", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
