package config

import (
	"flag"
	"os"
	"time"

	"github.com/wandersonmk/sistemasCadastro/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. os.Args is
// filtered with flagx.FilterArgs first so flags owned by other loaders
// (-c, -env) do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-u", "-k", "-a", "-d", "-m", "-s", "-p", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ProviderURL, "u", cfg.ProviderURL, "provider base URL")
	fs.StringVar(&cfg.ProviderKey, "k", cfg.ProviderKey, "provider public key")
	fs.StringVar(&cfg.AdminEndpointURL, "a", cfg.AdminEndpointURL, "admin endpoints base URL")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.BoolVar(&cfg.RunMigrations, "m", cfg.RunMigrations, "run database migrations")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "session file")
	fs.StringVar(&cfg.SessionKey, "p", cfg.SessionKey, "passphrase encrypting the session file")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
