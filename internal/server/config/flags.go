package config

import (
	"flag"
	"os"
	"time"

	"github.com/wandersonmk/sistemasCadastro/internal/flagx"
)

// parseFlags populates server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   bind address (e.g., ":3000")
//	-u string   provider base URL
//	-s string   provider service role key
//	-f string   frontend URL allowed by CORS
//	-t int      shutdown timeout, seconds
//	-l string   log level
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-s", "-f", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.ProviderURL, "u", config.ProviderURL, "provider base URL")
	fs.StringVar(&config.ServiceRoleKey, "s", config.ServiceRoleKey, "provider service role key")
	fs.StringVar(&config.FrontendURL, "f", config.FrontendURL, "frontend URL (CORS origin)")
	shutdownTimeout := fs.Int("t", int(config.ShutdownTimeout.Seconds()), "shutdown timeout (in seconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.ShutdownTimeout = time.Duration(*shutdownTimeout) * time.Second
}
