// Package config handles configuration for the admin endpoints server,
// including defaults, the environment, a JSON overlay and command-line flags.
package config

import (
	"strings"
	"time"

	"github.com/wandersonmk/sistemasCadastro/internal/envx"
	"github.com/wandersonmk/sistemasCadastro/internal/flagx"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - ListenAddr: bind address of the HTTP server.
//   - ProviderURL: base URL of the auth provider.
//   - ServiceRoleKey: the provider's elevated key. Never shipped to clients.
//   - FrontendURL: allowed CORS origin.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	ListenAddr      string
	ProviderURL     string
	ServiceRoleKey  string
	FrontendURL     string
	ShutdownTimeout time.Duration
	LogLevel        string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":3000"
	c.FrontendURL = "http://localhost:3000"
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
}

// listenAddr accepts either a bare port ("8080") or an address.
func listenAddr(port string) string {
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func parseEnv(c *Config) {
	if v := envx.Or("PORT", ""); v != "" {
		c.ListenAddr = listenAddr(v)
	}
	if v := envx.First("NUXT_PUBLIC_SUPABASE_URL", "SUPABASE_URL"); v != "" {
		c.ProviderURL = v
	}
	if v := envx.First("NUXT_SUPABASE_SERVICE_ROLE_KEY", "SUPABASE_SERVICE_ROLE_KEY"); v != "" {
		c.ServiceRoleKey = v
	}
	c.FrontendURL = envx.Or("FRONTEND_URL", c.FrontendURL)
	c.ShutdownTimeout = envx.Duration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)
	c.LogLevel = envx.Or("LOG_LEVEL", c.LogLevel)
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (seeded from .env), an optional JSON file and finally
// command-line flags.
func LoadConfig() *Config {
	if err := envx.LoadDotEnv(flagx.EnvFileFlags()); err != nil {
		panic(err)
	}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
