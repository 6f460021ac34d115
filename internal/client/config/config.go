package config

import (
	"time"

	"github.com/wandersonmk/sistemasCadastro/internal/envx"
	"github.com/wandersonmk/sistemasCadastro/internal/flagx"
)

// Config holds runtime settings for the client.
type Config struct {
	ProviderURL      string
	ProviderKey      string
	AdminEndpointURL string
	DatabaseDSN      string
	RunMigrations    bool
	SessionFile      string
	SessionKey       string
	RequestTimeout   time.Duration
	LogLevel         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.AdminEndpointURL = "http://127.0.0.1:3000"
	c.RequestTimeout = 30 * time.Second
	c.LogLevel = "warn"
}

// parseEnv overlays values from the environment. Unset variables keep the
// current value.
func parseEnv(c *Config) {
	if v := envx.First("NUXT_PUBLIC_SUPABASE_URL", "SUPABASE_URL"); v != "" {
		c.ProviderURL = v
	}
	if v := envx.First("NUXT_PUBLIC_SUPABASE_KEY", "SUPABASE_KEY"); v != "" {
		c.ProviderKey = v
	}
	c.AdminEndpointURL = envx.Or("ADMIN_ENDPOINT_URL", c.AdminEndpointURL)
	c.DatabaseDSN = envx.Or("DATABASE_URL", c.DatabaseDSN)
	c.RunMigrations = envx.Bool("RUN_MIGRATIONS", c.RunMigrations)
	c.SessionFile = envx.Or("SESSION_FILE", c.SessionFile)
	c.SessionKey = envx.Or("SESSION_KEY", c.SessionKey)
	c.RequestTimeout = envx.Duration("REQUEST_TIMEOUT", c.RequestTimeout)
	c.LogLevel = envx.Or("LOG_LEVEL", c.LogLevel)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
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
