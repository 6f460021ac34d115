package config

import (
	"encoding/json"
	"os"

	"github.com/wandersonmk/sistemasCadastro/internal/flagx"
	"github.com/wandersonmk/sistemasCadastro/internal/timex"
)

// JsonConfig is the JSON shape of the server configuration file. Duration
// fields accept "10s" style strings as well as integer nanoseconds. Empty
// fields leave the Config untouched.
type JsonConfig struct {
	ListenAddr      string         `json:"listen_addr"`
	ProviderURL     string         `json:"provider_url"`
	ServiceRoleKey  string         `json:"service_role_key"`
	FrontendURL     string         `json:"frontend_url"`
	ShutdownTimeout timex.Duration `json:"shutdown_timeout"`
	LogLevel        string         `json:"log_level"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson loads the file named by -c/-config into config. It panics when
// the file cannot be read or holds invalid JSON.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFileFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	setString(&config.ListenAddr, c.ListenAddr)
	setString(&config.ProviderURL, c.ProviderURL)
	setString(&config.ServiceRoleKey, c.ServiceRoleKey)
	setString(&config.FrontendURL, c.FrontendURL)
	setString(&config.LogLevel, c.LogLevel)
	if c.ShutdownTimeout.Duration > 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
