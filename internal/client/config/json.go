package config

import (
	"encoding/json"
	"os"

	"github.com/wandersonmk/sistemasCadastro/internal/flagx"
	"github.com/wandersonmk/sistemasCadastro/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer and
// zero-valued fields mean "not set" and leave the Config untouched.
type JsonConfig struct {
	ProviderURL      string         `json:"provider_url"`
	ProviderKey      string         `json:"provider_key"`
	AdminEndpointURL string         `json:"admin_endpoint_url"`
	DatabaseDSN      string         `json:"database_dsn"`
	RunMigrations    *bool          `json:"run_migrations"`
	SessionFile      string         `json:"session_file"`
	SessionKey       string         `json:"session_key"`
	RequestTimeout   timex.Duration `json:"request_timeout"`
	LogLevel         string         `json:"log_level"`
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c/-config. It panics on read or unmarshal errors.
func parseJson(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.ProviderURL, jc.ProviderURL)
	setString(&cfg.ProviderKey, jc.ProviderKey)
	setString(&cfg.AdminEndpointURL, jc.AdminEndpointURL)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.SessionFile, jc.SessionFile)
	setString(&cfg.SessionKey, jc.SessionKey)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RunMigrations != nil {
		cfg.RunMigrations = *jc.RunMigrations
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
