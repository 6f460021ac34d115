package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-u", "https://p.co", "-s", "service", "-f", "https://front", "-t", "5", "-l", "debug"},
			expected: &Config{
				ListenAddr:      "127.0.0.1:9090",
				ProviderURL:     "https://p.co",
				ServiceRoleKey:  "service",
				FrontendURL:     "https://front",
				ShutdownTimeout: 5 * time.Second,
				LogLevel:        "debug",
			},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "cfg.json", "-env", ".env", "-k", "key", "-a", ":1"},
			expected: &Config{ListenAddr: ":1"},
		},
		{name: "bad timeout", args: []string{"-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)
			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
