package envx

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirst_PrefersEarlierKeys(t *testing.T) {
	t.Setenv("NUXT_PUBLIC_SUPABASE_URL", "")
	t.Setenv("SUPABASE_URL", "https://fallback.supabase.co")

	assert.Equal(t, "https://fallback.supabase.co", First("NUXT_PUBLIC_SUPABASE_URL", "SUPABASE_URL"))

	t.Setenv("NUXT_PUBLIC_SUPABASE_URL", "https://primary.supabase.co")
	assert.Equal(t, "https://primary.supabase.co", First("NUXT_PUBLIC_SUPABASE_URL", "SUPABASE_URL"))
}

func TestOrBoolDuration(t *testing.T) {
	t.Setenv("ENVX_STR", "")
	t.Setenv("ENVX_BOOL", "true")
	t.Setenv("ENVX_BAD_BOOL", "perhaps")
	t.Setenv("ENVX_DUR", "5s")
	t.Setenv("ENVX_SECS", "7")
	t.Setenv("ENVX_BAD_DUR", "soon")

	assert.Equal(t, "fallback", Or("ENVX_STR", "fallback"))
	assert.True(t, Bool("ENVX_BOOL", false))
	assert.False(t, Bool("ENVX_BAD_BOOL", false))
	assert.Equal(t, 5*time.Second, Duration("ENVX_DUR", time.Second))
	assert.Equal(t, 7*time.Second, Duration("ENVX_SECS", time.Second))
	assert.Equal(t, time.Second, Duration("ENVX_BAD_DUR", time.Second))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("ENVX_FROM_FILE=loaded\nENVX_PRESET=file\n"), 0o600))

	t.Setenv("ENVX_PRESET", "process")
	t.Cleanup(func() { os.Unsetenv("ENVX_FROM_FILE") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("ENVX_FROM_FILE"))
	assert.Equal(t, "process", os.Getenv("ENVX_PRESET"), "existing variables win over the file")
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
