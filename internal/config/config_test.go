package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("COCKPIT_HOME", home)
	for _, key := range []string{"COCKPIT_STORE", "COCKPIT_DB", "COCKPIT_STATE_DIR", "COCKPIT_TICK_MS", "COCKPIT_LOG_USE_CASES", "COCKPIT_SERVE_ADDR"} {
		t.Setenv(key, "")
	}
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, home, cfg.Home)
	assert.Equal(t, StoreSQLite, cfg.Store)
	assert.Equal(t, filepath.Join(home, "cockpit.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(home, "state"), cfg.StateDir)
	assert.Equal(t, 500*time.Millisecond, cfg.TickInterval())
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, DefaultServeAddr, cfg.ServeAddr)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	home := isolate(t)
	yml := "store: file\nstate_dir: flights\ntick_ms: 250\nlog_use_cases: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, StoreFile, cfg.Store)
	assert.Equal(t, filepath.Join(home, "flights"), cfg.StateDir)
	assert.Equal(t, 250, cfg.TickMs)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, filepath.Join(home, "cockpit.db"), cfg.DBPath)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("tick_ms: 250\nserve_addr: 0.0.0.0:9000\n"), 0o644))
	t.Setenv("COCKPIT_TICK_MS", "800")
	t.Setenv("COCKPIT_DB", "/tmp/elsewhere.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.TickMs)
	assert.Equal(t, "/tmp/elsewhere.db", cfg.DBPath)
	assert.Equal(t, "0.0.0.0:9000", cfg.ServeAddr)
}

func TestLoad_TickClamped(t *testing.T) {
	isolate(t)

	t.Setenv("COCKPIT_TICK_MS", "5")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, MinTickMs, cfg.TickMs)

	t.Setenv("COCKPIT_TICK_MS", "60000")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, MaxTickMs, cfg.TickMs)

	t.Setenv("COCKPIT_TICK_MS", "soon")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultTickMs, cfg.TickMs)
}

func TestLoad_UnknownStore(t *testing.T) {
	isolate(t)
	t.Setenv("COCKPIT_STORE", "postgres")

	_, err := Load()
	assert.ErrorContains(t, err, "unknown store")
}

func TestLoad_MalformedFile(t *testing.T) {
	home := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("store: [sqlite\n"), 0o644))

	_, err := Load()
	assert.ErrorContains(t, err, "parsing")
}
