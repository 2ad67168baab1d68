package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CHESSCHAIN_CONFIG", "")
	return home
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	home := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 900*time.Millisecond, cfg.Timing.LoginDelay)
	require.Equal(t, 1800*time.Millisecond, cfg.Timing.SearchDelay)
	require.False(t, cfg.Session.AutoGuest)
	require.True(t, cfg.UI.AltScreen)
	require.Equal(t, "info", cfg.Log.Level)
	require.Equal(t, filepath.Join(home, ".local", "state", "chesschain", "chesschain.log"), cfg.Log.Path)
}

func TestLoadFileAndEnvOverrides(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	data := []byte(`
[timing]
login_delay = "250ms"
search_delay = "3s"

[session]
auto_guest = true

[log]
level = "debug"
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("CHESSCHAIN_TIMING_SEARCH_DELAY", "5s")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, cfg.Timing.LoginDelay)
	require.Equal(t, 5*time.Second, cfg.Timing.SearchDelay, "env beats file")
	require.True(t, cfg.Session.AutoGuest)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsNegativeDelay(t *testing.T) {
	isolate(t)
	t.Setenv("CHESSCHAIN_TIMING_LOGIN_DELAY", "-1s")

	_, err := Load("")
	require.Error(t, err)
}

func TestLoadMissingExplicitFileFallsBackToDefaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(filepath.Join(home, "nope", "config.toml"))
	require.NoError(t, err)
	require.Equal(t, DefaultLoginDelay, cfg.Timing.LoginDelay)
}

func TestSaveRoundTrip(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, ".config", "chesschain", "config.toml")

	want := Default()
	want.Timing.SearchDelay = 2 * time.Second
	want.Session.AutoGuest = true
	want.Log.Level = "warn"
	want.UI.AltScreen = false
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
