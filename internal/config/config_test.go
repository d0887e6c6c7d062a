package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 10_000, cfg.UpdateIntervalMS)
	require.Equal(t, 10*time.Second, cfg.UpdateInterval())
	require.InDelta(t, 0.3, cfg.InsightProbability, 1e-9)
	require.Equal(t, 100, cfg.PreviewLength)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boardroom.yaml")
	payload := []byte("update_interval_ms: 2500\ninsight_probability: 0.5\nlog:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, payload, 0o644))
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 2500, cfg.UpdateIntervalMS)
	require.InDelta(t, 0.5, cfg.InsightProbability, 1e-9)
	require.Equal(t, "debug", cfg.Log.Level)
	// Untouched keys keep their defaults.
	require.Equal(t, 100, cfg.PreviewLength)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "boardroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("update_interval_ms: 2500\n"), 0o644))
	t.Setenv(EnvConfigPath, path)
	t.Setenv("BOARDROOM_UPDATE_INTERVAL_MS", "750")
	t.Setenv("BOARDROOM_MINUTES_PATH", "/tmp/minutes.json")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 750, cfg.UpdateIntervalMS)
	require.Equal(t, "/tmp/minutes.json", cfg.MinutesPath)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("BOARDROOM_UPDATE_INTERVAL_MS", "0")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("BOARDROOM_UPDATE_INTERVAL_MS", "1000")
	t.Setenv("BOARDROOM_INSIGHT_PROBABILITY", "1.5")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("BOARDROOM_INSIGHT_PROBABILITY", "abc")
	_, err = Load()
	require.Error(t, err)
}
