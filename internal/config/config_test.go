package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearScanEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"FINGERPRINT_TOOL_PATH", "SCAN_SCRATCH_DIR", "SCAN_DEBUG", "SCAN_WORKERS", "SCAN_DELTA_MS"} {
		orig, had := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if had {
				os.Setenv(key, orig)
			}
		})
	}
}

func TestLoadRequiresToolPath(t *testing.T) {
	clearScanEnv(t)
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FINGERPRINT_TOOL_PATH")
}

func TestLoadDefaults(t *testing.T) {
	clearScanEnv(t)
	os.Setenv("FINGERPRINT_TOOL_PATH", "/usr/local/bin/fpscan")
	t.Cleanup(func() { os.Unsetenv("FINGERPRINT_TOOL_PATH") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/usr/local/bin/fpscan", cfg.FingerprintToolPath)
	assert.Equal(t, "/tmp/sidechain_scan", cfg.ScratchDir)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 100, cfg.DeltaMs)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestLoadOverrides(t *testing.T) {
	clearScanEnv(t)
	os.Setenv("FINGERPRINT_TOOL_PATH", "/usr/local/bin/fpscan")
	os.Setenv("SCAN_SCRATCH_DIR", "/var/tmp/scan")
	os.Setenv("SCAN_DEBUG", "true")
	os.Setenv("SCAN_WORKERS", "3")
	os.Setenv("SCAN_DELTA_MS", "50")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/scan", cfg.ScratchDir)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 50, cfg.DeltaMs)
}
