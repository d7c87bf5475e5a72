package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AURENOX_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "http://localhost:1337", cfg.Content.BaseURL)
	require.Equal(t, 10*time.Second, cfg.Content.Timeout)
	require.Equal(t, 3, cfg.UI.SectionThreshold)
	require.Equal(t, 80, cfg.UI.MobileBreakpoint)
	require.Equal(t, "info", cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := []byte(`
[content]
base_url = "https://cms.aurenox.cz/"
timeout = "3s"

[ui]
section_threshold = 5

[keys]
submit = ["f5"]
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("HOME", dir)
	t.Setenv("AURENOX_CONFIG", path)
	t.Setenv("AURENOX_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://cms.aurenox.cz", cfg.Content.BaseURL, "trailing slash is trimmed")
	require.Equal(t, 3*time.Second, cfg.Content.Timeout)
	require.Equal(t, 5, cfg.UI.SectionThreshold)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, []string{"f5"}, cfg.Keys["submit"])
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("AURENOX_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Config{Content: ContentConfig{BaseURL: "http://localhost:1337", Timeout: time.Second}}
	require.NoError(t, base.Validate())

	noURL := base
	noURL.Content.BaseURL = ""
	require.Error(t, noURL.Validate())

	relative := base
	relative.Content.BaseURL = "/api"
	require.Error(t, relative.Validate())

	noTimeout := base
	noTimeout.Content.Timeout = 0
	require.Error(t, noTimeout.Validate())

	negative := base
	negative.UI.SectionThreshold = -1
	require.Error(t, negative.Validate())
}
