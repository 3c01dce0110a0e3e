package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every path Load touches at temp directories.
func isolate(t *testing.T) (home, cfgDir string) {
	t.Helper()
	home = t.TempDir()
	cfgDir = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", cfgDir)
	t.Setenv("TRY_PATH", "")
	t.Setenv("TRY_CONFIG", "")
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	return home, cfgDir
}

func TestLoadDefaultsAndFirstRun(t *testing.T) {
	home, cfgDir := isolate(t)

	cfg, firstRun := Load()

	assert.Equal(t, filepath.Join(home, "work", "tries"), cfg.TriesPath)
	assert.Empty(t, cfg.Editor)
	assert.True(t, firstRun, "missing config file marks the first run")

	// Load writes a default config so the next run is not a first run.
	written, err := os.ReadFile(filepath.Join(cfgDir, "trygo", "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(written), "tries_path")

	_, firstRun = Load()
	assert.False(t, firstRun)
}

func TestLoadReadsConfigFile(t *testing.T) {
	home, cfgDir := isolate(t)

	dir := filepath.Join(cfgDir, "trygo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := `
tries_path = "~/experiments"
editor = "nvim"

[colors]
title = "#ff0000"
popup_text = "#00ff00"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, firstRun := Load()
	assert.False(t, firstRun)
	assert.Equal(t, filepath.Join(home, "experiments"), cfg.TriesPath, "tilde expands to home")
	assert.Equal(t, "nvim", cfg.Editor)
	assert.Equal(t, "#ff0000", cfg.Colors.Title)
	assert.Equal(t, "#00ff00", cfg.Colors.PopupText)
}

func TestMalformedConfigFallsBackToDefaults(t *testing.T) {
	home, cfgDir := isolate(t)

	dir := filepath.Join(cfgDir, "trygo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("tries_path = [broken"), 0o644))

	cfg, _ := Load()
	assert.Equal(t, filepath.Join(home, "work", "tries"), cfg.TriesPath)
}

func TestTryPathEnvWinsOverConfigFile(t *testing.T) {
	_, cfgDir := isolate(t)

	dir := filepath.Join(cfgDir, "trygo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`tries_path = "/from/file"`), 0o644))

	t.Setenv("TRY_PATH", "/from/env")
	cfg, _ := Load()
	assert.Equal(t, "/from/env", cfg.TriesPath)
}

func TestTryConfigSelectsAlternateStem(t *testing.T) {
	_, cfgDir := isolate(t)

	dir := filepath.Join(cfgDir, "trygo")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "work.toml"), []byte(`tries_path = "/work/tries"`), 0o644))

	t.Setenv("TRY_CONFIG", "work")
	cfg, _ := Load()
	assert.Equal(t, "/work/tries", cfg.TriesPath)
}

func TestEditorFallback(t *testing.T) {
	isolate(t)

	t.Setenv("EDITOR", "vim")
	cfg, _ := Load()
	assert.Equal(t, "vim", cfg.Editor)

	t.Setenv("VISUAL", "code")
	cfg, _ = Load()
	assert.Equal(t, "code", cfg.Editor, "VISUAL wins over EDITOR")
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, "x"), ExpandPath("~/x"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "relative", ExpandPath("relative"))
}
