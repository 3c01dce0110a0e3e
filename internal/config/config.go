// Package config loads user preferences from config.toml. Missing or
// malformed configuration always degrades to defaults; startup never fails
// on a bad config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
)

// Colors is the optional [colors] table. Values are hex strings ("#89b4fa")
// or ANSI color numbers; empty fields keep the default palette.
type Colors struct {
	Title       string `toml:"title"`
	TitleAccent string `toml:"title_accent"`
	SearchBox   string `toml:"search_box"`
	ListDate    string `toml:"list_date"`
	HighlightBg string `toml:"list_highlight_bg"`
	HighlightFg string `toml:"list_highlight_fg"`
	HelpText    string `toml:"help_text"`
	Status      string `toml:"status_message"`
	PopupBg     string `toml:"popup_bg"`
	PopupText   string `toml:"popup_text"`
}

// Config holds the resolved settings for one invocation.
type Config struct {
	TriesPath string `toml:"tries_path"`
	Editor    string `toml:"editor"`
	Colors    Colors `toml:"colors"`
}

// Load resolves configuration in precedence order: TRY_PATH env, then the
// config file, then defaults. The editor falls back to $VISUAL then $EDITOR.
// The second return is true on first run (no config file existed yet); Load
// writes a default file in that case so the next run finds it.
func Load() (Config, bool) {
	cfg := Config{
		TriesPath: defaultTriesPath(),
		Editor:    envEditor(),
	}

	envPath := os.Getenv("TRY_PATH")
	file := configFile()

	firstRun := false
	if data, err := os.ReadFile(file); err == nil {
		var fileCfg Config
		if _, err := toml.Decode(string(data), &fileCfg); err == nil {
			if fileCfg.TriesPath != "" {
				cfg.TriesPath = ExpandPath(fileCfg.TriesPath)
			}
			if fileCfg.Editor != "" {
				cfg.Editor = fileCfg.Editor
			}
			cfg.Colors = fileCfg.Colors
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err == nil {
			content := fmt.Sprintf("tries_path = %q\n", cfg.TriesPath)
			if os.WriteFile(file, []byte(content), 0o644) == nil {
				firstRun = true
			}
		}
	}

	// TRY_PATH wins over the config file.
	if envPath != "" {
		cfg.TriesPath = ExpandPath(envPath)
	}

	return cfg, firstRun
}

// configFile returns the config path, honoring TRY_CONFIG as an alternate
// file stem (TRY_CONFIG=work selects work.toml).
func configFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	stem := os.Getenv("TRY_CONFIG")
	if stem == "" {
		stem = "config"
	}
	return filepath.Join(dir, "trygo", stem+".toml")
}

func defaultTriesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "tries")
	}
	return filepath.Join(home, "work", "tries")
}

// envEditor prefers $VISUAL over $EDITOR, matching common CLI convention.
func envEditor() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	return os.Getenv("EDITOR")
}

// ExpandPath replaces a leading "~/" with the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") || (runtime.GOOS == "windows" && strings.HasPrefix(path, `~\`)) {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
