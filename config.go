package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Theme modes selectable from the front end and the tray.
const (
	ThemeModeSystem = "system"
	ThemeModeLight  = "light"
	ThemeModeDark   = "dark"
)

// AppConfig holds all persistent user settings.
type AppConfig struct {
	LogLevel            string   `json:"logLevel"`
	WindowWidth         int      `json:"windowWidth"`
	WindowHeight        int      `json:"windowHeight"`
	ThemeMode           string   `json:"themeMode"`
	Capabilities        []string `json:"capabilities"`
	NotifyOnThemeChange bool     `json:"notifyOnThemeChange"`
	JournalThemes       *bool    `json:"journalThemes"` // nil = true (default on)
}

// IsJournalThemes returns whether relayed themes should be journaled (default true).
func (c *AppConfig) IsJournalThemes() bool {
	return c.JournalThemes == nil || *c.JournalThemes
}

var (
	appDataDir     string
	appDataDirOnce sync.Once
)

// DefaultConfig returns config with default values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		LogLevel:     "error",
		WindowWidth:  1200,
		WindowHeight: 800,
		ThemeMode:    ThemeModeSystem,
		Capabilities: []string{CapabilityOS},
	}
}

// AppDataDir returns the path to ~/.ohmybox/, creating it if needed.
func AppDataDir() string {
	appDataDirOnce.Do(func() {
		if dir := os.Getenv("OHMYBOX_HOME"); dir != "" {
			appDataDir = dir
			os.MkdirAll(appDataDir, 0755)
			return
		}
		home, err := os.UserHomeDir()
		if err != nil {
			// Fallback to exe directory
			if exe, err2 := os.Executable(); err2 == nil {
				appDataDir = filepath.Dir(exe)
			} else {
				appDataDir = "."
			}
			return
		}
		appDataDir = filepath.Join(home, ".ohmybox")
		os.MkdirAll(appDataDir, 0755)
	})
	return appDataDir
}

// DataPath returns the full path for a file inside the data directory.
func DataPath(elem ...string) string {
	parts := append([]string{AppDataDir()}, elem...)
	return filepath.Join(parts...)
}

// configPath returns the config file path.
func configPath() string {
	return DataPath("config.json")
}

// LoadConfig reads config from ~/.ohmybox/config.json.
// Returns default config if file doesn't exist.
func LoadConfig() *AppConfig {
	return loadConfigFile(configPath())
}

func loadConfigFile(path string) *AppConfig {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config file %s is invalid, using defaults: %v\n", path, err)
		return DefaultConfig()
	}

	// Ensure window size has valid defaults
	if cfg.WindowWidth <= 0 {
		cfg.WindowWidth = 1200
	}
	if cfg.WindowHeight <= 0 {
		cfg.WindowHeight = 800
	}
	if !validThemeMode(cfg.ThemeMode) {
		cfg.ThemeMode = ThemeModeSystem
	}

	return cfg
}

// SaveConfig writes the config to ~/.ohmybox/config.json.
func SaveConfig(cfg *AppConfig) error {
	os.MkdirAll(AppDataDir(), 0755)
	return saveConfigFile(configPath(), cfg)
}

func saveConfigFile(path string, cfg *AppConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func validThemeMode(mode string) bool {
	switch mode {
	case ThemeModeSystem, ThemeModeLight, ThemeModeDark:
		return true
	}
	return false
}
