package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete stockdeck configuration
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme for the TUI (default: "default")
	// Options: built-in theme names plus any custom themes discovered in
	// the themes directory
	Theme string `mapstructure:"theme"`
	// SidebarWidth is the width of the navigation sidebar in columns
	// (default: 32, min: 20, max: 60)
	SidebarWidth int `mapstructure:"sidebar_width"`
	// NarrowThreshold is the terminal width in columns below which the
	// sidebar collapses into an overlay drawer (default: 80)
	NarrowThreshold int `mapstructure:"narrow_threshold"`
	// AnimationIntervalMs is the frame interval for panel expand/collapse
	// transitions in milliseconds (default: 25, 0 disables animation)
	AnimationIntervalMs int `mapstructure:"animation_interval_ms"`
	// MouseEnabled turns on mouse support for clickable menu items
	// (default: true)
	MouseEnabled bool `mapstructure:"mouse_enabled"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: true)
	Enabled bool `mapstructure:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups"`
}

// AnimationInterval returns the frame interval as a time.Duration
func (c *TUIConfig) AnimationInterval() time.Duration {
	return time.Duration(c.AnimationIntervalMs) * time.Millisecond
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			Theme:               "default",
			SidebarWidth:        32,
			NarrowThreshold:     80,
			AnimationIntervalMs: 25,
			MouseEnabled:        true,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.sidebar_width", defaults.TUI.SidebarWidth)
	viper.SetDefault("tui.narrow_threshold", defaults.TUI.NarrowThreshold)
	viper.SetDefault("tui.animation_interval_ms", defaults.TUI.AnimationIntervalMs)
	viper.SetDefault("tui.mouse_enabled", defaults.TUI.MouseEnabled)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "stockdeck")
	}
	// Fall back to ~/.config/stockdeck
	home, err := os.UserHomeDir()
	if err != nil {
		return ".stockdeck"
	}
	return filepath.Join(home, ".config", "stockdeck")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
