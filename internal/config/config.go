package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	Render RenderConfig `mapstructure:"render"`
	Repair RepairConfig `mapstructure:"repair"`
	Theme  ThemeConfig  `mapstructure:"theme"`
}

// RenderConfig controls terminal rendering of repaired markdown.
type RenderConfig struct {
	Width int `mapstructure:"width"` // 0 = auto-detect from the terminal
}

// RepairConfig toggles individual repair passes. All default to enabled;
// disabling a pass leaves its class of malformation untouched.
type RepairConfig struct {
	Inline     bool `mapstructure:"inline"`     // emphasis balancing, math stripping
	Headings   bool `mapstructure:"headings"`   // numbered title promotion
	Tables     bool `mapstructure:"tables"`     // separator synthesis, padding
	Whitespace bool `mapstructure:"whitespace"` // blank-line collapse
}

// ThemeConfig allows customization of output colors.
// Colors can be ANSI color numbers (0-255) or hex codes (#RRGGBB).
type ThemeConfig struct {
	Primary   string `mapstructure:"primary"`
	Secondary string `mapstructure:"secondary"`
	Success   string `mapstructure:"success"`
	Error     string `mapstructure:"error"`
	Warning   string `mapstructure:"warning"`
	Muted     string `mapstructure:"muted"`
	Text      string `mapstructure:"text"`
}

func Load() (*Config, error) {
	configPath, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config dir: %w", err)
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configPath)
	viper.AddConfigPath(".")

	viper.SetDefault("render.width", 0)
	viper.SetDefault("repair.inline", true)
	viper.SetDefault("repair.headings", true)
	viper.SetDefault("repair.tables", true)
	viper.SetDefault("repair.whitespace", true)

	// Read config file (optional - won't error if missing)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetConfigDir returns the directory where the config file lives.
func GetConfigDir() (string, error) {
	if xdgHome := os.Getenv("XDG_CONFIG_HOME"); xdgHome != "" {
		return filepath.Join(xdgHome, "mdmend"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "mdmend"), nil
}

// GetConfigPath returns the path where the config file should be located.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}
