package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent         string `mapstructure:"accent"`
	RowHeight      int    `mapstructure:"row_height"`
	RefreshSeconds int    `mapstructure:"refresh_seconds"`
	SeedEntries    int    `mapstructure:"seed_entries"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// GRIDSOURCE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "gridsource", "gridsource.db"))
	v.SetDefault("ui.accent", "#89b4fa")
	v.SetDefault("ui.row_height", 1)
	v.SetDefault("ui.refresh_seconds", 30)
	v.SetDefault("ui.seed_entries", 24)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("GRIDSOURCE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "gridsource"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("GRIDSOURCE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed.
func Save(cfg Config) error {
	path := os.Getenv("GRIDSOURCE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "gridsource", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("ui.accent", cfg.UI.Accent)
	v.Set("ui.row_height", cfg.UI.RowHeight)
	v.Set("ui.refresh_seconds", cfg.UI.RefreshSeconds)
	v.Set("ui.seed_entries", cfg.UI.SeedEntries)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
