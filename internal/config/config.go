// Package config loads and saves the wealth CLI configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all wealth configuration.
type Config struct {
	Gateway    GatewayConfig    `toml:"gateway"`
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GatewayConfig holds backend connection settings.
type GatewayConfig struct {
	BaseURL string `toml:"base_url,omitempty"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	TrendDays int  `toml:"trend_days"`
	Offline   bool `toml:"offline"` // prefer the local snapshot over the network
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			TrendDays: 30,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "wealth")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "wealth")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// CachePath returns the path of the local snapshot database.
func CachePath() string {
	return filepath.Join(ConfigDir(), "snapshot.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetBaseURL returns the gateway base URL from env var or config, in that
// order. Empty means the client default.
func GetBaseURL(cfg Config) string {
	if u := os.Getenv("WEALTH_BASE_URL"); u != "" {
		return u
	}
	return cfg.Gateway.BaseURL
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
