package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.TrendDays != 30 {
		t.Fatalf("TrendDays = %d, want default 30", cfg.General.TrendDays)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if Exists() {
		t.Fatal("Exists() = true with no config on disk")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := DefaultConfig()
	cfg.Gateway.BaseURL = "https://gw.example.com"
	cfg.General.TrendDays = 90
	cfg.General.Offline = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if want := filepath.Join(dir, "wealth", "config.toml"); ConfigPath() != want {
		t.Fatalf("ConfigPath = %q, want %q", ConfigPath(), want)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Gateway.BaseURL != cfg.Gateway.BaseURL ||
		got.General.TrendDays != 90 || !got.General.Offline {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestGetBaseURL_EnvWins(t *testing.T) {
	t.Setenv("WEALTH_BASE_URL", "https://env.example.com")

	cfg := DefaultConfig()
	cfg.Gateway.BaseURL = "https://file.example.com"

	if got := GetBaseURL(cfg); got != "https://env.example.com" {
		t.Fatalf("GetBaseURL = %q, want env override", got)
	}

	t.Setenv("WEALTH_BASE_URL", "")
	if got := GetBaseURL(cfg); got != "https://file.example.com" {
		t.Fatalf("GetBaseURL = %q, want config value", got)
	}
}
