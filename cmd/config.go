package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealth/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the active configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	fmt.Printf("  Config file  %s", config.ConfigPath())
	if !config.Exists() {
		fmt.Print("  (not written yet; showing defaults)")
	}
	fmt.Println()
	fmt.Printf("  Snapshot db  %s\n", config.CachePath())
	fmt.Println()
	fmt.Printf("  gateway.base_url   %s\n", config.GetBaseURL(cfg))
	fmt.Printf("  general.trend_days %d\n", cfg.General.TrendDays)
	fmt.Printf("  general.offline    %v\n", cfg.General.Offline)
	fmt.Printf("  appearance.theme   %s\n", cfg.Appearance.Theme)
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		fmt.Printf("  Config already exists at %s\n", config.ConfigPath())
		return nil
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  Wrote defaults to %s\n", config.ConfigPath())
	return nil
}
