// Package cmd implements the wealth CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/wealth/internal/config"
	"github.com/theirongolddev/wealth/internal/gateway"
	"github.com/theirongolddev/wealth/internal/session"
	"github.com/theirongolddev/wealth/internal/store"
)

var (
	flagBaseURL string
	flagOffline bool
	flagQuiet   bool
)

const requestTimeout = 15 * time.Second

var rootCmd = &cobra.Command{
	Use:   "wealth",
	Short: "Goal-based investing from your terminal",
	Long:  "Track savings goals, check affordability, and manage your portfolio against the wealth gateway.",
	RunE:  runDashboard,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "Gateway base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "Use the local snapshot instead of the network")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
}

// loadConfig merges the config file with command-line overrides.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if flagBaseURL != "" {
		cfg.Gateway.BaseURL = flagBaseURL
	}
	if flagOffline {
		cfg.General.Offline = true
	}
	return cfg
}

func sessionStore() *session.Store {
	return session.NewStore(config.ConfigDir())
}

// newClient builds an unauthenticated gateway client.
func newClient(cfg config.Config) *gateway.Client {
	base := config.GetBaseURL(cfg)
	if flagBaseURL != "" {
		base = flagBaseURL
	}
	return gateway.NewClient(base)
}

// authClient loads the stored session and returns a client with auth headers
// set. Warns on stderr when the token looks expired so the user knows why a
// 401 may follow.
func authClient(cfg config.Config) (*gateway.Client, *session.Session, error) {
	sess, err := sessionStore().Load()
	if err != nil {
		return nil, nil, err
	}

	if sess.Expired(time.Now()) && !flagQuiet {
		fmt.Fprintln(os.Stderr, "  Session token has expired; run `wealth login` if requests fail.")
	}

	client := newClient(cfg)
	client.SetAuth(sess.Token, sess.Profile.CustomerID)
	return client, sess, nil
}

// openSnapshot opens the offline snapshot database. Callers treat a nil
// snapshot as "no local data".
func openSnapshot() *store.Snapshot {
	snap, err := store.Open(config.CachePath())
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Snapshot unavailable: %v\n", err)
		}
		return nil
	}
	return snap
}

func reqContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
