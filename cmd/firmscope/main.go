// Package main is the entry point for the firmscope CLI.
package main

import (
	"fmt"
	"os"

	"github.com/firmscope/firmscope/internal/config"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "firmscope",
		Short: "Firmscope company research tool",
		Long:  `Firmscope resolves company names to structured profiles and employee rosters, answering from a local cache first and a search-grounded AI provider on misses.`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(lookupCmd())
	cmd.AddCommand(bulkSearchCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// loadConfig loads configuration from .env file and environment variables.
func loadConfig(envFile string) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
