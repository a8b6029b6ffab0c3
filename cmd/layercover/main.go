// Package main is the entry point for the layercover CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seetharamanm/layercover/internal/config"
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
		Use:   "layercover",
		Short: "Chainage coverage analysis server",
		Long: `Layercover analyses road construction survey sheets: which chainage
stretches each construction layer covers, where stretches overlap or leave
gaps, and how far each layer has progressed against the route.`,
	}

	cmd.AddCommand(serveCmd())
	cmd.AddCommand(analyzeCmd())
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
