// Package main is the entry point for the tftgrid CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LISSConsulting/LISSTech.TFTGrid/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

// extraCommands are added to the root command by build-tagged files.
var extraCommands []func() *cobra.Command

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tftgrid",
		Short:        "tftgrid — grid layouts for small pixel displays",
		Version:      version,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "path to grid.toml (default: search upward from the working directory)")

	root.AddCommand(
		initCmd(),
		renderCmd(),
		inspectCmd(),
		previewCmd(),
		snapshotCmd(),
	)
	for _, c := range extraCommands {
		root.AddCommand(c())
	}

	return root
}

// loadConfig loads the layout named by --config and validates it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", cfg.Path, err)
	}
	return cfg, nil
}
