package main

import (
	"log/slog"
	"os"

	"logistics/cmd"

	"github.com/spf13/cobra"
)

var configDir string

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "logistics",
		Short: "Registry of packages, warehouses, drivers and delivery routes",
		Long: `logistics tracks packages as they move through warehouses and onto
delivery routes driven by registered drivers.

Configuration is read from config.yaml and .env in the config directory,
then from the environment (HTTP_PORT, BACKEND, DB_HOST, ...).`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding config.yaml and .env")

	root.AddCommand(newServeCommand(), newReportCommand())
	return root
}

// setup loads the configuration and builds the process logger.
func setup() (cmd.Config, *slog.Logger, error) {
	config, err := cmd.LoadConfig(configDir)
	if err != nil {
		return cmd.Config{}, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: config.SlogLevel()}))
	return config, logger, nil
}
