package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clerkd/clerkd/domain/catalog"
	"github.com/clerkd/clerkd/infrastructure/api"
	"github.com/clerkd/clerkd/internal/log"
)

func catalogCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Start the product catalog service",
		Long: `Start the product catalog HTTP service.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (if --env-file specified or .env exists in current directory)
  3. Environment variables
  4. Command line flags

Environment variables:
  CATALOG_HOST           Host to bind to (default: 0.0.0.0)
  CATALOG_PORT           Port to listen on (default: 8001)
  CATALOG_DATASET        Path to a YAML dataset file (default: built-in items)
  CATALOG_DEFAULT_LIMIT  Default listing result cap (default: 20)
  LOG_LEVEL              Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT             Log format: pretty, json (default: pretty)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default: 8001)")

	return cmd
}

func runCatalog(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	cfg = cfg.WithCatalogAddr(host, port)

	logger := log.Configure(cfg)

	table, err := catalog.LoadTable(cfg.DatasetPath())
	if err != nil {
		return fmt.Errorf("load catalog dataset: %w", err)
	}
	logger.Info("loaded catalog", "items", table.Len(), "dataset", cfg.DatasetPath())

	server := api.NewCatalogServer(cfg.CatalogAddr(), table, cfg.CatalogLimit(), logger.Slog())
	return runServers(logger, server)
}
