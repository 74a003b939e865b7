package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/clerkd/clerkd/domain/catalog"
	"github.com/clerkd/clerkd/infrastructure/api"
	"github.com/clerkd/clerkd/internal/log"
)

func serveCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the catalog service and the query gateway in one process",
		Long: `Start both services in one process, for local development.

The catalog service listens on CATALOG_HOST:CATALOG_PORT and the gateway on
GATEWAY_HOST:GATEWAY_PORT. The gateway reaches the catalog over HTTP via
GATEWAY_CATALOG_URL even when both run in the same process.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")

	return cmd
}

func runServe(envFile string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}

	logger := log.Configure(cfg)

	table, err := catalog.LoadTable(cfg.DatasetPath())
	if err != nil {
		return fmt.Errorf("load catalog dataset: %w", err)
	}
	logger.Info("loaded catalog", "items", table.Len(), "dataset", cfg.DatasetPath())

	catalogServer := api.NewCatalogServer(cfg.CatalogAddr(), table, cfg.CatalogLimit(), logger.Slog())

	gatewayServer, closeGenerator, err := buildGatewayServer(cfg, logger)
	if err != nil {
		return err
	}
	defer closeGenerator()

	return runServers(logger, catalogServer, gatewayServer)
}

// runServers runs the servers until the first failure or a SIGINT/SIGTERM,
// then shuts the remaining ones down gracefully.
func runServers(logger *log.Logger, servers ...*api.Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	for _, server := range servers {
		g.Go(server.Start)
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		for _, server := range servers {
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown error", "addr", server.Addr(), "error", err)
			}
		}
		return nil
	})

	return g.Wait()
}
