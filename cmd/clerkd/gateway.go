package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clerkd/clerkd/application/service"
	"github.com/clerkd/clerkd/infrastructure/api"
	"github.com/clerkd/clerkd/infrastructure/catalogclient"
	"github.com/clerkd/clerkd/infrastructure/provider"
	"github.com/clerkd/clerkd/internal/config"
	"github.com/clerkd/clerkd/internal/log"
)

func gatewayCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    int
	)

	cmd := &cobra.Command{
		Use:   "gateway",
		Short: "Start the AI query gateway",
		Long: `Start the AI query gateway HTTP service.

The gateway fetches the product catalog from the catalog service, builds a
prompt around the user's question, and relays the inference provider's answer.

Environment variables:
  GATEWAY_HOST             Host to bind to (default: 0.0.0.0)
  GATEWAY_PORT             Port to listen on (default: 8002)
  GATEWAY_CATALOG_URL      Catalog service base URL (default: http://localhost:8001)

  INFERENCE_PROVIDER       Provider: anthropic, openai (default: anthropic)
  INFERENCE_BASE_URL       Endpoint base URL (default: provider's hosted endpoint)
  INFERENCE_MODEL          Model identifier
  INFERENCE_API_KEY        API key for authentication
  INFERENCE_MAX_TOKENS     Completion token budget (default: 2000)
  INFERENCE_TIMEOUT        Request timeout as a duration, e.g. 30s (default: 60s)
  INFERENCE_MAX_RETRIES    Retry attempts on 429/5xx (default: 5)

  LOG_LEVEL                Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  LOG_FORMAT               Log format: pretty, json (default: pretty)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGateway(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().StringVar(&host, "host", "", "Host to bind to (default: 0.0.0.0)")
	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (default: 8002)")

	return cmd
}

func runGateway(envFile, host string, port int) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	cfg = cfg.WithGatewayAddr(host, port)

	logger := log.Configure(cfg)

	server, closeGenerator, err := buildGatewayServer(cfg, logger)
	if err != nil {
		return err
	}
	defer closeGenerator()

	return runServers(logger, server)
}

// buildGatewayServer wires the gateway's collaborators: the catalog HTTP
// client, the configured inference provider, and the assist service.
func buildGatewayServer(cfg config.AppConfig, logger *log.Logger) (*api.Server, func(), error) {
	generator, err := provider.New(cfg.Inference())
	if err != nil {
		return nil, nil, fmt.Errorf("create inference provider: %w", err)
	}

	closeGenerator := func() {
		if err := generator.Close(); err != nil {
			logger.Error("failed to close inference provider", "error", err)
		}
	}

	client := catalogclient.New(cfg.CatalogURL())
	assist := service.NewAssistService(client, generator, cfg.Inference().MaxTokens(), logger.Slog())

	logger.Info("gateway configured",
		"catalog_url", cfg.CatalogURL(),
		"provider", cfg.Inference().Provider(),
		"model", cfg.Inference().Model(),
	)

	return api.NewGatewayServer(cfg.GatewayAddr(), assist, logger.Slog()), closeGenerator, nil
}
