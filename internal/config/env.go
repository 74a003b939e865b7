package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Catalog configures the catalog service.
	Catalog CatalogEnv `envconfig:"CATALOG"`

	// Gateway configures the query gateway.
	Gateway GatewayEnv `envconfig:"GATEWAY"`

	// Inference configures the inference provider endpoint.
	Inference InferenceEnv `envconfig:"INFERENCE"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
}

// CatalogEnv holds environment configuration for the catalog service.
type CatalogEnv struct {
	// Host is the bind host. Env: CATALOG_HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST"`

	// Port is the bind port. Env: CATALOG_PORT (default: 8001)
	Port int `envconfig:"PORT"`

	// Dataset is an optional path to a YAML dataset file that replaces
	// the built-in product data. Env: CATALOG_DATASET
	Dataset string `envconfig:"DATASET"`

	// DefaultLimit caps listing responses when no limit is supplied.
	// Env: CATALOG_DEFAULT_LIMIT (default: 20)
	DefaultLimit int `envconfig:"DEFAULT_LIMIT"`
}

// GatewayEnv holds environment configuration for the query gateway.
type GatewayEnv struct {
	// Host is the bind host. Env: GATEWAY_HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST"`

	// Port is the bind port. Env: GATEWAY_PORT (default: 8002)
	Port int `envconfig:"PORT"`

	// CatalogURL is the catalog service base URL.
	// Env: GATEWAY_CATALOG_URL (default: http://localhost:8001)
	CatalogURL string `envconfig:"CATALOG_URL"`
}

// InferenceEnv holds environment configuration for the inference endpoint.
type InferenceEnv struct {
	// Provider selects the implementation: anthropic or openai.
	// Env: INFERENCE_PROVIDER (default: anthropic)
	Provider string `envconfig:"PROVIDER"`

	// BaseURL overrides the provider's default endpoint URL.
	// Env: INFERENCE_BASE_URL
	BaseURL string `envconfig:"BASE_URL"`

	// Model is the model identifier. Env: INFERENCE_MODEL
	Model string `envconfig:"MODEL"`

	// APIKey authenticates against the provider. Env: INFERENCE_API_KEY
	APIKey string `envconfig:"API_KEY"`

	// MaxTokens bounds completion length. Env: INFERENCE_MAX_TOKENS (default: 2000)
	MaxTokens int `envconfig:"MAX_TOKENS"`

	// Timeout is the per-request HTTP timeout.
	// Env: INFERENCE_TIMEOUT (default: 60s)
	Timeout time.Duration `envconfig:"TIMEOUT"`

	// MaxRetries bounds retry attempts on retryable provider failures.
	// Env: INFERENCE_MAX_RETRIES (default: 5)
	MaxRetries int `envconfig:"MAX_RETRIES"`

	// InitialDelay is the first retry delay.
	// Env: INFERENCE_INITIAL_DELAY (default: 2s)
	InitialDelay time.Duration `envconfig:"INITIAL_DELAY"`

	// BackoffFactor multiplies the delay between retries.
	// Env: INFERENCE_BACKOFF_FACTOR (default: 2.0)
	BackoffFactor float64 `envconfig:"BACKOFF_FACTOR"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts environment configuration into an AppConfig,
// applying defaults for anything unset.
func (e EnvConfig) ToAppConfig() (AppConfig, error) {
	cfg := NewAppConfig()

	cfg = cfg.WithCatalogAddr(e.Catalog.Host, e.Catalog.Port)
	cfg = cfg.WithGatewayAddr(e.Gateway.Host, e.Gateway.Port)

	if e.Catalog.Dataset != "" {
		cfg.datasetPath = e.Catalog.Dataset
	}
	if e.Catalog.DefaultLimit > 0 {
		cfg.catalogLimit = e.Catalog.DefaultLimit
	}
	if e.Gateway.CatalogURL != "" {
		cfg.catalogURL = e.Gateway.CatalogURL
	}
	if e.LogLevel != "" {
		cfg.logLevel = e.LogLevel
	}
	if e.LogFormat != "" {
		cfg.logFormat = parseLogFormat(e.LogFormat)
	}

	inf, err := e.Inference.toInference()
	if err != nil {
		return AppConfig{}, err
	}
	cfg.inference = inf

	return cfg, nil
}

func (e InferenceEnv) toInference() (Inference, error) {
	inf := NewInference()

	if e.Provider != "" {
		p, err := parseProvider(e.Provider)
		if err != nil {
			return Inference{}, err
		}
		inf.provider = p
	}
	inf.baseURL = e.BaseURL
	inf.model = e.Model
	inf.apiKey = e.APIKey
	if e.MaxTokens > 0 {
		inf.maxTokens = e.MaxTokens
	}
	if e.Timeout > 0 {
		inf.timeout = e.Timeout
	}
	if e.MaxRetries > 0 {
		inf.maxRetries = e.MaxRetries
	}
	if e.InitialDelay > 0 {
		inf.initialDelay = e.InitialDelay
	}
	if e.BackoffFactor > 0 {
		inf.backoff = e.BackoffFactor
	}

	return inf, nil
}
