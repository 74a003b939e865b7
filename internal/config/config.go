// Package config provides application configuration.
package config

import (
	"fmt"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultHost                  = "0.0.0.0"
	DefaultCatalogPort           = 8001
	DefaultGatewayPort           = 8002
	DefaultCatalogURL            = "http://localhost:8001"
	DefaultCatalogLimit          = 20
	DefaultLogLevel              = "INFO"
	DefaultInferenceProvider     = ProviderAnthropic
	DefaultInferenceMaxTokens    = 2000
	DefaultInferenceTimeout      = 60 * time.Second
	DefaultInferenceMaxRetries   = 5
	DefaultInferenceInitialDelay = 2 * time.Second
	DefaultInferenceBackoff      = 2.0
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// Provider identifies an inference provider implementation.
type Provider string

// Provider values.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// Inference configures the inference provider endpoint.
type Inference struct {
	provider     Provider
	baseURL      string
	model        string
	apiKey       string
	maxTokens    int
	timeout      time.Duration
	maxRetries   int
	initialDelay time.Duration
	backoff      float64
}

// NewInference creates an Inference config with defaults.
func NewInference() Inference {
	return Inference{
		provider:     DefaultInferenceProvider,
		maxTokens:    DefaultInferenceMaxTokens,
		timeout:      DefaultInferenceTimeout,
		maxRetries:   DefaultInferenceMaxRetries,
		initialDelay: DefaultInferenceInitialDelay,
		backoff:      DefaultInferenceBackoff,
	}
}

// Provider returns the configured provider kind.
func (i Inference) Provider() Provider { return i.provider }

// BaseURL returns the endpoint base URL. Empty means the provider default.
func (i Inference) BaseURL() string { return i.baseURL }

// Model returns the model identifier.
func (i Inference) Model() string { return i.model }

// APIKey returns the API key.
func (i Inference) APIKey() string { return i.apiKey }

// MaxTokens returns the completion token budget.
func (i Inference) MaxTokens() int { return i.maxTokens }

// Timeout returns the per-request HTTP timeout.
func (i Inference) Timeout() time.Duration { return i.timeout }

// MaxRetries returns the retry attempt limit.
func (i Inference) MaxRetries() int { return i.maxRetries }

// InitialDelay returns the first retry delay.
func (i Inference) InitialDelay() time.Duration { return i.initialDelay }

// Backoff returns the retry backoff multiplier.
func (i Inference) Backoff() float64 { return i.backoff }

// AppConfig holds the resolved application configuration.
type AppConfig struct {
	catalogHost  string
	catalogPort  int
	datasetPath  string
	catalogLimit int
	gatewayHost  string
	gatewayPort  int
	catalogURL   string
	inference    Inference
	logLevel     string
	logFormat    LogFormat
}

// NewAppConfig creates an AppConfig populated with defaults.
func NewAppConfig() AppConfig {
	return AppConfig{
		catalogHost:  DefaultHost,
		catalogPort:  DefaultCatalogPort,
		catalogLimit: DefaultCatalogLimit,
		gatewayHost:  DefaultHost,
		gatewayPort:  DefaultGatewayPort,
		catalogURL:   DefaultCatalogURL,
		inference:    NewInference(),
		logLevel:     DefaultLogLevel,
		logFormat:    LogFormatPretty,
	}
}

// CatalogAddr returns the host:port the catalog service binds to.
func (c AppConfig) CatalogAddr() string {
	return fmt.Sprintf("%s:%d", c.catalogHost, c.catalogPort)
}

// GatewayAddr returns the host:port the gateway binds to.
func (c AppConfig) GatewayAddr() string {
	return fmt.Sprintf("%s:%d", c.gatewayHost, c.gatewayPort)
}

// DatasetPath returns the optional YAML dataset path. Empty means the
// built-in dataset.
func (c AppConfig) DatasetPath() string { return c.datasetPath }

// CatalogLimit returns the default listing limit.
func (c AppConfig) CatalogLimit() int { return c.catalogLimit }

// CatalogURL returns the catalog base URL the gateway targets.
func (c AppConfig) CatalogURL() string { return c.catalogURL }

// Inference returns the inference endpoint configuration.
func (c AppConfig) Inference() Inference { return c.inference }

// LogLevel returns the log verbosity level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log output format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// WithCatalogAddr returns a copy with the catalog bind address overridden.
// Empty host or zero port leave the existing value in place.
func (c AppConfig) WithCatalogAddr(host string, port int) AppConfig {
	if host != "" {
		c.catalogHost = host
	}
	if port != 0 {
		c.catalogPort = port
	}
	return c
}

// WithGatewayAddr returns a copy with the gateway bind address overridden.
// Empty host or zero port leave the existing value in place.
func (c AppConfig) WithGatewayAddr(host string, port int) AppConfig {
	if host != "" {
		c.gatewayHost = host
	}
	if port != 0 {
		c.gatewayPort = port
	}
	return c
}

func parseLogFormat(v string) LogFormat {
	if strings.EqualFold(v, string(LogFormatJSON)) {
		return LogFormatJSON
	}
	return LogFormatPretty
}

func parseProvider(v string) (Provider, error) {
	switch Provider(strings.ToLower(v)) {
	case ProviderAnthropic:
		return ProviderAnthropic, nil
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	default:
		return "", fmt.Errorf("unknown inference provider %q", v)
	}
}
