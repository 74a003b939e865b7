package provider

import (
	"fmt"

	"github.com/clerkd/clerkd/internal/config"
)

// Generator is a TextGenerator that owns network resources.
type Generator interface {
	TextGenerator
	Close() error
}

// New creates the configured inference provider.
func New(cfg config.Inference) (Generator, error) {
	switch cfg.Provider() {
	case config.ProviderAnthropic:
		return NewAnthropicProvider(cfg), nil
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown inference provider %q", cfg.Provider())
	}
}
