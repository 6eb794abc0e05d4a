// Package llm models the external generative-text capability as a Provider
// interface with interchangeable implementations. Callers depend only on the
// interface; whether a provider is configured at all is decided once, at
// construction.
package llm

import (
	"context"

	"github.com/paperscope/paperscope/internal/model"
)

// Provider is the generative-text capability: one prompt in, one text out.
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate produces text for the given prompt. A failure (timeout,
	// protocol error, empty completion) is returned as an error; callers
	// are expected to degrade to a deterministic fallback.
	Generate(ctx context.Context, prompt string) (string, error)

	// IsAvailable checks if the provider is properly configured and reachable
	IsAvailable(ctx context.Context) bool
}

// ConfigDefaults fills unset LLM config fields with working values.
func ConfigDefaults(cfg model.LLMConfig) model.LLMConfig {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1000
	}
	return cfg
}
