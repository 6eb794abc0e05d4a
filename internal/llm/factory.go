package llm

import (
	"fmt"
	"strings"

	"github.com/paperscope/paperscope/internal/model"
)

// NewProvider creates a provider from configuration. An empty provider name
// returns (nil, nil): the generative capability is disabled and callers run
// on their deterministic fallbacks.
func NewProvider(cfg model.LLMConfig) (Provider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "openai", "qwen":
		return NewOpenAIProvider(cfg)

	case "ollama":
		return NewOllamaProvider(cfg)

	case "":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, qwen, ollama)", cfg.Provider)
	}
}
