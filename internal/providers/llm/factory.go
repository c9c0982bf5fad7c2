package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/quakeaid/internal/config"
	"github.com/sandevgo/quakeaid/internal/core"
	"github.com/sandevgo/quakeaid/pkg/log"
)

// NewProvider creates the appropriate Generator based on configuration.
func NewProvider(ctx context.Context, cfg *config.LLMConfig) (core.Generator, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.Provider).
		Str("model", cfg.Model).
		Msg("starting llm provider")

	switch cfg.Provider {
	case "openai":
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.Model), nil
	case "openrouter":
		return NewOpenRouter(cfg.OpenRouterAPIKey, cfg.Model), nil
	case "ollama":
		return NewOllama(cfg.OllamaBaseURL, cfg.OllamaAPIKey, cfg.Model), nil
	case "mock":
		return NewMock(), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
