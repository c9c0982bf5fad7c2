package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/quakeaid/pkg/log"
)

type LLMConfig struct {
	Provider string `env:"QUAKE_LLM_PROVIDER" envDefault:"ollama"`
	Model    string `env:"QUAKE_MODEL" envDefault:"gemma3:4b"`

	OpenAIAPIKey     string `env:"QUAKE_OPENAI_API_KEY"`
	OpenRouterAPIKey string `env:"QUAKE_OPENROUTER_API_KEY"`
	OllamaBaseURL    string `env:"QUAKE_OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey     string `env:"QUAKE_OLLAMA_API_KEY"`

	// Low temperature keeps answers close to the supplied knowledge.
	Temperature float64 `env:"QUAKE_TEMPERATURE" envDefault:"0.3"`
	MaxTokens   int     `env:"QUAKE_MAX_TOKENS" envDefault:"300"`
}

func NewLLMConfig(ctx context.Context) *LLMConfig {
	c := &LLMConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse LLM config")
	}
	return c
}
