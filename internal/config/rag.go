package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/quakeaid/pkg/log"
)

type RAGConfig struct {
	// MaxResults bounds retrieved knowledge items per query.
	MaxResults int `env:"QUAKE_RAG_MAX_RESULTS" envDefault:"3"`
	// PromptTokenBudget caps the composed prompt; knowledge items that
	// would exceed it are trimmed from the tail of the ranking.
	PromptTokenBudget int `env:"QUAKE_RAG_PROMPT_TOKEN_BUDGET" envDefault:"1600"`
}

func NewRAGConfig(ctx context.Context) *RAGConfig {
	c := &RAGConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse RAG config")
	}
	return c
}
