package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/quakeaid/pkg/log"
)

// ValidatorConfig exposes the response-validation heuristics as tunables.
// The defaults are the empirically chosen values the assistant ships with.
type ValidatorConfig struct {
	HedgingPenalty    float64 `env:"QUAKE_VALIDATE_HEDGING_PENALTY" envDefault:"0.2"`
	GroundingRatio    float64 `env:"QUAKE_VALIDATE_GROUNDING_RATIO" envDefault:"0.3"`
	GroundingPenalty  float64 `env:"QUAKE_VALIDATE_GROUNDING_PENALTY" envDefault:"0.3"`
	MedicalPenalty    float64 `env:"QUAKE_VALIDATE_MEDICAL_PENALTY" envDefault:"0.4"`
	RedirectPenalty   float64 `env:"QUAKE_VALIDATE_REDIRECT_PENALTY" envDefault:"0.5"`
	FantasyPenalty    float64 `env:"QUAKE_VALIDATE_FANTASY_PENALTY" envDefault:"0.8"`
	OffTopicPenalty   float64 `env:"QUAKE_VALIDATE_OFFTOPIC_PENALTY" envDefault:"0.4"`
	ValidThreshold    float64 `env:"QUAKE_VALIDATE_VALID_THRESHOLD" envDefault:"0.5"`
	BlockingThreshold float64 `env:"QUAKE_VALIDATE_BLOCKING_THRESHOLD" envDefault:"0.3"`
}

func NewValidatorConfig(ctx context.Context) *ValidatorConfig {
	c := &ValidatorConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse validator config")
	}
	return c
}
