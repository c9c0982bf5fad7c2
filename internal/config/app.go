package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/quakeaid/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"QUAKE_RUNTIME_PATH" envDefault:".quakeaid"`

	// Transport flags
	EnableTelegram bool `env:"QUAKE_ENABLE_TELEGRAM" envDefault:"false"`
	EnableCLI      bool `env:"QUAKE_ENABLE_CLI" envDefault:"true"`

	// How many past turns accompany the contextual prompt.
	ContextWindowSize int `env:"QUAKE_CONTEXT_WINDOW_SIZE" envDefault:"10"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return resolveRuntimePath(c.RuntimePath)
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.GetRuntimePath(), "quakeaid.db")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}

func (c AppConfig) IsCLISelected() bool {
	return c.EnableCLI
}
