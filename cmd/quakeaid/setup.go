package main

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sandevgo/quakeaid/internal/config"
	"github.com/sandevgo/quakeaid/internal/core"
	"github.com/sandevgo/quakeaid/internal/knowledge"
	"github.com/sandevgo/quakeaid/internal/providers/llm"
	"github.com/sandevgo/quakeaid/internal/rag"
	"github.com/sandevgo/quakeaid/internal/service/assistant"
	"github.com/sandevgo/quakeaid/internal/service/command"
	"github.com/sandevgo/quakeaid/internal/storage/sqlite"
	"github.com/sandevgo/quakeaid/internal/transport/cli"
	"github.com/sandevgo/quakeaid/internal/transport/telegram"
	"github.com/sandevgo/quakeaid/internal/validate"
	"github.com/sandevgo/quakeaid/pkg/log"
	"github.com/sandevgo/quakeaid/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	appCfg := config.NewAppConfig(ctx)

	asst, store, db := buildAssistant(ctx, appCfg)
	services = append(services, srv.NewCleanup(db.Close))

	router := command.New(command.NewCommands(store))

	// Transports
	if appCfg.IsCLISelected() {
		rl, err := cli.NewReadLine(asst, router, appCfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize CLI transport")
		}
		services = append(services, rl)
	}

	if appCfg.IsTelegramSelected() {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg, asst, router)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telegram transport")
		}
		services = append(services, bot)
	}

	return services
}

// buildAssistant assembles the full answer pipeline: knowledge base,
// retrieval, generation provider, validator, and conversation history.
func buildAssistant(ctx context.Context, appCfg *config.AppConfig) (*assistant.Assistant, *knowledge.Store, *sql.DB) {
	logger := log.FromCtx(ctx)

	llmCfg := config.NewLLMConfig(ctx)
	ragCfg := config.NewRAGConfig(ctx)
	validatorCfg := config.NewValidatorConfig(ctx)

	store, err := knowledge.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load knowledge base")
	}

	db, messagesRepo, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}

	generator, err := llm.NewProvider(ctx, llmCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	asst := assistant.New(
		appCfg,
		llmCfg,
		rag.NewService(store, ragCfg),
		generator,
		validate.NewValidator(validatorCfg),
		messagesRepo,
	)
	return asst, store, db
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, core.MessagesRepository, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewMessagesRepo(db), nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
