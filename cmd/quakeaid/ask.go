package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sandevgo/quakeaid/internal/config"
	"github.com/sandevgo/quakeaid/internal/core"
	"github.com/sandevgo/quakeaid/pkg/log"
)

var askCmd = &cobra.Command{
	Use:          "ask [question]",
	Short:        "Ask a single question and exit",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			logger.Fatal().Err(err).Msg("failed to init env")
		}

		appCfg := config.NewAppConfig(ctx)
		asst, _, db := buildAssistant(ctx, appCfg)
		defer db.Close()

		query := strings.Join(args, " ")
		reply, err := asst.Ask(ctx, "ask-oneshot", query)
		if err != nil {
			if errors.Is(err, core.ErrGeneration) {
				return fmt.Errorf("couldn't generate a response, check that your model provider is reachable: %w", err)
			}
			return err
		}

		fmt.Println(reply.Answer)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
