package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sandevgo/quakeaid/internal/config"
	"github.com/sandevgo/quakeaid/internal/core"
	"github.com/sandevgo/quakeaid/internal/service/assistant"
	"github.com/sandevgo/quakeaid/internal/service/ui"
	"github.com/sandevgo/quakeaid/pkg/log"
)

const defaultSessionID = "cli-local"

const generationFailedMsg = "Couldn't generate a response right now. Check that your model provider is reachable and try again."

type ReadLine struct {
	cfg       *config.AppConfig
	assistant *assistant.Assistant
	router    core.CmdRouter
	rl        *readline.Instance
}

func NewReadLine(asst *assistant.Assistant, router core.CmdRouter, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.GetRuntimePath(), 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.GetRuntimePath(), "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:       cfg,
		assistant: asst,
		router:    router,
		rl:        rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("ReadLine chat started. Type 'exit' to quit.")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		if out, handled := r.router.Execute(ctx, defaultSessionID, line); handled {
			fmt.Fprintf(r.rl.Stdout(), "%s\n", out)
			continue
		}

		reply, err := r.assistant.Ask(ctx, defaultSessionID, line)
		if err != nil {
			logger.Error().Err(err).Msg("assistant ask failed")
			if errors.Is(err, core.ErrGeneration) {
				fmt.Fprintf(r.rl.Stdout(), "%s\n", generationFailedMsg)
			} else {
				fmt.Fprintf(r.rl.Stdout(), "Error: %v\n", err)
			}
			continue
		}

		fmt.Fprintf(r.rl.Stdout(), "%s\n", r.render(reply))
	}
}

func (r *ReadLine) render(reply assistant.Reply) string {
	answer := reply.Answer
	// Re-color the severity prefix; the text itself stays untouched.
	switch {
	case strings.HasPrefix(answer, "🚨 CRITICAL:"):
		answer = ui.CriticalStyle.Render("🚨 CRITICAL:") + strings.TrimPrefix(answer, "🚨 CRITICAL:")
	case strings.HasPrefix(answer, "⚠️ URGENT:"):
		answer = ui.UrgentStyle.Render("⚠️ URGENT:") + strings.TrimPrefix(answer, "⚠️ URGENT:")
	}
	return answer
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
