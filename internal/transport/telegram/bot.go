package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/quakeaid/internal/config"
	"github.com/sandevgo/quakeaid/internal/core"
	"github.com/sandevgo/quakeaid/internal/rag"
	"github.com/sandevgo/quakeaid/internal/service/assistant"
	"github.com/sandevgo/quakeaid/pkg/log"
)

const baseContextKey = "base_context"

const generationFailedMsg = "Couldn't generate a response right now. Please try again in a moment."

type Bot struct {
	bot       *tele.Bot
	cfg       *config.TelegramConfig
	assistant *assistant.Assistant
	router    core.CmdRouter
	sender    *sender
	ownerID   int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	asst *assistant.Assistant,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:       b,
		cfg:       cfg,
		assistant: asst,
		router:    router,
		sender:    newSender(b),
		ownerID:   cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil // Ignore unauthorized users
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	sessionID := fmt.Sprintf("telegram-%d", c.Chat().ID)

	// Notify user we are working
	_ = c.Notify(tele.Typing)

	if out, handled := b.router.Execute(ctx, sessionID, c.Text()); handled {
		return b.sender.sendMarkdown(ctx, c.Chat(), out, false)
	}

	reply, err := b.assistant.Ask(ctx, sessionID, c.Text())
	if err != nil {
		logger.Error().Err(err).Msg("assistant ask failed")
		if errors.Is(err, core.ErrGeneration) {
			return c.Send(generationFailedMsg)
		}
		return c.Send(fmt.Sprintf("error: %v", err))
	}

	// Critical answers are sent loud even if the chat is muted.
	silent := reply.Priority != rag.PriorityCritical
	return b.sender.sendMarkdown(ctx, c.Chat(), reply.Answer, silent)
}
