package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/quakeaid/internal/config"
	"github.com/sandevgo/quakeaid/internal/core"
	"github.com/sandevgo/quakeaid/internal/knowledge"
	"github.com/sandevgo/quakeaid/internal/rag"
	"github.com/sandevgo/quakeaid/internal/validate"
	"github.com/sandevgo/quakeaid/pkg/log"
)

type HistoryRepository interface {
	AddMessage(ctx context.Context, sessionID string, msg core.Message) error
	GetMessages(ctx context.Context, sessionID string, limit int) ([]core.Message, error)
}

// Reply is what transports render. Answer is already decorated with the
// priority prefix and quick actions.
type Reply struct {
	Answer       string
	Priority     rag.Priority
	QuickActions []string
	Knowledge    []knowledge.Item
	// Fallback is set when validation rejected the generated text and a
	// safe canned answer was substituted.
	Fallback bool
}

// Assistant runs the full pipeline for one user message: retrieval and
// classification, grounded generation, validation, decoration, persistence.
type Assistant struct {
	appCfg    *config.AppConfig
	llmCfg    *config.LLMConfig
	ragSvc    *rag.Service
	generator core.Generator
	validator *validate.Validator
	repo      HistoryRepository
}

func New(
	appCfg *config.AppConfig,
	llmCfg *config.LLMConfig,
	ragSvc *rag.Service,
	generator core.Generator,
	validator *validate.Validator,
	repo HistoryRepository,
) *Assistant {
	return &Assistant{
		appCfg:    appCfg,
		llmCfg:    llmCfg,
		ragSvc:    ragSvc,
		generator: generator,
		validator: validator,
		repo:      repo,
	}
}

func (a *Assistant) Ask(ctx context.Context, sessionID, query string) (Reply, error) {
	logger := log.FromCtx(ctx)

	ragCtx := a.ragSvc.ProcessQuery(query)
	logger.Debug().
		Str("priority", string(ragCtx.Priority)).
		Int("knowledge", len(ragCtx.Knowledge)).
		Msg("query processed")

	if err := a.repo.AddMessage(ctx, sessionID, core.Message{Role: core.RoleUser, Content: query}); err != nil {
		return Reply{}, fmt.Errorf("failed to save user message: %w", err)
	}

	history, err := a.repo.GetMessages(ctx, sessionID, a.appCfg.ContextWindowSize)
	if err != nil {
		return Reply{}, fmt.Errorf("failed to fetch history: %w", err)
	}

	// The contextual prompt carries the retrieved knowledge and the safety
	// constraints; history rides along as supplementary context only.
	messages := make([]core.Message, 0, len(history)+1)
	messages = append(messages, core.Message{Role: core.RoleSystem, Content: ragCtx.Prompt})
	messages = append(messages, history...)

	responseMsg, err := a.generator.Chat(ctx, messages, core.GenerateOptions{
		Temperature: a.llmCfg.Temperature,
		MaxTokens:   a.llmCfg.MaxTokens,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("%w: %v", core.ErrGeneration, err)
	}

	answer := responseMsg.Content
	result := a.validator.Validate(query, answer, ragCtx.Knowledge)
	fallback := !result.IsValid
	if fallback {
		logger.Warn().
			Float64("confidence", result.Confidence).
			Strs("warnings", result.Warnings).
			Msg("response failed validation, using safe fallback")
		if result.BlockedContent != "" {
			logger.Warn().Str("blocked", result.BlockedContent).Msg("blocked generated content")
		}
		answer = a.validator.SafeResponse(query, result)
	}

	if err := a.repo.AddMessage(ctx, sessionID, core.Message{Role: core.RoleAssistant, Content: answer}); err != nil {
		logger.Error().Err(err).Msg("failed to save assistant message")
	}

	return Reply{
		Answer:       decorate(answer, ragCtx.Priority, ragCtx.QuickActions),
		Priority:     ragCtx.Priority,
		QuickActions: ragCtx.QuickActions,
		Knowledge:    ragCtx.Knowledge,
		Fallback:     fallback,
	}, nil
}

// decorate adds the severity prefix and the quick-actions list. It runs
// after validation so the decorations never influence confidence scoring.
func decorate(answer string, priority rag.Priority, actions []string) string {
	switch priority {
	case rag.PriorityCritical:
		answer = "🚨 CRITICAL: " + answer
	case rag.PriorityUrgent:
		answer = "⚠️ URGENT: " + answer
	}

	if len(actions) > 0 {
		var b strings.Builder
		b.WriteString(answer)
		b.WriteString("\n\n**Quick Actions:**\n")
		for i, action := range actions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, action)
		}
		answer = b.String()
	}
	return answer
}
