package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/quakeaid/internal/config"
	"github.com/sandevgo/quakeaid/internal/core"
	"github.com/sandevgo/quakeaid/internal/knowledge"
	"github.com/sandevgo/quakeaid/internal/rag"
	"github.com/sandevgo/quakeaid/internal/validate"
)

type memRepo struct {
	messages map[string][]core.Message
}

func newMemRepo() *memRepo {
	return &memRepo{messages: make(map[string][]core.Message)}
}

func (r *memRepo) AddMessage(_ context.Context, sessionID string, msg core.Message) error {
	r.messages[sessionID] = append(r.messages[sessionID], msg)
	return nil
}

func (r *memRepo) GetMessages(_ context.Context, sessionID string, limit int) ([]core.Message, error) {
	msgs := r.messages[sessionID]
	if len(msgs) > limit {
		msgs = msgs[len(msgs)-limit:]
	}
	return msgs, nil
}

type stubGenerator struct {
	response string
	err      error
	// last captured request for assertions
	messages []core.Message
	opts     core.GenerateOptions
}

func (g *stubGenerator) Chat(_ context.Context, messages []core.Message, opts core.GenerateOptions) (core.Message, error) {
	g.messages = messages
	g.opts = opts
	if g.err != nil {
		return core.Message{}, g.err
	}
	return core.Message{Role: core.RoleAssistant, Content: g.response}, nil
}

func testValidatorConfig() *config.ValidatorConfig {
	return &config.ValidatorConfig{
		HedgingPenalty:    0.2,
		GroundingRatio:    0.3,
		GroundingPenalty:  0.3,
		MedicalPenalty:    0.4,
		RedirectPenalty:   0.5,
		FantasyPenalty:    0.8,
		OffTopicPenalty:   0.4,
		ValidThreshold:    0.5,
		BlockingThreshold: 0.3,
	}
}

func newTestAssistant(t *testing.T, gen core.Generator) (*Assistant, *memRepo) {
	t.Helper()

	store, err := knowledge.Load()
	require.NoError(t, err)

	repo := newMemRepo()
	a := New(
		&config.AppConfig{ContextWindowSize: 10},
		&config.LLMConfig{Temperature: 0.3, MaxTokens: 300},
		rag.NewService(store, &config.RAGConfig{MaxResults: 3}),
		gen,
		validate.NewValidator(testValidatorConfig()),
		repo,
	)
	return a, repo
}

func TestAskGroundedMedicalEmergency(t *testing.T) {
	gen := &stubGenerator{
		response: "Apply firm direct pressure on the wound with a clean cloth. " +
			"If blood soaks through, add more cloth on top. " +
			"Call emergency services for any severe bleeding.",
	}
	a, repo := newTestAssistant(t, gen)

	reply, err := a.Ask(context.Background(), "s1", "I am bleeding badly from a cut")
	require.NoError(t, err)

	assert.Equal(t, rag.PriorityCritical, reply.Priority)
	assert.False(t, reply.Fallback)
	assert.NotEmpty(t, reply.Knowledge)

	// Decorations: severity prefix first, quick actions appended.
	assert.True(t, len(reply.Answer) > len(gen.response))
	assert.Contains(t, reply.Answer, "🚨 CRITICAL: Apply firm direct pressure")
	assert.Contains(t, reply.Answer, "**Quick Actions:**")
	assert.Contains(t, reply.Answer, "1. Apply direct pressure with clean cloth")

	// Generator got the contextual prompt plus the saved user turn.
	require.NotEmpty(t, gen.messages)
	assert.Equal(t, core.RoleSystem, gen.messages[0].Role)
	assert.Contains(t, gen.messages[0].Content, "Controlling Severe Bleeding")
	assert.Equal(t, 0.3, gen.opts.Temperature)

	// The undecorated answer is what lands in history.
	msgs := repo.messages["s1"]
	require.Len(t, msgs, 2)
	assert.Equal(t, gen.response, msgs[1].Content)
}

func TestAskOffTopicHedgingFallsBack(t *testing.T) {
	gen := &stubGenerator{
		response: "I think it is probably sunny, maybe check a weather app.",
	}
	a, _ := newTestAssistant(t, gen)

	reply, err := a.Ask(context.Background(), "s1", "what's the weather like today?")
	require.NoError(t, err)

	assert.True(t, reply.Fallback)
	assert.Equal(t, rag.PriorityNormal, reply.Priority)
	assert.Empty(t, reply.Knowledge)
	assert.Empty(t, reply.QuickActions)

	// Redirect fallback, not the blocked generation.
	assert.Contains(t, reply.Answer, "earthquake survival assistant")
	assert.NotContains(t, reply.Answer, "weather app")
}

func TestAskGenerationFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	a, _ := newTestAssistant(t, gen)

	_, err := a.Ask(context.Background(), "s1", "earthquake started, what do I do?")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrGeneration)
}

func TestAskDeterministicAcrossCalls(t *testing.T) {
	gen := &stubGenerator{
		response: "Drop, take cover under a sturdy table, and hold on until the shaking stops.",
	}
	a, _ := newTestAssistant(t, gen)

	first, err := a.Ask(context.Background(), "s1", "the ground is shaking")
	require.NoError(t, err)
	second, err := a.Ask(context.Background(), "s2", "the ground is shaking")
	require.NoError(t, err)

	assert.Equal(t, first.Priority, second.Priority)
	assert.Equal(t, first.QuickActions, second.QuickActions)
}
