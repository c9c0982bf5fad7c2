package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/quakeaid/internal/core"
	"github.com/sandevgo/quakeaid/pkg/retry"
)

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OpenAICompatible {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	p := NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		Model:      "test-model",
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})
	// Fast retries so failure paths don't slow the suite down.
	p.retrier = retry.NewRetrier(&retry.Config{
		MaxRetries:    2,
		BackoffFactor: 1.0,
		InitialDelay:  time.Millisecond,
		MaxDelay:      time.Millisecond,
		Retryable:     isRetryable,
	})
	return p
}

func completionBody(content string) string {
	return `{"choices":[{"message":{"role":"assistant","content":` + jsonString(content) + `}}]}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestChatSendsPayloadAndAuth(t *testing.T) {
	var gotPath, gotAuth string
	var gotPayload map[string]any

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.Write([]byte(completionBody("Drop, cover, and hold on.")))
	})

	msg, err := p.Chat(context.Background(), []core.Message{
		{Role: core.RoleSystem, Content: "context"},
		{Role: core.RoleUser, Content: "earthquake started"},
	}, core.GenerateOptions{Temperature: 0.3, MaxTokens: 300})
	require.NoError(t, err)

	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotPayload["model"])
	assert.Equal(t, 0.3, gotPayload["temperature"])
	assert.Equal(t, float64(300), gotPayload["max_tokens"])
	assert.Len(t, gotPayload["messages"], 2)

	assert.Equal(t, core.RoleAssistant, msg.Role)
	assert.Equal(t, "Drop, cover, and hold on.", msg.Content)
}

func TestChatRetriesServerErrors(t *testing.T) {
	var calls int
	p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(completionBody("ok")))
	})

	msg, err := p.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: "hi"}}, core.GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ok", msg.Content)
	assert.Equal(t, 3, calls)
}

func TestChatDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"bad key"}`))
	})

	_, err := p.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: "hi"}}, core.GenerateOptions{})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "401")
}

func TestChatEmptyChoices(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	_, err := p.Chat(context.Background(), []core.Message{{Role: core.RoleUser, Content: "hi"}}, core.GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty choices")
}

func TestMockReplaysScript(t *testing.T) {
	m := NewMock("first", "second")

	for _, want := range []string{"first", "second", "second"} {
		msg, err := m.Chat(context.Background(), nil, core.GenerateOptions{})
		require.NoError(t, err)
		assert.Equal(t, want, msg.Content)
	}
	assert.Equal(t, 3, m.Calls())
}
