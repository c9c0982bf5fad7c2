package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/quakeaid/internal/knowledge"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	store, err := knowledge.Load()
	require.NoError(t, err)
	return New(NewCommands(store))
}

func TestRouterIgnoresPlainText(t *testing.T) {
	r := newTestRouter(t)

	_, handled := r.Execute(context.Background(), "s1", "what do I do during an earthquake?")
	assert.False(t, handled)
}

func TestRouterUnknownCommand(t *testing.T) {
	r := newTestRouter(t)

	out, handled := r.Execute(context.Background(), "s1", "/nope")
	assert.True(t, handled)
	assert.Contains(t, out, "Unknown command: /nope")
}

func TestKBListAndLookup(t *testing.T) {
	r := newTestRouter(t)

	out, handled := r.Execute(context.Background(), "s1", "/kb")
	require.True(t, handled)
	assert.Contains(t, out, "eq-001")

	out, handled = r.Execute(context.Background(), "s1", "/kb eq-004")
	require.True(t, handled)
	assert.Contains(t, out, "Controlling Severe Bleeding")

	out, handled = r.Execute(context.Background(), "s1", "/kb nope")
	require.True(t, handled)
	assert.Contains(t, out, "unknown knowledge id")
}

func TestSourcesAndCategories(t *testing.T) {
	r := newTestRouter(t)

	out, handled := r.Execute(context.Background(), "s1", "/sources")
	require.True(t, handled)
	assert.NotEmpty(t, out)

	out, handled = r.Execute(context.Background(), "s1", "/categories")
	require.True(t, handled)
	assert.Contains(t, out, "medical")
}
