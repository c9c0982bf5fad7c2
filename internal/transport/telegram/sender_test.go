package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitHTMLShortTextSingleChunk(t *testing.T) {
	chunks := splitHTML("hello", 100)
	assert.Equal(t, []string{"hello"}, chunks)
}

func TestSplitHTMLPrefersNewlines(t *testing.T) {
	text := strings.Repeat("line one\n", 20)
	chunks := splitHTML(text, 100)

	assert.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 100)
	}
	// First chunk ends at a line boundary, not mid-word.
	assert.True(t, strings.HasSuffix(chunks[0], "line one"))
}

func TestSplitHTMLHardCutWithoutNewlines(t *testing.T) {
	text := strings.Repeat("a", 250)
	chunks := splitHTML(text, 100)

	assert.Len(t, chunks, 3)
	assert.Equal(t, 100, len(chunks[0]))
	assert.Equal(t, 50, len(chunks[2]))
}
