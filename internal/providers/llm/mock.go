package llm

import (
	"context"
	"sync"

	"github.com/sandevgo/quakeaid/internal/core"
)

// Mock is a deterministic offline generator. It replays scripted responses
// in order and repeats the last one when the script runs out, which makes
// it usable both in tests and as a no-network fallback provider.
type Mock struct {
	mu        sync.Mutex
	responses []string
	calls     int

	// Err, when set, is returned by every Chat call.
	Err error
}

const mockDefaultResponse = "Drop to the ground, take cover under a sturdy table, " +
	"and hold on until the shaking stops. Stay away from windows and anything that can fall."

func NewMock(responses ...string) *Mock {
	if len(responses) == 0 {
		responses = []string{mockDefaultResponse}
	}
	return &Mock{responses: responses}
}

func (m *Mock) Chat(_ context.Context, _ []core.Message, _ core.GenerateOptions) (core.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return core.Message{}, m.Err
	}

	idx := m.calls
	if idx >= len(m.responses) {
		idx = len(m.responses) - 1
	}
	m.calls++

	return core.Message{
		Role:    core.RoleAssistant,
		Content: m.responses[idx],
	}, nil
}

// Calls reports how many times Chat was invoked.
func (m *Mock) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
