package core

import (
	"context"
	"errors"
)

// ErrGeneration marks failures of the generation collaborator (timeout,
// auth, rate limit, model not loaded). Transports show these as a distinct
// "couldn't generate a response" message, never as a validation fallback.
var ErrGeneration = errors.New("generation failed")

type GenerateOptions struct {
	Temperature float64
	MaxTokens   int
}

// Generator is the external generation collaborator: prompt in, text out.
// Implementations are interchangeable (remote API, local model server, mock)
// and are selected at composition time.
type Generator interface {
	Chat(ctx context.Context, messages []Message, opts GenerateOptions) (Message, error)
}
