package llm

import (
	"context"
	"errors"
)

// ErrMissingAPIKey is returned when the provider's API key is not present in
// the environment at request time.
var ErrMissingAPIKey = errors.New("provider API key is not configured")

// Provider defines the interface for LLM providers.
type Provider interface {
	// Complete sends a completion request and returns the response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// Name returns the name of this provider.
	Name() string
}
