// Package chat implements the completion proxy: it prefixes a conversation
// with the persona system prompt, forwards it to the completion provider and
// returns the first generated message.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GayathriPCh/LoLCode-AI/internal/llm"
	"github.com/GayathriPCh/LoLCode-AI/internal/persona"
)

const (
	// Temperature is the sampling temperature used for every request.
	Temperature = 0.84
	// DefaultModel is the model requested when none is configured.
	DefaultModel = "meta-llama/Meta-Llama-3.1-405B-Instruct"
	// FallbackContent replaces a reply that came back without content.
	FallbackContent = "Bruh, something went wrong. 🫠"
)

const systemTemplate = `You are lolcode AI. Speak in Leetcode slang. If roasting code, use this style: %s
Help LC-obsessed users with any question, but keep it straight, direct, and LC-style. Don't explain jokes or slang, just drop them naturally.
If they ask dumb stuff, just tell them to get out there and code. Also, old-school stuff like Bubble Sort is for history books, not production code. 🔥`

// SystemMessage builds the system message for the given persona. Unknown
// personas produce an empty style segment.
func SystemMessage(name string) llm.Message {
	return llm.Message{
		Role:    llm.RoleSystem,
		Content: fmt.Sprintf(systemTemplate, persona.Compose(name)),
	}
}

// BuildMessages returns the outbound conversation: the system message
// followed by history in its original order. history is not modified.
func BuildMessages(name string, history []llm.Message) []llm.Message {
	out := make([]llm.Message, 0, len(history)+1)
	out = append(out, SystemMessage(name))
	return append(out, history...)
}

// Proxy forwards conversations to a completion provider. It holds no
// per-request state and is safe for concurrent use.
type Proxy struct {
	provider  llm.Provider
	model     string
	maxTokens int
	logger    *slog.Logger
}

// Option configures a Proxy.
type Option func(*Proxy)

// WithModel sets the model identifier sent to the provider.
func WithModel(model string) Option {
	return func(p *Proxy) {
		if model != "" {
			p.model = model
		}
	}
}

// WithMaxTokens caps the reply length. Zero leaves it to the provider.
func WithMaxTokens(n int) Option {
	return func(p *Proxy) { p.maxTokens = n }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Proxy) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewProxy creates a Proxy backed by provider.
func NewProxy(provider llm.Provider, opts ...Option) *Proxy {
	p := &Proxy{
		provider: provider,
		model:    DefaultModel,
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Model returns the model identifier sent to the provider.
func (p *Proxy) Model() string { return p.model }

// Handle validates req, calls the provider once and returns its first reply.
// Empty provider output yields FallbackContent; a failed provider call
// yields an error wrapping ErrUpstream.
func (p *Proxy) Handle(ctx context.Context, req Request) (*Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if p.provider == nil {
		return nil, fmt.Errorf("%w: no completion provider", ErrConfiguration)
	}

	resp, err := p.provider.Complete(ctx, llm.CompletionRequest{
		Model:       p.model,
		Messages:    BuildMessages(req.Persona, req.Messages),
		MaxTokens:   p.maxTokens,
		Temperature: Temperature,
	})
	if err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}
		p.logger.Error("completion failed", "provider", p.provider.Name(), "persona", req.Persona, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}

	content := ""
	if resp != nil {
		content = resp.Content
	}
	if content == "" {
		p.logger.Warn("completion returned no content", "provider", p.provider.Name(), "persona", req.Persona)
		content = FallbackContent
	} else {
		p.logger.Debug("completion",
			"provider", p.provider.Name(),
			"persona", req.Persona,
			"messages", len(req.Messages),
			"input_tokens", resp.InputTokens,
			"output_tokens", resp.OutputTokens,
			"finish_reason", resp.FinishReason,
		)
	}

	return NewResponse(content), nil
}
