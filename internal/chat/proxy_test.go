package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/GayathriPCh/LoLCode-AI/internal/llm"
	"github.com/GayathriPCh/LoLCode-AI/internal/persona"
)

// mockProvider records requests and returns a canned response or error.
type mockProvider struct {
	mu       sync.Mutex
	calls    []llm.CompletionRequest
	response *llm.CompletionResponse
	err      error
}

func newMockProvider(content string) *mockProvider {
	return &mockProvider{response: &llm.CompletionResponse{Content: content, Choices: 1}}
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *mockProvider) lastCall(t *testing.T) llm.CompletionRequest {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		t.Fatal("provider was not called")
	}
	return m.calls[len(m.calls)-1]
}

func (m *mockProvider) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func TestSystemMessageEmbedsPersonaStyle(t *testing.T) {
	msg := SystemMessage(persona.BugFather)
	if msg.Role != llm.RoleSystem {
		t.Errorf("role = %q, want system", msg.Role)
	}
	if !strings.Contains(msg.Content, persona.Compose(persona.BugFather)) {
		t.Error("system message does not contain the BugFather style verbatim")
	}
	if !strings.Contains(msg.Content, "Bubble Sort is for history books") {
		t.Error("system message is missing the house style")
	}
}

func TestSystemMessageUnknownPersona(t *testing.T) {
	msg := SystemMessage("Unknown")
	if msg.Content != fmt.Sprintf(systemTemplate, "") {
		t.Errorf("unexpected system message for unknown persona: %q", msg.Content)
	}
}

func TestBuildMessagesPrependsSystem(t *testing.T) {
	history := []llm.Message{
		{Role: llm.RoleUser, Content: "two sum?"},
		{Role: llm.RoleAssistant, Content: "hash map, duh"},
		{Role: llm.RoleUser, Content: "and three sum?"},
	}
	out := BuildMessages(persona.LeetGuru, history)

	if len(out) != len(history)+1 {
		t.Fatalf("len = %d, want %d", len(out), len(history)+1)
	}
	if out[0].Role != llm.RoleSystem {
		t.Errorf("first message role = %q, want system", out[0].Role)
	}
	for i, m := range history {
		if out[i+1] != m {
			t.Errorf("out[%d] = %+v, want %+v", i+1, out[i+1], m)
		}
	}
	if history[0].Content != "two sum?" {
		t.Error("history was modified")
	}
}

func TestHandleForwardsConversation(t *testing.T) {
	mock := newMockProvider("O(n) or go home")
	proxy := NewProxy(mock)

	req := Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "print('hi')"}},
		Persona:  persona.BugFather,
	}
	resp, err := proxy.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Choices) != 1 || resp.Content() != "O(n) or go home" {
		t.Errorf("unexpected response: %+v", resp)
	}

	call := mock.lastCall(t)
	if call.Model != DefaultModel {
		t.Errorf("model = %q, want %q", call.Model, DefaultModel)
	}
	if call.Temperature != Temperature {
		t.Errorf("temperature = %v, want %v", call.Temperature, Temperature)
	}
	if len(call.Messages) != 2 {
		t.Fatalf("expected 2 outbound messages, got %d", len(call.Messages))
	}
	if !strings.Contains(call.Messages[0].Content, persona.Compose(persona.BugFather)) {
		t.Error("outbound system message is missing the persona style")
	}
	if call.Messages[1] != req.Messages[0] {
		t.Errorf("outbound user message = %+v, want %+v", call.Messages[1], req.Messages[0])
	}
}

func TestHandleEmptyMessages(t *testing.T) {
	mock := newMockProvider("ok")
	proxy := NewProxy(mock)

	if _, err := proxy.Handle(context.Background(), Request{Messages: []llm.Message{}, Persona: persona.MemeLord}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := mock.lastCall(t)
	if len(call.Messages) != 1 || call.Messages[0].Role != llm.RoleSystem {
		t.Errorf("expected only the system message, got %+v", call.Messages)
	}
}

func TestHandleUnknownPersona(t *testing.T) {
	mock := newMockProvider("ok")
	proxy := NewProxy(mock)

	resp, err := proxy.Handle(context.Background(), Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
		Persona:  "Unknown",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Content() != "ok" {
		t.Errorf("content = %q", resp.Content())
	}
	if got := mock.lastCall(t).Messages[0].Content; got != SystemMessage("").Content {
		t.Errorf("unexpected system message: %q", got)
	}
}

func TestHandleFallbackOnEmptyContent(t *testing.T) {
	tests := []struct {
		name     string
		response *llm.CompletionResponse
	}{
		{"no choices", &llm.CompletionResponse{Choices: 0}},
		{"empty content", &llm.CompletionResponse{Choices: 1, Content: ""}},
		{"nil response", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockProvider{response: tt.response}
			resp, err := NewProxy(mock).Handle(context.Background(), Request{
				Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Content() != FallbackContent {
				t.Errorf("content = %q, want fallback", resp.Content())
			}
		})
	}
}

func TestHandleProviderFailure(t *testing.T) {
	mock := &mockProvider{err: errors.New("connection refused")}
	_, err := NewProxy(mock).Handle(context.Background(), Request{
		Messages: []llm.Message{{Role: llm.RoleUser, Content: "hi"}},
	})
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("error should carry the cause: %v", err)
	}
}

func TestHandleMissingAPIKey(t *testing.T) {
	mock := &mockProvider{err: fmt.Errorf("%w: NEBIUS_API_KEY is not set", llm.ErrMissingAPIKey)}
	_, err := NewProxy(mock).Handle(context.Background(), Request{Messages: []llm.Message{}})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
	if errors.Is(err, ErrUpstream) {
		t.Error("configuration error must not be reported as upstream failure")
	}
}

func TestHandleNilProvider(t *testing.T) {
	_, err := NewProxy(nil).Handle(context.Background(), Request{Messages: []llm.Message{}})
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestHandleRejectsInvalidRole(t *testing.T) {
	mock := newMockProvider("ok")
	_, err := NewProxy(mock).Handle(context.Background(), Request{
		Messages: []llm.Message{{Role: "tool", Content: "hi"}},
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
	if mock.callCount() != 0 {
		t.Error("provider must not be called for an invalid request")
	}
}

func TestHandleRoundTripsReplies(t *testing.T) {
	replies := []string{
		"```python\nprint('hi')\n```",
		"| a | b |\n|---|---|\n| 1 | 2 |",
		"ünïcödé 🔥 日本語 \"quotes\" and \\backslashes\\",
	}

	history := []llm.Message{{Role: llm.RoleUser, Content: "start"}}
	for _, reply := range replies {
		mock := newMockProvider(reply)
		proxy := NewProxy(mock)

		resp, err := proxy.Handle(context.Background(), Request{Messages: history, Persona: persona.MemeLord})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		history = append(history, llm.Message{Role: llm.RoleUser, Content: resp.Content()})

		if _, err := proxy.Handle(context.Background(), Request{Messages: history, Persona: persona.MemeLord}); err != nil {
			t.Fatalf("feeding reply back failed: %v", err)
		}
		last := mock.lastCall(t).Messages
		if last[len(last)-1].Content != reply {
			t.Errorf("reply was altered on the way back: %q", last[len(last)-1].Content)
		}
	}
}

func TestWithModelAndMaxTokens(t *testing.T) {
	mock := newMockProvider("ok")
	proxy := NewProxy(mock, WithModel("custom-model"), WithMaxTokens(256), WithModel(""))

	if proxy.Model() != "custom-model" {
		t.Errorf("model = %q", proxy.Model())
	}
	if _, err := proxy.Handle(context.Background(), Request{Messages: []llm.Message{}}); err != nil {
		t.Fatal(err)
	}
	call := mock.lastCall(t)
	if call.Model != "custom-model" || call.MaxTokens != 256 {
		t.Errorf("unexpected call: %+v", call)
	}
}

func TestConcurrentHandle(t *testing.T) {
	mock := newMockProvider("ok")
	proxy := NewProxy(mock)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf("msg %d", i)}
			if _, err := proxy.Handle(context.Background(), Request{Messages: []llm.Message{msg}}); err != nil {
				t.Errorf("request %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	if mock.callCount() != 20 {
		t.Errorf("expected 20 provider calls, got %d", mock.callCount())
	}
}
