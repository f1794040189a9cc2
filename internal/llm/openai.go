package llm

import (
	"context"
	"fmt"
	"net/http"
	"os"

	openai "github.com/sashabaranov/go-openai"
)

// keylessPlaceholder is sent to endpoints that do not check credentials,
// such as a local Ollama server.
const keylessPlaceholder = "ollama"

// OpenAIProvider implements Provider against any endpoint that speaks the
// OpenAI Chat Completions API.
type OpenAIProvider struct {
	name       string
	baseURL    string
	apiKeyEnv  string
	model      string
	httpClient *http.Client
}

// NewOpenAIProvider creates a provider for the given preset. httpClient may
// be nil to use the library default.
func NewOpenAIProvider(name string, preset Preset, httpClient *http.Client) *OpenAIProvider {
	return &OpenAIProvider{
		name:       name,
		baseURL:    preset.BaseURL,
		apiKeyEnv:  preset.APIKeyEnv,
		model:      preset.Model,
		httpClient: httpClient,
	}
}

func (p *OpenAIProvider) Name() string {
	return p.name
}

// Model returns the model used when a request does not name one.
func (p *OpenAIProvider) Model() string {
	return p.model
}

// APIKeyEnv returns the environment variable holding the API key, or the
// empty string for endpoints that need none.
func (p *OpenAIProvider) APIKeyEnv() string {
	return p.apiKeyEnv
}

// apiKey reads the API key from the environment.
func (p *OpenAIProvider) apiKey() (string, error) {
	if p.apiKeyEnv == "" {
		return keylessPlaceholder, nil
	}
	key := os.Getenv(p.apiKeyEnv)
	if key == "" {
		return "", fmt.Errorf("%w: %s is not set", ErrMissingAPIKey, p.apiKeyEnv)
	}
	return key, nil
}

func (p *OpenAIProvider) client() (*openai.Client, error) {
	key, err := p.apiKey()
	if err != nil {
		return nil, err
	}
	cfg := openai.DefaultConfig(key)
	cfg.BaseURL = p.baseURL
	if p.httpClient != nil {
		cfg.HTTPClient = p.httpClient
	}
	return openai.NewClientWithConfig(cfg), nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	client, err := p.client()
	if err != nil {
		return nil, err
	}

	model := req.Model
	if model == "" {
		model = p.model
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	apiReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
	}

	resp, err := client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, err
	}

	out := &CompletionResponse{
		Choices:      len(resp.Choices),
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Model:        resp.Model,
	}
	if len(resp.Choices) > 0 {
		out.Content = resp.Choices[0].Message.Content
		out.FinishReason = string(resp.Choices[0].FinishReason)
	}
	return out, nil
}
