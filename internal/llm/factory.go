package llm

import (
	"fmt"
	"net/http"
	"sort"
)

// Preset describes an OpenAI-compatible endpoint.
type Preset struct {
	BaseURL   string
	APIKeyEnv string
	Model     string
}

// presets maps provider names to their endpoints. Every supported provider
// speaks the OpenAI chat completions protocol.
var presets = map[string]Preset{
	"nebius": {
		BaseURL:   "https://api.studio.nebius.com/v1/",
		APIKeyEnv: "NEBIUS_API_KEY",
		Model:     "meta-llama/Meta-Llama-3.1-405B-Instruct",
	},
	"openai": {
		BaseURL:   "https://api.openai.com/v1",
		APIKeyEnv: "OPENAI_API_KEY",
		Model:     "gpt-4o",
	},
	"openrouter": {
		BaseURL:   "https://openrouter.ai/api/v1",
		APIKeyEnv: "OPENROUTER_API_KEY",
		Model:     "meta-llama/llama-3.1-405b-instruct",
	},
	"ollama": {
		BaseURL: "http://localhost:11434/v1",
		Model:   "llama3.1",
	},
}

// GetPreset returns the preset for the named provider.
func GetPreset(provider string) (Preset, bool) {
	p, ok := presets[provider]
	return p, ok
}

// ProviderNames returns the supported provider names, sorted.
func ProviderNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Options selects and overrides a provider preset. Empty fields fall back to
// the preset's values.
type Options struct {
	Provider   string
	Model      string
	BaseURL    string
	APIKeyEnv  string
	HTTPClient *http.Client
}

// NewProvider creates a new LLM provider from the given options. The API key
// is not read here; it is resolved from the environment on every request.
func NewProvider(opts Options) (Provider, error) {
	preset, ok := presets[opts.Provider]
	if !ok {
		return nil, fmt.Errorf("unsupported provider type: %s", opts.Provider)
	}

	if opts.Model != "" {
		preset.Model = opts.Model
	}
	if opts.BaseURL != "" {
		preset.BaseURL = opts.BaseURL
	}
	if opts.APIKeyEnv != "" {
		preset.APIKeyEnv = opts.APIKeyEnv
	}

	return NewOpenAIProvider(opts.Provider, preset, opts.HTTPClient), nil
}
