package providers

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	KindAuto   = "auto"
	KindLocal  = "local"
	KindOpenAI = "openai"
	KindOllama = "ollama"
	KindGroq   = "groq"
)

// Endpoint defaults for the OpenAI-compatible backends.
var endpoints = map[string]struct {
	baseURL string
	model   string
	label   string
}{
	KindOpenAI: {"", "gpt-4o-mini", "OpenAI"},
	KindOllama: {"http://localhost:11434/v1/", "llama3.1", "Ollama"},
	KindGroq:   {"https://api.groq.com/openai/v1/", "llama-3.1-8b-instant", "Groq"},
}

type SelectOptions struct {
	Kind       string
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	MaxRetries int
	Rand       *rand.Rand
}

// Select builds the provider named by opts.Kind. Auto picks OpenAI when an
// API key is configured and the local provider otherwise.
func Select(opts SelectOptions) (ContentProvider, error) {
	kind := strings.ToLower(strings.TrimSpace(opts.Kind))
	if kind == "" || kind == KindAuto {
		kind = KindLocal
		if opts.APIKey != "" {
			kind = KindOpenAI
		}
	}
	if kind == KindLocal {
		return NewLocalProvider(opts.Rand), nil
	}

	ep, ok := endpoints[kind]
	if !ok {
		return nil, fmt.Errorf("unknown content provider: %s", opts.Kind)
	}
	if kind != KindOllama && opts.APIKey == "" {
		return nil, fmt.Errorf("content provider %s requires an API key", kind)
	}
	baseURL, model := ep.baseURL, ep.model
	if opts.BaseURL != "" {
		baseURL = opts.BaseURL
	}
	if opts.Model != "" {
		model = opts.Model
	}
	apiKey := opts.APIKey
	if apiKey == "" {
		apiKey = kind
	}
	return NewOpenAIProvider(NewOpenAIProviderOptions{
		APIKey:     apiKey,
		BaseURL:    baseURL,
		Model:      model,
		Label:      ep.label,
		Timeout:    opts.Timeout,
		MaxRetries: opts.MaxRetries,
	}), nil
}
