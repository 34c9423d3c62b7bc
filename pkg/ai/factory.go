package ai

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"time"
)

// Config holds AI provider configuration
type Config struct {
	Provider ProviderType // "auto", "anthropic", "gemini" or "ollama"

	AnthropicAPIKey string
	AnthropicModel  string

	GeminiAPIKey string
	GeminiModel  string

	OllamaBaseURL string // e.g., "http://localhost:11434"
	OllamaModel   string // e.g., "llama3", "mistral"

	Timeout time.Duration
	// InsecureTLS disables certificate verification. Local development only.
	InsecureTLS bool
}

// NewProvider creates the Provider selected by cfg.Provider.
// A nil Provider with a nil error means no credentials are configured and
// every enrichment runs in fallback mode.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	httpClient := NewHTTPClient(cfg.Timeout, cfg.InsecureTLS)

	switch cfg.Provider {
	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, nil
		}
		return NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel, httpClient), nil

	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, nil
		}
		return newGemini(ctx, cfg, httpClient)

	case ProviderOllama:
		return NewOllamaProvider(cfg.OllamaBaseURL, cfg.OllamaModel, httpClient), nil

	case ProviderAuto, "":
		// Prefer Anthropic, then Gemini; Ollama must be chosen explicitly
		if cfg.AnthropicAPIKey != "" {
			return NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel, httpClient), nil
		}
		if cfg.GeminiAPIKey != "" {
			return newGemini(ctx, cfg, httpClient)
		}
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown AI provider %q", cfg.Provider)
	}
}

// newGemini keeps a failed construction from leaking a typed nil Provider
func newGemini(ctx context.Context, cfg Config, httpClient *http.Client) (Provider, error) {
	p, err := NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, httpClient)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// NewHTTPClient builds the transport shared by all providers
func NewHTTPClient(timeout time.Duration, insecure bool) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in dev toggle
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
