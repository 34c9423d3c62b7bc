package ai

import (
	"context"
	"errors"
)

// Role is the speaker of a chat turn
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single chat turn sent to a provider
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is a provider-neutral chat completion call
type CompletionRequest struct {
	System    string
	Messages  []Message
	MaxTokens int
}

// Provider is the interface every LLM vendor implements.
// Implement this interface to add a new vendor (Anthropic, Gemini, Ollama, ...)
type Provider interface {
	// Complete runs one chat completion and returns the concatenated text reply
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Name identifies the vendor in logs and metrics
	Name() string
}

// ProviderType represents the configured AI provider
type ProviderType string

const (
	ProviderAuto      ProviderType = "auto"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderGemini    ProviderType = "gemini"
	ProviderOllama    ProviderType = "ollama"
)

// ErrEmptyCompletion is returned when a provider answers with no text
var ErrEmptyCompletion = errors.New("provider returned an empty completion")

// userPrompt wraps a single prompt as a one-turn conversation
func userPrompt(prompt string) []Message {
	return []Message{{Role: RoleUser, Content: prompt}}
}
