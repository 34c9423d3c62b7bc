package ai

import (
	"context"
	"strings"
	"time"

	"mirror-backend/pkg/metrics"
	"mirror-backend/pkg/sentiment"

	"go.uber.org/zap"
)

// Source tells where a Result's text came from
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Result is the outcome of one enrichment operation. When the provider is
// absent the fallback text is returned with a nil Err. When a live call
// fails, Err is set and Text is empty: the caller decides the substitute.
type Result struct {
	Text   string
	Source Source
	Err    error
}

// Failed reports whether the live provider call failed
func (r Result) Failed() bool {
	return r.Err != nil
}

// ProbeResult is the outcome of a diagnostic provider call
type ProbeResult struct {
	OK       bool   `json:"ok"`
	Provider string `json:"provider,omitempty"`
	Reply    string `json:"reply,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

const (
	ProbeReasonNoClient  = "no_client"
	ProbeReasonException = "exception"
)

const defaultTimeout = 30 * time.Second

// Enricher produces summaries, reflections and chat replies. The provider is
// optional: a nil provider puts every operation in fallback mode.
type Enricher struct {
	provider Provider
	timeout  time.Duration
	logger   *zap.Logger
}

// NewEnricher creates an Enricher around an optional provider
func NewEnricher(provider Provider, timeout time.Duration, logger *zap.Logger) *Enricher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enricher{
		provider: provider,
		timeout:  timeout,
		logger:   logger.Named("ai"),
	}
}

// Available reports whether a live provider is configured
func (e *Enricher) Available() bool {
	return e.provider != nil
}

// ProviderName returns the configured vendor, or "" in fallback mode
func (e *Enricher) ProviderName() string {
	if e.provider == nil {
		return ""
	}
	return e.provider.Name()
}

// Summarize asks for a 3–4 sentence summary of one entry with its tone
func (e *Enricher) Summarize(ctx context.Context, text string) Result {
	return e.run(ctx, "summarize", CompletionRequest{
		Messages:  userPrompt(summarizePrompt(text)),
		MaxTokens: summaryMaxTokens,
	}, func() string { return SummaryFallback(text) })
}

// Reflect synthesizes a mirror-voice reflection over the newest entries.
// texts must be in chronological order; only the last MaxReflectionEntries are used.
func (e *Enricher) Reflect(ctx context.Context, userName string, texts []string) Result {
	if len(texts) > MaxReflectionEntries {
		texts = texts[len(texts)-MaxReflectionEntries:]
	}
	return e.run(ctx, "reflect", CompletionRequest{
		Messages:  userPrompt(reflectPrompt(userName, texts)),
		MaxTokens: reflectMaxTokens,
	}, func() string { return ReflectionFallback(userName, sentiment.Distribution(texts)) })
}

// Chat answers as the user's mirror twin, seeded with recent history
func (e *Enricher) Chat(ctx context.Context, userName, message string, history []Message) Result {
	return e.run(ctx, "chat", CompletionRequest{
		System:    chatSystemPrompt(userName),
		Messages:  chatMessages(message, history),
		MaxTokens: chatMaxTokens,
	}, func() string { return ChatFallback(message) })
}

// Probe makes a minimal live call to check reachability and credentials
func (e *Enricher) Probe(ctx context.Context) ProbeResult {
	if e.provider == nil {
		return ProbeResult{
			OK:     false,
			Reason: ProbeReasonNoClient,
			Detail: "AI provider not configured or missing API key",
		}
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	reply, err := e.provider.Complete(ctx, CompletionRequest{
		Messages:  userPrompt(probePrompt),
		MaxTokens: probeMaxTokens,
	})
	if err != nil {
		e.logger.Warn("AI probe failed", zap.String("provider", e.provider.Name()), zap.Error(err))
		return ProbeResult{
			OK:       false,
			Provider: e.provider.Name(),
			Reason:   ProbeReasonException,
			Detail:   err.Error(),
		}
	}
	return ProbeResult{OK: true, Provider: e.provider.Name(), Reply: reply}
}

func (e *Enricher) run(ctx context.Context, operation string, req CompletionRequest, fallback func() string) Result {
	if e.provider == nil {
		metrics.RecordEnrichment(operation, metrics.OutcomeFallback)
		return Result{Text: fallback(), Source: SourceFallback}
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	text, err := e.provider.Complete(ctx, req)
	metrics.ObserveEnrichment(operation, time.Since(start))

	if err == nil && strings.TrimSpace(text) == "" {
		err = ErrEmptyCompletion
	}
	if err != nil {
		metrics.RecordEnrichment(operation, metrics.OutcomeError)
		e.logger.Warn("AI call failed",
			zap.String("operation", operation),
			zap.String("provider", e.provider.Name()),
			zap.String("kind", errorKind(err)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return Result{Err: err}
	}

	metrics.RecordEnrichment(operation, metrics.OutcomeAI)
	return Result{Text: text, Source: SourceAI}
}
