package ai

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"mirror-backend/pkg/sentiment"
)

// Deterministic substitutes used when no provider is configured or a live
// call fails. They never return an empty string.

// SummaryFallback joins the first three period-delimited segments of text
// and appends the classifier's tone. A short entry keeps a single closing period.
func SummaryFallback(text string) string {
	segments := strings.Split(text, ".")
	if len(segments) > 3 {
		segments = segments[:3]
	}
	summary := strings.TrimSuffix(strings.TrimSpace(strings.Join(segments, ".")), ".")
	return fmt.Sprintf("Summary: %s. Tone: %s.", summary, sentiment.Classify(text))
}

// ReflectionFallback renders a sentiment distribution as a mirror reflection.
// It is the single template for every reflection fallback.
func ReflectionFallback(userName string, counts sentiment.Counts) string {
	return fmt.Sprintf("Mirror Reflection for %s:\n"+
		"I notice a mix of emotions across your recent days (positive: %d, neutral: %d, negative: %d). "+
		"Themes of perseverance and self-awareness appear. Keep acknowledging your wins and giving yourself grace.",
		userName, counts.Positive, counts.Neutral, counts.Negative)
}

// ChatFallback echoes the tone of message back as a reflective question
func ChatFallback(message string) string {
	return fmt.Sprintf("Reflecting back, I hear %s energy. If you were advising a friend, what would you say now?",
		sentiment.Classify(message))
}

// errorKind labels a provider failure for logs and metrics
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, ErrEmptyCompletion):
		return "empty"
	case isQuotaError(err):
		return "quota"
	case isConnectionError(err):
		return "connection"
	default:
		return "provider"
	}
}

// isConnectionError checks if the error is a network/connection error
func isConnectionError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	connectionIndicators := []string{
		"connection refused",
		"no such host",
		"network is unreachable",
		"connection reset",
		"certificate",
		"timeout",
		"dial tcp",
		"eof",
	}
	for _, indicator := range connectionIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}
	return false
}

// isQuotaError checks if the error indicates rate limiting or quota exhaustion (429)
func isQuotaError(err error) bool {
	errStr := strings.ToLower(err.Error())
	quotaIndicators := []string{
		"429",
		"quota",
		"rate limit",
		"rate_limit",
		"too many requests",
		"resource_exhausted",
		"resource exhausted",
	}
	for _, indicator := range quotaIndicators {
		if strings.Contains(errStr, indicator) {
			return true
		}
	}
	return false
}
