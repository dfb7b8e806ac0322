// Package adapter provides implementations for external AI provider integrations.
// It uses the Adapter pattern to abstract provider-specific APIs behind a common interface.
package adapter

import (
	"context"
	"time"
)

// CompletionClient defines the interface for AI provider adapters.
// All provider implementations must satisfy this interface.
type CompletionClient interface {
	// Complete sends a single-user-message chat completion request and
	// returns the completion text with surrounding whitespace trimmed.
	// The timeout bounds this one upstream call; when it fires the error
	// is a *TimeoutError.
	Complete(ctx context.Context, model, prompt string, timeout time.Duration) (string, error)

	// Name returns the provider's identifier string.
	Name() string
}

const (
	// DefaultTimeout is the timeout applied to primary completion calls
	// when the caller does not supply one.
	DefaultTimeout = 20 * time.Second

	// ProbeTimeout is the shorter timeout used for diagnostic connection probes.
	ProbeTimeout = 10 * time.Second

	// MaxOutputTokens bounds the length of every completion.
	MaxOutputTokens = 1000

	// Temperature is the fixed sampling temperature for completions.
	Temperature = 0.7
)
