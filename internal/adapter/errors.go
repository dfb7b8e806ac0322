// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// TimeoutError reports that an upstream call exceeded its per-call timeout.
type TimeoutError struct {
	// Provider is the identifier of the client that timed out.
	Provider string

	// Timeout is the deadline that was applied to the call.
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s", e.Timeout)
}

// NetworkError reports a transport-level failure before an HTTP status was
// received (DNS, connection refused, broken pipe, ...).
type NetworkError struct {
	// Provider is the identifier of the client that failed.
	Provider string

	// Err is the underlying transport error.
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ProviderError reports a failure surfaced by the provider itself: a non-2xx
// status, an undecodable response, or an empty completion.
type ProviderError struct {
	// Provider is the vendor name for user-facing messages.
	Provider string

	// Message is the human-readable detail extracted from the provider's
	// error envelope, or the raw "HTTP {status}: {body}" fallback.
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Message)
}

// classifyTransportError normalizes an error from http.Client.Do into the
// adapter taxonomy. Deadline expiry becomes a TimeoutError carrying the
// timeout that was in force; everything else is a NetworkError.
func classifyTransportError(provider string, err error, timeout time.Duration) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Provider: provider, Timeout: timeout}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TimeoutError{Provider: provider, Timeout: timeout}
	}
	return &NetworkError{Provider: provider, Err: err}
}
