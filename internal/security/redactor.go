// Package security provides data leakage prevention utilities.
// Upstream error messages can echo request details, so everything logged or
// returned to callers passes through the redactor first.
package security

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// RedactedPlaceholder replaces sensitive data in log output.
const RedactedPlaceholder = "[REDACTED]"

// sensitivePatterns contains regex patterns for the credential formats of
// the supported providers.
var sensitivePatterns = []*regexp.Regexp{
	// Anthropic keys: sk-ant-... (must run before the generic sk- pattern)
	regexp.MustCompile(`sk-ant-[a-zA-Z0-9_-]{20,}`),
	// OpenAI keys: sk-...
	regexp.MustCompile(`sk-[a-zA-Z0-9]{20,}`),
	// Bearer tokens embedded in echoed headers
	regexp.MustCompile(`Bearer\s+[a-zA-Z0-9_-]{20,}`),
	// Generic long alphanumeric strings that look like keys (Together keys
	// have no distinctive prefix)
	regexp.MustCompile(`[a-zA-Z0-9_-]{40,}`),
}

// Redact scans a string for credential patterns and replaces them.
func Redact(s string) string {
	result := s
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedPlaceholder)
	}
	return result
}

// RedactedHandler wraps an slog.Handler and redacts sensitive data from log records.
type RedactedHandler struct {
	inner slog.Handler
}

// NewRedactedHandler creates a handler that wraps an existing handler and
// redacts sensitive data from all log output.
func NewRedactedHandler(inner slog.Handler) *RedactedHandler {
	return &RedactedHandler{inner: inner}
}

// Enabled reports whether the handler handles records at the given level.
func (h *RedactedHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle processes a log record, redacting sensitive data.
func (h *RedactedHandler) Handle(ctx context.Context, r slog.Record) error {
	clean := slog.Record{
		Time:    r.Time,
		Message: Redact(r.Message),
		Level:   r.Level,
		PC:      r.PC,
	}

	r.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(redactAttr(a))
		return true
	})

	return h.inner.Handle(ctx, clean)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *RedactedHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = redactAttr(a)
	}
	return &RedactedHandler{inner: h.inner.WithAttrs(redacted)}
}

// WithGroup returns a new handler with the given group name.
func (h *RedactedHandler) WithGroup(name string) slog.Handler {
	return &RedactedHandler{inner: h.inner.WithGroup(name)}
}

// redactAttr redacts sensitive data from a single attribute.
func redactAttr(a slog.Attr) slog.Attr {
	if isSensitiveKey(strings.ToLower(a.Key)) {
		return slog.String(a.Key, RedactedPlaceholder)
	}

	if v, ok := a.Value.Any().(string); ok {
		return slog.String(a.Key, Redact(v))
	}

	return a
}

// isSensitiveKey checks if an attribute key is known to contain sensitive data.
func isSensitiveKey(key string) bool {
	sensitiveKeys := []string{
		"authorization",
		"api_key",
		"apikey",
		"api-key",
		"secret",
		"token",
		"credential",
	}

	for _, k := range sensitiveKeys {
		if strings.Contains(key, k) {
			return true
		}
	}
	return false
}
