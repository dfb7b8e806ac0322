// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultAnthropicBaseURL is the default Anthropic API endpoint.
	DefaultAnthropicBaseURL = "https://api.anthropic.com/v1"

	// anthropicVersion is the API version header required by Anthropic.
	anthropicVersion = "2023-06-01"

	anthropicProviderName = "Anthropic"
)

// AnthropicClient implements CompletionClient for the Anthropic messages API.
// Anthropic uses its own wire format: x-api-key auth, a version header, and
// the completion text at content[0].text.
type AnthropicClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// AnthropicOption is a functional option for configuring AnthropicClient.
type AnthropicOption func(*AnthropicClient)

// WithAnthropicBaseURL sets a custom base URL for the Anthropic API.
func WithAnthropicBaseURL(url string) AnthropicOption {
	return func(c *AnthropicClient) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithAnthropicHTTPClient sets a custom HTTP client.
func WithAnthropicHTTPClient(client *http.Client) AnthropicOption {
	return func(c *AnthropicClient) {
		c.httpClient = client
	}
}

// NewAnthropicClient creates a new AnthropicClient with the given API key.
func NewAnthropicClient(apiKey string, opts ...AnthropicOption) *AnthropicClient {
	c := &AnthropicClient{
		apiKey:     apiKey,
		baseURL:    DefaultAnthropicBaseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name returns the provider identifier.
func (c *AnthropicClient) Name() string {
	return "anthropic"
}

// anthropicRequest is the request body for the messages endpoint.
type anthropicRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	Messages  []chatMessage `json:"messages"`
}

// anthropicResponse is the subset of the messages response we extract.
type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// anthropicErrorResponse is Anthropic's error envelope.
type anthropicErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends the prompt as a single user message and extracts the
// completion text from content[0].text.
func (c *AnthropicClient) Complete(ctx context.Context, model, prompt string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(anthropicRequest{
		Model:     model,
		MaxTokens: MaxOutputTokens,
		Messages:  []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal anthropic request: %w", err)
	}

	url := c.baseURL + "/messages"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", classifyTransportError(anthropicProviderName, err, timeout)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Provider: anthropicProviderName, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var envelope anthropicErrorResponse
		if err := json.Unmarshal(respBody, &envelope); err == nil && envelope.Error.Message != "" {
			return "", &ProviderError{Provider: anthropicProviderName, Message: envelope.Error.Message}
		}
		return "", &ProviderError{
			Provider: anthropicProviderName,
			Message:  fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody))),
		}
	}

	var completion anthropicResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", &ProviderError{Provider: anthropicProviderName, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	if len(completion.Content) == 0 {
		return "", &ProviderError{Provider: anthropicProviderName, Message: "response contained no content blocks"}
	}

	return strings.TrimSpace(completion.Content[0].Text), nil
}
