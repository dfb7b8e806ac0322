// Package adapter provides implementations for external AI provider integrations.
package adapter

import (
	"context"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTogetherBaseURL is the default Together.ai API endpoint.
	DefaultTogetherBaseURL = "https://api.together.xyz/v1"

	togetherProviderName = "Together.ai"
)

// TogetherClient implements CompletionClient for the Together.ai API.
// Together exposes an OpenAI-compatible wire format, so the client reuses
// the shared chat completion round trip with its own endpoint and key.
type TogetherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// TogetherOption is a functional option for configuring TogetherClient.
type TogetherOption func(*TogetherClient)

// WithTogetherBaseURL sets a custom base URL for the Together.ai API.
func WithTogetherBaseURL(url string) TogetherOption {
	return func(c *TogetherClient) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithTogetherHTTPClient sets a custom HTTP client.
func WithTogetherHTTPClient(client *http.Client) TogetherOption {
	return func(c *TogetherClient) {
		c.httpClient = client
	}
}

// NewTogetherClient creates a new TogetherClient with the given API key.
func NewTogetherClient(apiKey string, opts ...TogetherOption) *TogetherClient {
	c := &TogetherClient{
		apiKey:     apiKey,
		baseURL:    DefaultTogetherBaseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name returns the provider identifier.
func (c *TogetherClient) Name() string {
	return "together"
}

// Complete sends the prompt as a single user message and extracts the
// completion text from choices[0].message.content.
func (c *TogetherClient) Complete(ctx context.Context, model, prompt string, timeout time.Duration) (string, error) {
	url := c.baseURL + "/chat/completions"
	header := http.Header{
		"Authorization": []string{"Bearer " + c.apiKey},
	}
	return completeChat(ctx, c.httpClient, togetherProviderName, url, header, model, prompt, timeout)
}
