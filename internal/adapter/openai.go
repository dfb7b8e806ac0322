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
	// DefaultOpenAIBaseURL is the default OpenAI API endpoint.
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"

	openAIProviderName = "OpenAI"
)

// OpenAIClient implements CompletionClient for the OpenAI chat completions API.
type OpenAIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// OpenAIOption is a functional option for configuring OpenAIClient.
type OpenAIOption func(*OpenAIClient)

// WithOpenAIBaseURL sets a custom base URL for the OpenAI API.
func WithOpenAIBaseURL(url string) OpenAIOption {
	return func(c *OpenAIClient) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithOpenAIHTTPClient sets a custom HTTP client.
func WithOpenAIHTTPClient(client *http.Client) OpenAIOption {
	return func(c *OpenAIClient) {
		c.httpClient = client
	}
}

// NewOpenAIClient creates a new OpenAIClient with the given API key.
func NewOpenAIClient(apiKey string, opts ...OpenAIOption) *OpenAIClient {
	c := &OpenAIClient{
		apiKey:     apiKey,
		baseURL:    DefaultOpenAIBaseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Name returns the provider identifier.
func (c *OpenAIClient) Name() string {
	return "openai"
}

// Complete sends the prompt as a single user message and extracts the
// completion text from choices[0].message.content.
func (c *OpenAIClient) Complete(ctx context.Context, model, prompt string, timeout time.Duration) (string, error) {
	url := c.baseURL + "/chat/completions"
	header := http.Header{
		"Authorization": []string{"Bearer " + c.apiKey},
	}
	return completeChat(ctx, c.httpClient, openAIProviderName, url, header, model, prompt, timeout)
}

// completeChat runs one OpenAI-shaped chat completion round trip: build the
// JSON body, POST with the per-call timeout, decode the error envelope on
// non-2xx, and extract the first choice's text. Shared by the OpenAI and
// Together.ai clients.
func completeChat(ctx context.Context, httpClient *http.Client, provider, url string, header http.Header, model, prompt string, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   MaxOutputTokens,
		Temperature: Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s request: %w", provider, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for key, values := range header {
		for _, v := range values {
			httpReq.Header.Set(key, v)
		}
	}

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return "", classifyTransportError(provider, err, timeout)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &NetworkError{Provider: provider, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ProviderError{Provider: provider, Message: chatErrorMessage(resp.StatusCode, respBody)}
	}

	var completion chatResponse
	if err := json.Unmarshal(respBody, &completion); err != nil {
		return "", &ProviderError{Provider: provider, Message: fmt.Sprintf("failed to decode response: %v", err)}
	}
	if len(completion.Choices) == 0 {
		return "", &ProviderError{Provider: provider, Message: "response contained no choices"}
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

// chatErrorMessage extracts the human-readable message from an
// OpenAI-compatible error envelope, falling back to the raw body.
func chatErrorMessage(status int, body []byte) string {
	var envelope chatErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return fmt.Sprintf("HTTP %d: %s", status, strings.TrimSpace(string(body)))
}
