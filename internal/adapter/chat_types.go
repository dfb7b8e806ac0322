// Package adapter provides implementations for external AI provider integrations.
package adapter

// OpenAI-style chat completion wire types, shared by the OpenAI and
// Together.ai clients (Together exposes an OpenAI-compatible API).

// chatRequest is the request body for /chat/completions endpoints.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

// chatMessage is a single message in the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the subset of the completion response we extract.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// chatErrorResponse is the error envelope used by OpenAI-compatible APIs.
type chatErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    any    `json:"code"`
	} `json:"error"`
}
