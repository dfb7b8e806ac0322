package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAnthropicClient_Complete_Success(t *testing.T) {
	var gotKey, gotVersion string
	var gotBody anthropicRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-api-key")
		gotVersion = r.Header.Get("anthropic-version")
		if r.URL.Path != "/messages" {
			t.Errorf("path = %q, want /messages", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "\tHello there.  "},
			},
		})
	}))
	defer server.Close()

	client := NewAnthropicClient("sk-ant-test", WithAnthropicBaseURL(server.URL))

	text, err := client.Complete(context.Background(), "claude-3-haiku-20240307", "Say hello", 5*time.Second)
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if text != "Hello there." {
		t.Errorf("Complete() = %q, want trimmed text", text)
	}

	if gotKey != "sk-ant-test" {
		t.Errorf("x-api-key = %q, want sk-ant-test", gotKey)
	}
	if gotVersion != "2023-06-01" {
		t.Errorf("anthropic-version = %q, want 2023-06-01", gotVersion)
	}
	if gotBody.MaxTokens != 1000 {
		t.Errorf("max_tokens = %d, want 1000", gotBody.MaxTokens)
	}
	if len(gotBody.Messages) != 1 || gotBody.Messages[0].Role != "user" {
		t.Errorf("messages = %+v, want single user message", gotBody.Messages)
	}
}

func TestAnthropicClient_Complete_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"type":    "invalid_request_error",
				"message": "max_tokens: field required",
			},
		})
	}))
	defer server.Close()

	client := NewAnthropicClient("sk-ant-test", WithAnthropicBaseURL(server.URL))

	_, err := client.Complete(context.Background(), "claude-3-haiku-20240307", "hi", 5*time.Second)
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("error = %v, want *ProviderError", err)
	}
	if provErr.Message != "max_tokens: field required" {
		t.Errorf("Message = %q, want decoded envelope message", provErr.Message)
	}
	if provErr.Provider != "Anthropic" {
		t.Errorf("Provider = %q, want Anthropic", provErr.Provider)
	}
}

func TestAnthropicClient_Complete_RawBodyFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("overloaded"))
	}))
	defer server.Close()

	client := NewAnthropicClient("sk-ant-test", WithAnthropicBaseURL(server.URL))

	_, err := client.Complete(context.Background(), "claude-3-haiku-20240307", "hi", 5*time.Second)
	var provErr *ProviderError
	if !errors.As(err, &provErr) {
		t.Fatalf("error = %v, want *ProviderError", err)
	}
	if provErr.Message != "HTTP 503: overloaded" {
		t.Errorf("Message = %q, want HTTP 503 fallback", provErr.Message)
	}
}

func TestAnthropicClient_Complete_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewAnthropicClient("sk-ant-test", WithAnthropicBaseURL(server.URL))

	_, err := client.Complete(context.Background(), "claude-3-haiku-20240307", "hi", 20*time.Millisecond)
	var timeoutErr *TimeoutError
	if !errors.As(err, &timeoutErr) {
		t.Fatalf("error = %v, want *TimeoutError", err)
	}
}

func TestAnthropicClient_Name(t *testing.T) {
	if got := NewAnthropicClient("key").Name(); got != "anthropic" {
		t.Errorf("Name() = %q, want anthropic", got)
	}
}
