// Package tests provides end-to-end integration tests for agent-arena.
package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/internstack/agent-arena/internal/adapter"
	"github.com/internstack/agent-arena/internal/completion"
	"github.com/internstack/agent-arena/internal/domain"
	"github.com/internstack/agent-arena/internal/handler"
	"github.com/internstack/agent-arena/internal/orchestrator"
)

// capturedCall records one upstream request seen by a mock provider.
type capturedCall struct {
	Auth   string
	Model  string
	Prompt string
}

// mockOpenAIServer simulates an OpenAI-compatible chat completions endpoint.
// Every request is recorded; the response echoes a fixed answer per model.
func mockOpenAIServer(t *testing.T, calls *[]capturedCall, mu *sync.Mutex) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("mock openai: decode request: %v", err)
		}

		prompt := ""
		if len(req.Messages) > 0 {
			prompt = req.Messages[0].Content
		}
		mu.Lock()
		*calls = append(*calls, capturedCall{
			Auth:   r.Header.Get("Authorization"),
			Model:  req.Model,
			Prompt: prompt,
		})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "answer from " + req.Model}},
			},
		})
	}))
}

// mockAnthropicServer simulates the Anthropic messages endpoint.
func mockAnthropicServer(t *testing.T, calls *[]capturedCall, mu *sync.Mutex) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("anthropic-version"); got != "2023-06-01" {
			t.Errorf("mock anthropic: anthropic-version = %q", got)
		}

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("mock anthropic: decode request: %v", err)
		}

		prompt := ""
		if len(req.Messages) > 0 {
			prompt = req.Messages[0].Content
		}
		mu.Lock()
		*calls = append(*calls, capturedCall{
			Auth:   r.Header.Get("x-api-key"),
			Model:  req.Model,
			Prompt: prompt,
		})
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]any{
				{"type": "text", "text": "critique from " + req.Model},
			},
		})
	}))
}

// newArenaServer builds the full HTTP stack against the given mock providers.
func newArenaServer(openaiURL, anthropicURL string) *httptest.Server {
	gin.SetMode(gin.TestMode)

	registry := domain.MustNewRegistry(domain.DefaultAgents())
	creds := domain.Credentials{
		OpenAI:    "sk-e2e-openai",
		Anthropic: "sk-ant-e2e",
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := completion.NewRouter(registry, creds,
		completion.WithLogger(logger),
		completion.WithClient(domain.ProviderOpenAI,
			adapter.NewOpenAIClient("sk-e2e-openai", adapter.WithOpenAIBaseURL(openaiURL))),
		completion.WithClient(domain.ProviderAnthropic,
			adapter.NewAnthropicClient("sk-ant-e2e", adapter.WithAnthropicBaseURL(anthropicURL))),
	)
	orch := orchestrator.New(router, registry, orchestrator.WithLogger(logger))
	apiHandler := handler.NewAPIHandler(registry, router, orch, handler.WithLogger(logger))

	engine := gin.New()
	engine.Use(handler.RecoveryMiddleware(logger))
	engine.Use(handler.RequestIDMiddleware())
	apiHandler.RegisterRoutes(engine.Group("/api"))

	return httptest.NewServer(engine)
}

func postJSON(t *testing.T, url string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	defer resp.Body.Close()

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp, body
}

func TestCompareEndToEnd(t *testing.T) {
	var openaiCalls, anthropicCalls []capturedCall
	var mu sync.Mutex

	openai := mockOpenAIServer(t, &openaiCalls, &mu)
	defer openai.Close()
	anthropic := mockAnthropicServer(t, &anthropicCalls, &mu)
	defer anthropic.Close()

	arena := newArenaServer(openai.URL, anthropic.URL)
	defer arena.Close()

	resp, body := postJSON(t, arena.URL+"/api/compare", map[string]any{
		"agent1_id":      "gpt-4",
		"agent2_id":      "claude-instant",
		"question":       "Is a slice header copied on assignment?",
		"best_practices": []string{"Be succinct.", "Cite sources."},
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", resp.StatusCode, body)
	}

	agent1, _ := body["agent1"].(map[string]any)
	agent2, _ := body["agent2"].(map[string]any)
	if agent1["response"] != "answer from gpt-4" {
		t.Errorf("agent1 response = %v", agent1["response"])
	}
	if agent2["response"] != "critique from claude-3-haiku-20240307" {
		t.Errorf("agent2 response = %v", agent2["response"])
	}

	// Both upstreams saw exactly one call carrying the same composed prompt.
	mu.Lock()
	defer mu.Unlock()
	if len(openaiCalls) != 1 || len(anthropicCalls) != 1 {
		t.Fatalf("upstream calls = %d openai, %d anthropic, want 1 each",
			len(openaiCalls), len(anthropicCalls))
	}
	if openaiCalls[0].Prompt != anthropicCalls[0].Prompt {
		t.Errorf("prompts diverged:\nopenai:    %q\nanthropic: %q",
			openaiCalls[0].Prompt, anthropicCalls[0].Prompt)
	}
	if !strings.Contains(openaiCalls[0].Prompt, "Also: Be succinct. Cite sources.") {
		t.Errorf("prompt missing directive suffix: %q", openaiCalls[0].Prompt)
	}
	if openaiCalls[0].Auth != "Bearer sk-e2e-openai" {
		t.Errorf("openai auth = %q", openaiCalls[0].Auth)
	}
	if anthropicCalls[0].Auth != "sk-ant-e2e" {
		t.Errorf("anthropic auth = %q", anthropicCalls[0].Auth)
	}
	if openaiCalls[0].Model != "gpt-4" {
		t.Errorf("openai model = %q", openaiCalls[0].Model)
	}
}

func TestAssessEndToEnd(t *testing.T) {
	var openaiCalls, anthropicCalls []capturedCall
	var mu sync.Mutex

	openai := mockOpenAIServer(t, &openaiCalls, &mu)
	defer openai.Close()
	anthropic := mockAnthropicServer(t, &anthropicCalls, &mu)
	defer anthropic.Close()

	arena := newArenaServer(openai.URL, anthropic.URL)
	defer arena.Close()

	resp, body := postJSON(t, arena.URL+"/api/assess", map[string]any{
		"agent1_id":       "gpt-4",
		"agent2_id":       "claude-instant",
		"question":        "Explain defer ordering.",
		"agent1_response": "LIFO per function.",
		"agent2_response": "Deferred calls run last-in first-out.",
	})

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", resp.StatusCode, body)
	}

	// Agent 2 (anthropic) critiques agent 1's answer and vice versa.
	if body["agent1_assessment_by_agent2"] != "critique from claude-3-haiku-20240307" {
		t.Errorf("agent1_assessment_by_agent2 = %v", body["agent1_assessment_by_agent2"])
	}
	if body["agent2_assessment_by_agent1"] != "answer from gpt-4" {
		t.Errorf("agent2_assessment_by_agent1 = %v", body["agent2_assessment_by_agent1"])
	}

	mu.Lock()
	defer mu.Unlock()
	if len(anthropicCalls) != 1 {
		t.Fatalf("anthropic calls = %d, want 1", len(anthropicCalls))
	}
	// The critic's prompt quotes the question and the answer under review.
	critiquePrompt := anthropicCalls[0].Prompt
	if !strings.Contains(critiquePrompt, `"Explain defer ordering."`) {
		t.Errorf("critique prompt missing question: %q", critiquePrompt)
	}
	if !strings.Contains(critiquePrompt, `"LIFO per function."`) {
		t.Errorf("critique prompt missing reviewed answer: %q", critiquePrompt)
	}
}

func TestCompareEndToEnd_ProviderError(t *testing.T) {
	var openaiCalls []capturedCall
	var mu sync.Mutex

	openai := mockOpenAIServer(t, &openaiCalls, &mu)
	defer openai.Close()

	// Anthropic upstream consistently fails.
	anthropic := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"type": "rate_limit_error", "message": "rate limited"},
		})
	}))
	defer anthropic.Close()

	arena := newArenaServer(openai.URL, anthropic.URL)
	defer arena.Close()

	resp, body := postJSON(t, arena.URL+"/api/compare", map[string]any{
		"agent1_id": "gpt-4",
		"agent2_id": "claude-instant",
		"question":  "hello",
	})

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500: %v", resp.StatusCode, body)
	}
	msg, _ := body["error"].(string)
	if !strings.Contains(msg, "Error getting response from Claude Instant") {
		t.Errorf("error = %q", msg)
	}
	if !strings.Contains(msg, "rate limited") {
		t.Errorf("error should carry upstream message: %q", msg)
	}
}

func TestProviderProbeEndToEnd(t *testing.T) {
	var openaiCalls []capturedCall
	var mu sync.Mutex

	openai := mockOpenAIServer(t, &openaiCalls, &mu)
	defer openai.Close()
	anthropic := mockAnthropicServer(t, &[]capturedCall{}, &mu)
	defer anthropic.Close()

	arena := newArenaServer(openai.URL, anthropic.URL)
	defer arena.Close()

	resp, body := postJSON(t, arena.URL+"/api/providers/openai/test", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200: %v", resp.StatusCode, body)
	}
	if body["ok"] != true {
		t.Fatalf("ok = %v: %v", body["ok"], body)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(openaiCalls) != 1 {
		t.Fatalf("openai calls = %d, want 1", len(openaiCalls))
	}
	if openaiCalls[0].Model != "gpt-3.5-turbo" {
		t.Errorf("probe model = %q, want gpt-3.5-turbo", openaiCalls[0].Model)
	}
	if !strings.Contains(openaiCalls[0].Prompt, "this is a test") {
		t.Errorf("probe prompt = %q", openaiCalls[0].Prompt)
	}
}
