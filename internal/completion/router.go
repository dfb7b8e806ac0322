// Package completion routes completion requests to the correct provider client.
// It is the single point of provider-specific branching: resolving an agent id
// to a descriptor, checking availability, and dispatching to the client that
// speaks the agent's provider protocol.
package completion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/internstack/agent-arena/internal/adapter"
	"github.com/internstack/agent-arena/internal/domain"
)

// Router resolves agent ids and dispatches completions to provider clients.
// All fields are read-only after construction, so the Router is safe for
// concurrent use without additional locking.
type Router struct {
	registry *domain.Registry
	creds    domain.Credentials
	clients  map[domain.ProviderType]adapter.CompletionClient
	logger   *slog.Logger
}

// RouterOption is a functional option for configuring Router.
type RouterOption func(*Router)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) RouterOption {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithClient overrides the client for a provider.
// Used by tests to substitute stub or mock-server-backed clients.
func WithClient(provider domain.ProviderType, client adapter.CompletionClient) RouterOption {
	return func(r *Router) {
		r.clients[provider] = client
	}
}

// NewRouter creates a Router over the given registry and credentials.
// A client is constructed for every configured provider; unconfigured
// providers get no client and their agents fail availability checks instead.
func NewRouter(registry *domain.Registry, creds domain.Credentials, opts ...RouterOption) *Router {
	r := &Router{
		registry: registry,
		creds:    creds,
		clients:  make(map[domain.ProviderType]adapter.CompletionClient),
		logger:   slog.Default(),
	}

	if key, ok := creds.ForProvider(domain.ProviderOpenAI); ok {
		r.clients[domain.ProviderOpenAI] = adapter.NewOpenAIClient(key)
	}
	if key, ok := creds.ForProvider(domain.ProviderAnthropic); ok {
		r.clients[domain.ProviderAnthropic] = adapter.NewAnthropicClient(key)
	}
	if key, ok := creds.ForProvider(domain.ProviderTogether); ok {
		r.clients[domain.ProviderTogether] = adapter.NewTogetherClient(key)
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ResolveAndValidate looks up the agent and checks it can actually serve a
// request. Checks run in a fixed order: existence, enabled flag, provider
// credential. A disabled agent on an unconfigured provider reports disabled.
func (r *Router) ResolveAndValidate(agentID string) (domain.Agent, error) {
	agent, ok := r.registry.Lookup(agentID)
	if !ok {
		return domain.Agent{}, &NotFoundError{AgentID: agentID}
	}

	if !agent.Enabled {
		return domain.Agent{}, &DisabledError{AgentName: agent.Name, Tier: agent.Tier}
	}

	if !r.creds.IsConfigured(agent.Provider) {
		return domain.Agent{}, &UnconfiguredError{Provider: agent.Provider, AgentName: agent.Name}
	}

	return agent, nil
}

// Complete resolves and validates the agent, then delegates to the provider
// client with the agent's upstream model identifier.
func (r *Router) Complete(ctx context.Context, agentID, prompt string, timeout time.Duration) (string, error) {
	agent, err := r.ResolveAndValidate(agentID)
	if err != nil {
		return "", err
	}

	client, ok := r.clients[agent.Provider]
	if !ok {
		// Credential validation passed, so a missing table entry means the
		// provider enum and the client table are out of sync.
		panic(fmt.Sprintf("no completion client registered for provider %q", agent.Provider))
	}

	start := time.Now()
	text, err := client.Complete(ctx, agent.Model, prompt, timeout)
	if err != nil {
		r.logger.Warn("completion failed",
			slog.String("agent", agentID),
			slog.String("provider", string(agent.Provider)),
			slog.String("model", agent.Model),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return "", err
	}

	r.logger.Debug("completion succeeded",
		slog.String("agent", agentID),
		slog.String("provider", string(agent.Provider)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return text, nil
}

// Registry returns the agent catalog this router resolves against.
func (r *Router) Registry() *domain.Registry {
	return r.registry
}
