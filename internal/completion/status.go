package completion

import (
	"context"
	"fmt"

	"github.com/internstack/agent-arena/internal/adapter"
	"github.com/internstack/agent-arena/internal/domain"
)

// probePrompt is the fixed prompt used by connection probes.
const probePrompt = "Hello, this is a test. Please respond with 'Test successful.'"

// probeSampleLen is how much of the probe response is echoed back.
const probeSampleLen = 50

// probeModels maps each provider to the cheap model used for diagnostics.
var probeModels = map[domain.ProviderType]string{
	domain.ProviderOpenAI:    "gpt-3.5-turbo",
	domain.ProviderAnthropic: "claude-3-haiku-20240307",
	domain.ProviderTogether:  "mistralai/Mistral-7B-Instruct-v0.1",
}

// ProviderStatus describes one provider's configuration and catalog footprint.
type ProviderStatus struct {
	Provider      domain.ProviderType `json:"provider"`
	DisplayName   string              `json:"display_name"`
	Configured    bool                `json:"configured"`
	Agents        int                 `json:"agents"`
	EnabledAgents int                 `json:"enabled_agents"`
}

// ProviderStatuses reports every supported provider in stable order.
func (r *Router) ProviderStatuses() []ProviderStatus {
	statuses := make([]ProviderStatus, 0, len(domain.SupportedProviders))
	for _, p := range domain.SupportedProviders {
		total, enabled := r.registry.CountByProvider(p)
		statuses = append(statuses, ProviderStatus{
			Provider:      p,
			DisplayName:   p.DisplayName(),
			Configured:    r.creds.IsConfigured(p),
			Agents:        total,
			EnabledAgents: enabled,
		})
	}
	return statuses
}

// TestConnection issues a short diagnostic completion against the provider's
// probe model and returns a truncated sample of the response.
func (r *Router) TestConnection(ctx context.Context, provider domain.ProviderType) (string, error) {
	if !provider.IsSupported() {
		return "", fmt.Errorf("unknown provider: %s", provider)
	}

	client, ok := r.clients[provider]
	if !ok {
		return "", &UnconfiguredError{Provider: provider, AgentName: "connection test"}
	}

	text, err := client.Complete(ctx, probeModels[provider], probePrompt, adapter.ProbeTimeout)
	if err != nil {
		return "", err
	}

	if len(text) > probeSampleLen {
		text = text[:probeSampleLen] + "..."
	}
	return text, nil
}
