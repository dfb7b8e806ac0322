// Package domain contains the core business entities and value objects.
package domain

// Agent describes a specific model hosted by a specific provider.
// Agents are populated once at process start and never mutated at runtime.
type Agent struct {
	// ID is the stable, unique key callers use to address this agent.
	ID string `json:"id" mapstructure:"id"`

	// Name is the human-readable display name.
	Name string `json:"name" mapstructure:"name"`

	// Provider identifies which upstream vendor hosts this agent.
	Provider ProviderType `json:"provider" mapstructure:"provider"`

	// Model is the provider-specific model identifier sent upstream.
	Model string `json:"model" mapstructure:"model"`

	// Domains lists the capability areas this agent covers.
	Domains []string `json:"domains" mapstructure:"domains"`

	// Tags lists descriptive labels for display and filtering.
	Tags []string `json:"tags" mapstructure:"tags"`

	// Tier is the access class (free or premium).
	Tier Tier `json:"tier" mapstructure:"tier"`

	// Enabled indicates whether this agent accepts requests.
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// IsValid checks if the agent has all required fields and a supported provider.
func (a *Agent) IsValid() bool {
	return a.ID != "" && a.Name != "" && a.Model != "" && a.Provider.IsSupported()
}
