// Package domain contains the core business entities and value objects.
// These structs are framework-agnostic and represent the heart of the application.
package domain

// ProviderType identifies an upstream chat-completion vendor.
type ProviderType string

const (
	ProviderOpenAI    ProviderType = "openai"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderTogether  ProviderType = "together"
)

// SupportedProviders lists every provider the system can dispatch to,
// in stable declaration order.
var SupportedProviders = []ProviderType{
	ProviderOpenAI,
	ProviderAnthropic,
	ProviderTogether,
}

// IsSupported reports whether p belongs to the closed set of providers.
func (p ProviderType) IsSupported() bool {
	switch p {
	case ProviderOpenAI, ProviderAnthropic, ProviderTogether:
		return true
	default:
		return false
	}
}

// DisplayName returns the vendor name used in user-facing messages.
func (p ProviderType) DisplayName() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderAnthropic:
		return "Anthropic"
	case ProviderTogether:
		return "Together.ai"
	default:
		return string(p)
	}
}

// Tier represents the access class of an agent.
// It is used for display and validation messaging only, not quota enforcement.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)
