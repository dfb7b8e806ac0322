// Package domain contains the core business entities and value objects.
package domain

// Credentials holds the optional API secret for each provider.
// A missing secret is a valid state: the provider is "unconfigured" and its
// agents fail availability checks instead of attempting upstream calls.
// Credentials are read once at startup and never mutated afterwards.
type Credentials struct {
	OpenAI    string
	Anthropic string
	Together  string
}

// ForProvider returns the secret for the given provider and whether it is set.
func (c Credentials) ForProvider(provider ProviderType) (string, bool) {
	var key string
	switch provider {
	case ProviderOpenAI:
		key = c.OpenAI
	case ProviderAnthropic:
		key = c.Anthropic
	case ProviderTogether:
		key = c.Together
	}
	return key, key != ""
}

// IsConfigured reports whether the provider has a secret available.
func (c Credentials) IsConfigured(provider ProviderType) bool {
	_, ok := c.ForProvider(provider)
	return ok
}

// ConfiguredProviders returns the providers with a secret set, in the
// SupportedProviders order.
func (c Credentials) ConfiguredProviders() []ProviderType {
	out := make([]ProviderType, 0, len(SupportedProviders))
	for _, p := range SupportedProviders {
		if c.IsConfigured(p) {
			out = append(out, p)
		}
	}
	return out
}
