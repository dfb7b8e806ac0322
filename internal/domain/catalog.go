// Package domain contains the core business entities and value objects.
package domain

// DefaultAgents returns the built-in agent catalog.
// A config file may replace this list entirely; it is never mutated in place.
func DefaultAgents() []Agent {
	return []Agent{
		// OpenAI models
		{
			ID:       "gpt-3.5",
			Name:     "GPT-3.5 Turbo",
			Provider: ProviderOpenAI,
			Model:    "gpt-3.5-turbo",
			Domains:  []string{"Chat/Reasoning", "Code", "Analysis"},
			Tags:     []string{"General-purpose Q&A", "Python", "Summarization"},
			Tier:     TierFree,
			Enabled:  true,
		},
		{
			ID:       "gpt-4",
			Name:     "GPT-4",
			Provider: ProviderOpenAI,
			Model:    "gpt-4",
			Domains:  []string{"Chat/Reasoning", "Code", "Analysis", "Creative"},
			Tags:     []string{"Advanced reasoning", "Complex tasks", "Creative writing"},
			Tier:     TierPremium,
			Enabled:  true,
		},

		// Mistral AI models (via Together.ai)
		{
			ID:       "mistral-7b",
			Name:     "Mistral 7B",
			Provider: ProviderTogether,
			Model:    "mistralai/Mistral-7B-Instruct-v0.1",
			Domains:  []string{"Chat/Reasoning", "Analysis"},
			Tags:     []string{"General-purpose Q&A", "Fast responses"},
			Tier:     TierFree,
			Enabled:  true,
		},
		{
			ID:       "mixtral-8x7b",
			Name:     "Mixtral 8x7B",
			Provider: ProviderTogether,
			Model:    "mistralai/Mixtral-8x7B-Instruct-v0.1",
			Domains:  []string{"Chat/Reasoning", "Code", "Analysis"},
			Tags:     []string{"Advanced reasoning", "Code generation", "Multi-lingual"},
			Tier:     TierFree,
			Enabled:  true,
		},

		// Meta Llama models (via Together.ai)
		{
			ID:       "llama-2-7b",
			Name:     "Llama 2 7B",
			Provider: ProviderTogether,
			Model:    "meta-llama/Llama-2-7b-chat-hf",
			Domains:  []string{"Chat/Reasoning"},
			Tags:     []string{"General-purpose Q&A", "Open source"},
			Tier:     TierFree,
			Enabled:  false,
		},
		{
			ID:       "code-llama",
			Name:     "Code Llama 7B",
			Provider: ProviderTogether,
			Model:    "codellama/CodeLlama-7b-Instruct-hf",
			Domains:  []string{"Code"},
			Tags:     []string{"Python", "JavaScript", "Code generation"},
			Tier:     TierFree,
			Enabled:  false,
		},

		// Anthropic models
		{
			ID:       "claude-instant",
			Name:     "Claude Instant",
			Provider: ProviderAnthropic,
			Model:    "claude-3-haiku-20240307",
			Domains:  []string{"Chat/Reasoning", "Analysis", "Creative"},
			Tags:     []string{"General-purpose Q&A", "Insight extraction", "Writing"},
			Tier:     TierFree,
			Enabled:  true,
		},
		{
			ID:       "claude-3-haiku",
			Name:     "Claude 3 Haiku",
			Provider: ProviderAnthropic,
			Model:    "claude-3-haiku-20240307",
			Domains:  []string{"Chat/Reasoning", "Analysis"},
			Tags:     []string{"Fast responses", "Cost-effective"},
			Tier:     TierPremium,
			Enabled:  false,
		},
	}
}

// BestPractices returns the prompt directive phrases offered to callers.
func BestPractices() []string {
	return []string{
		"List your response in numbered steps.",
		"Explain your reasoning.",
		"Keep it concise unless asked for depth.",
		"Cite sources.",
		"Break it down as if explaining to a 12-year-old.",
		"Be succinct.",
	}
}
