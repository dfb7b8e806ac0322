// Package domain contains the core business entities and value objects.
package domain

import "fmt"

// Registry is an immutable catalog of agents.
// It is constructed once at startup and passed by reference into the
// components that need lookups; there is no ambient global registry.
type Registry struct {
	agents []Agent
	byID   map[string]int
}

// NewRegistry builds a Registry from the given agents, preserving order.
// It fails if an agent is missing required fields, references an unsupported
// provider, or reuses an ID.
func NewRegistry(agents []Agent) (*Registry, error) {
	r := &Registry{
		agents: make([]Agent, 0, len(agents)),
		byID:   make(map[string]int, len(agents)),
	}

	for i, agent := range agents {
		if !agent.IsValid() {
			return nil, fmt.Errorf("agent %d (%q) is invalid: id, name, model and a supported provider are required", i, agent.ID)
		}
		if _, exists := r.byID[agent.ID]; exists {
			return nil, fmt.Errorf("duplicate agent id %q", agent.ID)
		}
		r.byID[agent.ID] = len(r.agents)
		r.agents = append(r.agents, agent)
	}

	return r, nil
}

// MustNewRegistry is like NewRegistry but panics on error.
// Use only with catalogs known to be valid at compile time.
func MustNewRegistry(agents []Agent) *Registry {
	r, err := NewRegistry(agents)
	if err != nil {
		panic(fmt.Sprintf("invalid agent catalog: %v", err))
	}
	return r
}

// Lookup returns the agent with the given id.
// A missing id is a normal outcome, reported via the boolean, not an error.
func (r *Registry) Lookup(id string) (Agent, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Agent{}, false
	}
	return r.agents[idx], true
}

// All returns every agent in declaration order.
// The returned slice is a copy; mutating it does not affect the registry.
func (r *Registry) All() []Agent {
	out := make([]Agent, len(r.agents))
	copy(out, r.agents)
	return out
}

// Len returns the number of registered agents.
func (r *Registry) Len() int {
	return len(r.agents)
}

// CountByProvider returns how many agents belong to the given provider,
// and how many of those are enabled.
func (r *Registry) CountByProvider(provider ProviderType) (total, enabled int) {
	for _, a := range r.agents {
		if a.Provider != provider {
			continue
		}
		total++
		if a.Enabled {
			enabled++
		}
	}
	return total, enabled
}
