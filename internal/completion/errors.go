// Package completion routes completion requests to the correct provider client.
package completion

import (
	"fmt"

	"github.com/internstack/agent-arena/internal/domain"
)

// NotFoundError reports that no agent with the requested id is registered.
type NotFoundError struct {
	AgentID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Agent %s not found", e.AgentID)
}

// DisabledError reports that the agent exists but is switched off.
// The message includes the tier so callers can explain premium gating.
type DisabledError struct {
	AgentName string
	Tier      domain.Tier
}

func (e *DisabledError) Error() string {
	return fmt.Sprintf("Agent %s is not enabled (tier: %s)", e.AgentName, e.Tier)
}

// UnconfiguredError reports that the agent's provider has no credential.
type UnconfiguredError struct {
	Provider  domain.ProviderType
	AgentName string
}

func (e *UnconfiguredError) Error() string {
	return fmt.Sprintf("%s API key not configured for %s", e.Provider.DisplayName(), e.AgentName)
}

// IsValidationError reports whether err is one of the availability errors
// produced by ResolveAndValidate (as opposed to an upstream call failure).
func IsValidationError(err error) bool {
	switch err.(type) {
	case *NotFoundError, *DisabledError, *UnconfiguredError:
		return true
	default:
		return false
	}
}
