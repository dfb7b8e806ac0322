// Package orchestrator drives the two-agent workflows.
package orchestrator

import "fmt"

// InvalidInputError reports a malformed caller request: missing required
// fields or an agent compared against itself.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// SlotValidationError tags an availability failure with which agent slot it
// came from, so the caller sees "Agent 1: ..." or "Agent 2: ...".
type SlotValidationError struct {
	Slot int
	Err  error
}

func (e *SlotValidationError) Error() string {
	return fmt.Sprintf("Agent %d: %v", e.Slot, e.Err)
}

func (e *SlotValidationError) Unwrap() error {
	return e.Err
}

// UpstreamError reports a failed completion call during Compare, naming the
// agent whose upstream call failed.
type UpstreamError struct {
	AgentName string
	Err       error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Error getting response from %s: %v", e.AgentName, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
