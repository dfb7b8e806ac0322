// Package orchestrator drives the two-agent workflows: side-by-side
// comparison of one question across two agents, and cross-assessment where
// each agent critiques the other's answer.
package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"github.com/internstack/agent-arena/internal/adapter"
	"github.com/internstack/agent-arena/internal/domain"
	"github.com/internstack/agent-arena/internal/prompt"
)

// CompletionService is the slice of the completion router the orchestrator
// depends on. Satisfied by *completion.Router; tests substitute stubs.
type CompletionService interface {
	ResolveAndValidate(agentID string) (domain.Agent, error)
	Complete(ctx context.Context, agentID, prompt string, timeout time.Duration) (string, error)
}

// Orchestrator validates, fans out, and merges two-agent workflows.
type Orchestrator struct {
	service  CompletionService
	registry *domain.Registry
	logger   *slog.Logger
	timeout  time.Duration
	now      func() time.Time
}

// Option is a functional option for configuring Orchestrator.
type Option func(*Orchestrator)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithTimeout sets the per-upstream-call timeout for primary completions.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Orchestrator) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithClock overrides the timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) {
		o.now = now
	}
}

// New creates an Orchestrator over the given completion service and registry.
func New(service CompletionService, registry *domain.Registry, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		service:  service,
		registry: registry,
		logger:   slog.Default(),
		timeout:  adapter.DefaultTimeout,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// CompareRequest carries everything needed for one comparison call.
type CompareRequest struct {
	Agent1ID      string
	Agent2ID      string
	Question      string
	BestPractices []string
	Context       *prompt.FollowUpContext
	History       []prompt.ConversationTurn
}

// AgentAnswer pairs an agent's descriptor fields with its response text.
type AgentAnswer struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Provider domain.ProviderType `json:"provider"`
	Domains  []string            `json:"domains"`
	Tags     []string            `json:"tags"`
	Response string              `json:"response"`
}

// CompareResult is the merged outcome of a comparison.
// The two agent entries always have different ids.
type CompareResult struct {
	Question          string      `json:"question"`
	BestPracticesUsed []string    `json:"best_practices_used"`
	Agent1            AgentAnswer `json:"agent1"`
	Agent2            AgentAnswer `json:"agent2"`
	Timestamp         int64       `json:"timestamp"`
}

// Compare validates both agents, composes one shared prompt, issues both
// completions concurrently, and assembles the result. Any upstream failure
// aborts the whole comparison; no partial result is ever returned.
func (o *Orchestrator) Compare(ctx context.Context, req CompareRequest) (*CompareResult, error) {
	if req.Agent1ID == "" || req.Agent2ID == "" || req.Question == "" {
		return nil, &InvalidInputError{Reason: "Missing required fields: agent1_id, agent2_id, question"}
	}
	if req.Agent1ID == req.Agent2ID {
		return nil, &InvalidInputError{Reason: "Cannot compare an agent with itself"}
	}

	agent1, err := o.service.ResolveAndValidate(req.Agent1ID)
	if err != nil {
		return nil, &SlotValidationError{Slot: 1, Err: err}
	}
	agent2, err := o.service.ResolveAndValidate(req.Agent2ID)
	if err != nil {
		return nil, &SlotValidationError{Slot: 2, Err: err}
	}

	// One shared prompt; both agents receive identical text.
	composed := prompt.Compose(req.Question, req.BestPractices, req.History, req.Context)

	o.logger.Info("comparing agents",
		slog.String("agent1", agent1.ID),
		slog.String("agent2", agent2.ID),
		slog.Int("prompt_len", len(composed)),
	)

	res1, res2 := o.fanOut(ctx, agent1.ID, agent2.ID, composed, composed)
	if res1.err != nil {
		return nil, &UpstreamError{AgentName: agent1.Name, Err: res1.err}
	}
	if res2.err != nil {
		return nil, &UpstreamError{AgentName: agent2.Name, Err: res2.err}
	}

	return &CompareResult{
		Question:          req.Question,
		BestPracticesUsed: req.BestPractices,
		Agent1:            answerFor(agent1, res1.text),
		Agent2:            answerFor(agent2, res2.text),
		Timestamp:         o.now().Unix(),
	}, nil
}

// AssessRequest carries everything needed for one cross-assessment call.
type AssessRequest struct {
	Agent1ID       string
	Agent2ID       string
	Question       string
	Agent1Response string
	Agent2Response string
	Criteria       []string
}

// AssessorInfo names the two agents involved in a cross-assessment.
type AssessorInfo struct {
	Agent1Name string `json:"agent1_name"`
	Agent2Name string `json:"agent2_name"`
}

// AssessResult holds the two critiques. A slot whose upstream call failed
// contains an error-describing string instead of a critique.
type AssessResult struct {
	Agent1AssessmentByAgent2 string       `json:"agent1_assessment_by_agent2"`
	Agent2AssessmentByAgent1 string       `json:"agent2_assessment_by_agent1"`
	AssessorInfo             AssessorInfo `json:"assessor_info"`
}

// Assess has each agent critique the other's answer. Unlike Compare, an
// upstream failure never aborts the operation: the failing slot's result is
// replaced with a descriptive error string while the other proceeds.
func (o *Orchestrator) Assess(ctx context.Context, req AssessRequest) (*AssessResult, error) {
	if req.Agent1ID == "" || req.Agent2ID == "" || req.Question == "" ||
		req.Agent1Response == "" || req.Agent2Response == "" {
		return nil, &InvalidInputError{Reason: "Missing required fields"}
	}

	agent1, ok := o.registry.Lookup(req.Agent1ID)
	if !ok {
		return nil, &InvalidInputError{Reason: "Agent " + req.Agent1ID + " not found"}
	}
	agent2, ok := o.registry.Lookup(req.Agent2ID)
	if !ok {
		return nil, &InvalidInputError{Reason: "Agent " + req.Agent2ID + " not found"}
	}

	// Agent 2 reviews agent 1's answer and vice versa.
	promptFor1 := prompt.Assessment(req.Question, req.Agent1Response, req.Criteria)
	promptFor2 := prompt.Assessment(req.Question, req.Agent2Response, req.Criteria)

	res1, res2 := o.fanOut(ctx, agent2.ID, agent1.ID, promptFor1, promptFor2)

	assessment1 := res1.text
	if res1.err != nil {
		assessment1 = "Error getting assessment: " + res1.err.Error()
	}
	assessment2 := res2.text
	if res2.err != nil {
		assessment2 = "Error getting assessment: " + res2.err.Error()
	}

	return &AssessResult{
		Agent1AssessmentByAgent2: assessment1,
		Agent2AssessmentByAgent1: assessment2,
		AssessorInfo: AssessorInfo{
			Agent1Name: agent1.Name,
			Agent2Name: agent2.Name,
		},
	}, nil
}

type completionResult struct {
	text string
	err  error
}

// fanOut issues two independent completions concurrently and waits for both.
// The calls have no data dependency; total latency is bounded by the slower
// of the two. Each call carries its own timeout.
func (o *Orchestrator) fanOut(ctx context.Context, firstAgentID, secondAgentID, firstPrompt, secondPrompt string) (completionResult, completionResult) {
	ch1 := make(chan completionResult, 1)
	ch2 := make(chan completionResult, 1)

	go func() {
		text, err := o.service.Complete(ctx, firstAgentID, firstPrompt, o.timeout)
		ch1 <- completionResult{text: text, err: err}
	}()
	go func() {
		text, err := o.service.Complete(ctx, secondAgentID, secondPrompt, o.timeout)
		ch2 <- completionResult{text: text, err: err}
	}()

	return <-ch1, <-ch2
}

func answerFor(agent domain.Agent, response string) AgentAnswer {
	return AgentAnswer{
		ID:       agent.ID,
		Name:     agent.Name,
		Provider: agent.Provider,
		Domains:  agent.Domains,
		Tags:     agent.Tags,
		Response: response,
	}
}
