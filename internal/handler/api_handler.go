// Package handler provides the HTTP handlers for the agent comparison API.
package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/internstack/agent-arena/internal/completion"
	"github.com/internstack/agent-arena/internal/domain"
	"github.com/internstack/agent-arena/internal/orchestrator"
	"github.com/internstack/agent-arena/internal/prompt"
	"github.com/internstack/agent-arena/internal/security"
)

// ServiceName identifies this service in health responses.
const ServiceName = "Agent Arena API"

// APIHandler exposes the comparison service over HTTP.
type APIHandler struct {
	registry *domain.Registry
	router   *completion.Router
	orch     *orchestrator.Orchestrator
	logger   *slog.Logger
}

// APIHandlerOption is a functional option for configuring APIHandler.
type APIHandlerOption func(*APIHandler)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) APIHandlerOption {
	return func(h *APIHandler) {
		h.logger = logger
	}
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(registry *domain.Registry, router *completion.Router, orch *orchestrator.Orchestrator, opts ...APIHandlerOption) *APIHandler {
	h := &APIHandler{
		registry: registry,
		router:   router,
		orch:     orch,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// RegisterRoutes attaches every endpoint under the given router group.
func (h *APIHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/health", h.HandleHealth)
	api.GET("/agents", h.HandleAgents)
	api.GET("/agent/:agent_id", h.HandleAgentDetail)
	api.GET("/best-practices", h.HandleBestPractices)
	api.GET("/providers", h.HandleProviders)
	api.POST("/providers/:provider/test", h.HandleProviderTest)
	api.POST("/compare", h.HandleCompare)
	api.POST("/assess", h.HandleAssess)
}

// HandleHealth handles GET /api/health.
func (h *APIHandler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   ServiceName,
	})
}

// HandleAgents handles GET /api/agents.
// Returns the full catalog plus tier/enabled tallies.
func (h *APIHandler) HandleAgents(c *gin.Context) {
	agents := h.registry.All()

	var enabled, freeTier, premiumTier int
	for _, a := range agents {
		if a.Enabled {
			enabled++
		}
		if a.Tier == domain.TierFree && a.Enabled {
			freeTier++
		}
		if a.Tier == domain.TierPremium {
			premiumTier++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"agents":       agents,
		"total":        len(agents),
		"enabled":      enabled,
		"free_tier":    freeTier,
		"premium_tier": premiumTier,
	})
}

// HandleAgentDetail handles GET /api/agent/:agent_id.
func (h *APIHandler) HandleAgentDetail(c *gin.Context) {
	agentID := c.Param("agent_id")

	agent, ok := h.registry.Lookup(agentID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Agent " + agentID + " not found"})
		return
	}

	statusMessage := "Model available"
	available := true
	if _, err := h.router.ResolveAndValidate(agentID); err != nil {
		available = false
		statusMessage = err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"agent":          agent,
		"available":      available,
		"status_message": statusMessage,
	})
}

// HandleBestPractices handles GET /api/best-practices.
func (h *APIHandler) HandleBestPractices(c *gin.Context) {
	phrases := domain.BestPractices()
	c.JSON(http.StatusOK, gin.H{
		"phrases": phrases,
		"total":   len(phrases),
	})
}

// HandleProviders handles GET /api/providers.
func (h *APIHandler) HandleProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"providers": h.router.ProviderStatuses(),
	})
}

// HandleProviderTest handles POST /api/providers/:provider/test.
// Issues a short diagnostic completion against the provider's probe model.
func (h *APIHandler) HandleProviderTest(c *gin.Context) {
	providerType := domain.ProviderType(c.Param("provider"))
	if !providerType.IsSupported() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown provider: " + string(providerType)})
		return
	}

	sample, err := h.router.TestConnection(c.Request.Context(), providerType)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"provider": providerType,
			"ok":       false,
			"message":  "Error: " + security.Redact(err.Error()),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"provider": providerType,
		"ok":       true,
		"message":  "Success: " + sample,
	})
}

// compareRequest is the JSON payload for POST /api/compare.
type compareRequest struct {
	Agent1ID            string                    `json:"agent1_id"`
	Agent2ID            string                    `json:"agent2_id"`
	Question            string                    `json:"question"`
	BestPractices       []string                  `json:"best_practices"`
	Context             *followUpContextPayload   `json:"context"`
	ConversationHistory []prompt.ConversationTurn `json:"conversation_history"`
}

// followUpContextPayload mirrors the wire shape of a single-turn follow-up.
type followUpContextPayload struct {
	OriginalQuestion  string `json:"original_question"`
	OriginalResponses struct {
		Agent1 string `json:"agent1"`
		Agent2 string `json:"agent2"`
	} `json:"original_responses"`
}

func (p *followUpContextPayload) toContext() *prompt.FollowUpContext {
	if p == nil {
		return nil
	}
	return &prompt.FollowUpContext{
		OriginalQuestion: p.OriginalQuestion,
		Agent1Response:   p.OriginalResponses.Agent1,
		Agent2Response:   p.OriginalResponses.Agent2,
	}
}

// HandleCompare handles POST /api/compare.
func (h *APIHandler) HandleCompare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.orch.Compare(c.Request.Context(), orchestrator.CompareRequest{
		Agent1ID:      req.Agent1ID,
		Agent2ID:      req.Agent2ID,
		Question:      req.Question,
		BestPractices: req.BestPractices,
		Context:       req.Context.toContext(),
		History:       req.ConversationHistory,
	})
	if err != nil {
		status := compareErrorStatus(err)
		h.logger.Warn("compare failed",
			slog.Int("status", status),
			slog.String("error", err.Error()),
		)
		c.JSON(status, gin.H{"error": security.Redact(err.Error())})
		return
	}

	c.JSON(http.StatusOK, result)
}

// compareErrorStatus maps orchestrator errors to HTTP status codes.
// Validation problems are the caller's fault (400); upstream failures are 500.
func compareErrorStatus(err error) int {
	var invalid *orchestrator.InvalidInputError
	if errors.As(err, &invalid) {
		return http.StatusBadRequest
	}
	var slot *orchestrator.SlotValidationError
	if errors.As(err, &slot) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// assessRequest is the JSON payload for POST /api/assess.
type assessRequest struct {
	Agent1ID           string   `json:"agent1_id"`
	Agent2ID           string   `json:"agent2_id"`
	Question           string   `json:"question"`
	Agent1Response     string   `json:"agent1_response"`
	Agent2Response     string   `json:"agent2_response"`
	AssessmentCriteria []string `json:"assessment_criteria"`
}

// HandleAssess handles POST /api/assess.
// A failed critique call never fails the request; the failing slot carries a
// descriptive error string instead.
func (h *APIHandler) HandleAssess(c *gin.Context) {
	var req assessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.orch.Assess(c.Request.Context(), orchestrator.AssessRequest{
		Agent1ID:       req.Agent1ID,
		Agent2ID:       req.Agent2ID,
		Question:       req.Question,
		Agent1Response: req.Agent1Response,
		Agent2Response: req.Agent2Response,
		Criteria:       req.AssessmentCriteria,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": security.Redact(err.Error())})
		return
	}

	c.JSON(http.StatusOK, result)
}
