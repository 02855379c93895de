package handler

import (
	"github.com/gin-gonic/gin"

	registryapp "github.com/agenthub/backend/internal/application/registry"
)

// AgentHandler handles agent-related API endpoints
type AgentHandler struct {
	BaseHandler
	agentService *registryapp.AgentService
}

// NewAgentHandler creates a new AgentHandler
func NewAgentHandler(agentService *registryapp.AgentService) *AgentHandler {
	return &AgentHandler{agentService: agentService}
}

// Create handles POST /agents
func (h *AgentHandler) Create(c *gin.Context) {
	var req registryapp.CreateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.agentService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /agents
func (h *AgentHandler) List(c *gin.Context) {
	agents, err := h.agentService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, agents, len(agents))
}

// Get handles GET /agents/:id
func (h *AgentHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid agent ID")
		return
	}

	resp, err := h.agentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PATCH /agents/:id
func (h *AgentHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid agent ID")
		return
	}

	var req registryapp.UpdateAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.agentService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate handles DELETE /agents/:id
func (h *AgentHandler) Deactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid agent ID")
		return
	}

	if err := h.agentService.LogicalDelete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /agents/:id/permanent
func (h *AgentHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid agent ID")
		return
	}

	if err := h.agentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// LinkTool handles POST /agents/:id/tools/:tool_id
func (h *AgentHandler) LinkTool(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid agent ID")
		return
	}
	toolID, err := parseParamID(c, "tool_id")
	if err != nil {
		h.BadRequest(c, "Invalid tool ID")
		return
	}

	if err := h.agentService.LinkTool(c.Request.Context(), id, toolID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// UnlinkTool handles DELETE /agents/:id/tools/:tool_id
func (h *AgentHandler) UnlinkTool(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid agent ID")
		return
	}
	toolID, err := parseParamID(c, "tool_id")
	if err != nil {
		h.BadRequest(c, "Invalid tool ID")
		return
	}

	if err := h.agentService.UnlinkTool(c.Request.Context(), id, toolID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListTools handles GET /agents/:id/tools
func (h *AgentHandler) ListTools(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid agent ID")
		return
	}

	ids, err := h.agentService.ListTools(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, ids, len(ids))
}

// RegisterRoutes registers all agent routes
func (h *AgentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	agents := rg.Group("/agents")
	{
		agents.POST("", h.Create)
		agents.GET("", h.List)
		agents.GET("/:id", h.Get)
		agents.PATCH("/:id", h.Update)
		agents.DELETE("/:id", h.Deactivate)
		agents.DELETE("/:id/permanent", h.Delete)

		agents.GET("/:id/tools", h.ListTools)
		agents.POST("/:id/tools/:tool_id", h.LinkTool)
		agents.DELETE("/:id/tools/:tool_id", h.UnlinkTool)
	}
}
