package handler

import (
	"github.com/gin-gonic/gin"

	registryapp "github.com/agenthub/backend/internal/application/registry"
)

// IAGroupHandler handles agent-group API endpoints
type IAGroupHandler struct {
	BaseHandler
	groupService *registryapp.IAGroupService
}

// NewIAGroupHandler creates a new IAGroupHandler
func NewIAGroupHandler(groupService *registryapp.IAGroupService) *IAGroupHandler {
	return &IAGroupHandler{groupService: groupService}
}

// Create handles POST /groups
func (h *IAGroupHandler) Create(c *gin.Context) {
	var req registryapp.CreateIAGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.groupService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /groups
func (h *IAGroupHandler) List(c *gin.Context) {
	groups, err := h.groupService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, groups, len(groups))
}

// Get handles GET /groups/:id
func (h *IAGroupHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}

	resp, err := h.groupService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PATCH /groups/:id
func (h *IAGroupHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}

	var req registryapp.UpdateIAGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.groupService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate handles DELETE /groups/:id
func (h *IAGroupHandler) Deactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}

	if err := h.groupService.LogicalDelete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /groups/:id/permanent
func (h *IAGroupHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}

	if err := h.groupService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// LinkAgent handles POST /groups/:id/agents/:agent_id
func (h *IAGroupHandler) LinkAgent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}
	agentID, err := parseParamID(c, "agent_id")
	if err != nil {
		h.BadRequest(c, "Invalid agent ID")
		return
	}

	if err := h.groupService.LinkAgent(c.Request.Context(), id, agentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// UnlinkAgent handles DELETE /groups/:id/agents/:agent_id
func (h *IAGroupHandler) UnlinkAgent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}
	agentID, err := parseParamID(c, "agent_id")
	if err != nil {
		h.BadRequest(c, "Invalid agent ID")
		return
	}

	if err := h.groupService.UnlinkAgent(c.Request.Context(), id, agentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListAgents handles GET /groups/:id/agents
func (h *IAGroupHandler) ListAgents(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}

	ids, err := h.groupService.ListAgents(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, ids, len(ids))
}

// RegisterRoutes registers all group routes
func (h *IAGroupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	groups := rg.Group("/groups")
	{
		groups.POST("", h.Create)
		groups.GET("", h.List)
		groups.GET("/:id", h.Get)
		groups.PATCH("/:id", h.Update)
		groups.DELETE("/:id", h.Deactivate)
		groups.DELETE("/:id/permanent", h.Delete)

		groups.GET("/:id/agents", h.ListAgents)
		groups.POST("/:id/agents/:agent_id", h.LinkAgent)
		groups.DELETE("/:id/agents/:agent_id", h.UnlinkAgent)
	}
}
