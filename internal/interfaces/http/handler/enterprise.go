package handler

import (
	"github.com/gin-gonic/gin"

	registryapp "github.com/agenthub/backend/internal/application/registry"
)

// EnterpriseHandler handles enterprise-related API endpoints
type EnterpriseHandler struct {
	BaseHandler
	enterpriseService *registryapp.EnterpriseService
}

// NewEnterpriseHandler creates a new EnterpriseHandler
func NewEnterpriseHandler(enterpriseService *registryapp.EnterpriseService) *EnterpriseHandler {
	return &EnterpriseHandler{enterpriseService: enterpriseService}
}

// Create handles POST /enterprises
func (h *EnterpriseHandler) Create(c *gin.Context) {
	var req registryapp.CreateEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.enterpriseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /enterprises
func (h *EnterpriseHandler) List(c *gin.Context) {
	enterprises, err := h.enterpriseService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, enterprises, len(enterprises))
}

// Get handles GET /enterprises/:id
func (h *EnterpriseHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	resp, err := h.enterpriseService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PATCH /enterprises/:id
func (h *EnterpriseHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	var req registryapp.UpdateEnterpriseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.enterpriseService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate handles DELETE /enterprises/:id
func (h *EnterpriseHandler) Deactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	if err := h.enterpriseService.LogicalDelete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /enterprises/:id/permanent
func (h *EnterpriseHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	if err := h.enterpriseService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// LinkAgent handles POST /enterprises/:id/agents/:agent_id
func (h *EnterpriseHandler) LinkAgent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	agentID, err := parseParamID(c, "agent_id")
	if err != nil {
		h.BadRequest(c, "Invalid agent ID")
		return
	}

	if err := h.enterpriseService.LinkAgent(c.Request.Context(), id, agentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// UnlinkAgent handles DELETE /enterprises/:id/agents/:agent_id
func (h *EnterpriseHandler) UnlinkAgent(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	agentID, err := parseParamID(c, "agent_id")
	if err != nil {
		h.BadRequest(c, "Invalid agent ID")
		return
	}

	if err := h.enterpriseService.UnlinkAgent(c.Request.Context(), id, agentID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListAgents handles GET /enterprises/:id/agents
func (h *EnterpriseHandler) ListAgents(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	ids, err := h.enterpriseService.ListAgents(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, ids, len(ids))
}

// LinkIAGroup handles POST /enterprises/:id/groups/:group_id
func (h *EnterpriseHandler) LinkIAGroup(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	groupID, err := parseParamID(c, "group_id")
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}

	if err := h.enterpriseService.LinkIAGroup(c.Request.Context(), id, groupID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// UnlinkIAGroup handles DELETE /enterprises/:id/groups/:group_id
func (h *EnterpriseHandler) UnlinkIAGroup(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}
	groupID, err := parseParamID(c, "group_id")
	if err != nil {
		h.BadRequest(c, "Invalid group ID")
		return
	}

	if err := h.enterpriseService.UnlinkIAGroup(c.Request.Context(), id, groupID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListIAGroups handles GET /enterprises/:id/groups
func (h *EnterpriseHandler) ListIAGroups(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	ids, err := h.enterpriseService.ListIAGroups(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, ids, len(ids))
}

// RegisterRoutes registers all enterprise routes
func (h *EnterpriseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	enterprises := rg.Group("/enterprises")
	{
		enterprises.POST("", h.Create)
		enterprises.GET("", h.List)
		enterprises.GET("/:id", h.Get)
		enterprises.PATCH("/:id", h.Update)
		enterprises.DELETE("/:id", h.Deactivate)
		enterprises.DELETE("/:id/permanent", h.Delete)

		enterprises.GET("/:id/agents", h.ListAgents)
		enterprises.POST("/:id/agents/:agent_id", h.LinkAgent)
		enterprises.DELETE("/:id/agents/:agent_id", h.UnlinkAgent)

		enterprises.GET("/:id/groups", h.ListIAGroups)
		enterprises.POST("/:id/groups/:group_id", h.LinkIAGroup)
		enterprises.DELETE("/:id/groups/:group_id", h.UnlinkIAGroup)
	}
}
