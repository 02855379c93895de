package handler

import (
	"github.com/gin-gonic/gin"

	registryapp "github.com/agenthub/backend/internal/application/registry"
)

// ToolHandler handles tool-related API endpoints
type ToolHandler struct {
	BaseHandler
	toolService *registryapp.ToolService
}

// NewToolHandler creates a new ToolHandler
func NewToolHandler(toolService *registryapp.ToolService) *ToolHandler {
	return &ToolHandler{toolService: toolService}
}

// Create handles POST /tools
func (h *ToolHandler) Create(c *gin.Context) {
	var req registryapp.CreateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.toolService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /tools
func (h *ToolHandler) List(c *gin.Context) {
	tools, err := h.toolService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, tools, len(tools))
}

// Get handles GET /tools/:id
func (h *ToolHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tool ID")
		return
	}

	resp, err := h.toolService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PATCH /tools/:id
func (h *ToolHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tool ID")
		return
	}

	var req registryapp.UpdateToolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.toolService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate handles DELETE /tools/:id
func (h *ToolHandler) Deactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tool ID")
		return
	}

	if err := h.toolService.LogicalDelete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /tools/:id/permanent
func (h *ToolHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tool ID")
		return
	}

	if err := h.toolService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers all tool routes
func (h *ToolHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tools := rg.Group("/tools")
	{
		tools.POST("", h.Create)
		tools.GET("", h.List)
		tools.GET("/:id", h.Get)
		tools.PATCH("/:id", h.Update)
		tools.DELETE("/:id", h.Deactivate)
		tools.DELETE("/:id/permanent", h.Delete)
	}
}
