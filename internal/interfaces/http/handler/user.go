package handler

import (
	"github.com/gin-gonic/gin"

	registryapp "github.com/agenthub/backend/internal/application/registry"
)

// UserHandler handles user-related API endpoints
type UserHandler struct {
	BaseHandler
	userService *registryapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *registryapp.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Create handles POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req registryapp.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, users, len(users))
}

// Get handles GET /users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	resp, err := h.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PATCH /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req registryapp.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate handles DELETE /users/:id
func (h *UserHandler) Deactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.LogicalDelete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /users/:id/permanent
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// LinkEnterprise handles POST /users/:id/enterprises/:enterprise_id
func (h *UserHandler) LinkEnterprise(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	enterpriseID, err := parseParamID(c, "enterprise_id")
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	if err := h.userService.LinkEnterprise(c.Request.Context(), id, enterpriseID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// UnlinkEnterprise handles DELETE /users/:id/enterprises/:enterprise_id
func (h *UserHandler) UnlinkEnterprise(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}
	enterpriseID, err := parseParamID(c, "enterprise_id")
	if err != nil {
		h.BadRequest(c, "Invalid enterprise ID")
		return
	}

	if err := h.userService.UnlinkEnterprise(c.Request.Context(), id, enterpriseID); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}

// ListEnterprises handles GET /users/:id/enterprises
func (h *UserHandler) ListEnterprises(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	ids, err := h.userService.ListEnterprises(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, ids, len(ids))
}

// RegisterRoutes registers all user routes
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.PATCH("/:id", h.Update)
		users.DELETE("/:id", h.Deactivate)
		users.DELETE("/:id/permanent", h.Delete)

		users.GET("/:id/enterprises", h.ListEnterprises)
		users.POST("/:id/enterprises/:enterprise_id", h.LinkEnterprise)
		users.DELETE("/:id/enterprises/:enterprise_id", h.UnlinkEnterprise)
	}
}
