package registry

import (
	"context"
	"time"

	"github.com/agenthub/backend/internal/domain/registry"
	"github.com/agenthub/backend/internal/domain/shared"
)

// =============================================================================
// Tool DTOs
// =============================================================================

// CreateToolRequest represents a request to register a new tool
type CreateToolRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=30"`
	Description string `json:"description" binding:"required,min=10,max=255"`
	Path        string `json:"path" binding:"required,min=3,max=255"`
	CreatedBy   string `json:"created_by" binding:"omitempty,max=50"`
}

// UpdateToolRequest represents a partial update of a tool
type UpdateToolRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=30"`
	Description *string `json:"description" binding:"omitempty,min=10,max=255"`
	Path        *string `json:"path" binding:"omitempty,min=3,max=255"`
	UpdatedBy   *string `json:"updated_by" binding:"omitempty,max=50"`
}

// ToolResponse represents a tool in API responses
type ToolResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Path        string     `json:"path"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	CreatedBy   string     `json:"created_by"`
	UpdatedBy   *string    `json:"updated_by"`
}

// ToToolResponse converts a domain Tool to ToolResponse
func ToToolResponse(t *registry.Tool) ToolResponse {
	return ToolResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Path:        t.Path,
		Active:      t.Active,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		CreatedBy:   t.CreatedBy,
		UpdatedBy:   t.UpdatedBy,
	}
}

// =============================================================================
// Tool Service
// =============================================================================

// ToolService handles tool business operations. Assignments of tools to
// agents are owned by the agent side, see AgentService.
type ToolService struct {
	tools shared.Repository[registry.Tool]
}

// NewToolService creates a new ToolService
func NewToolService(tools shared.Repository[registry.Tool]) *ToolService {
	return &ToolService{tools: tools}
}

// Create persists a new tool and returns its response representation
func (s *ToolService) Create(ctx context.Context, req CreateToolRequest) (*ToolResponse, error) {
	tool := registry.NewTool(req.Name, req.Description, req.Path, req.CreatedBy)
	if err := s.tools.Create(ctx, tool); err != nil {
		return nil, err
	}
	resp := ToToolResponse(tool)
	return &resp, nil
}

// List returns every tool, active and inactive
func (s *ToolService) List(ctx context.Context) ([]ToolResponse, error) {
	tools, err := s.tools.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]ToolResponse, 0, len(tools))
	for i := range tools {
		responses = append(responses, ToToolResponse(&tools[i]))
	}
	return responses, nil
}

// GetByID returns one tool or a NotFoundError
func (s *ToolService) GetByID(ctx context.Context, id uint) (*ToolResponse, error) {
	tool, err := s.requireTool(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToToolResponse(tool)
	return &resp, nil
}

// Update applies a partial update and returns the refreshed tool
func (s *ToolService) Update(ctx context.Context, id uint, req UpdateToolRequest) (*ToolResponse, error) {
	tool, err := s.requireTool(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	setString(changes, "name", req.Name)
	setString(changes, "description", req.Description)
	setString(changes, "path", req.Path)
	setString(changes, "updated_by", req.UpdatedBy)

	updated, err := s.tools.Update(ctx, tool, changes)
	if err != nil {
		return nil, err
	}
	resp := ToToolResponse(updated)
	return &resp, nil
}

// LogicalDelete marks the tool inactive
func (s *ToolService) LogicalDelete(ctx context.Context, id uint) error {
	tool, err := s.requireTool(ctx, id)
	if err != nil {
		return err
	}
	return s.tools.LogicalDelete(ctx, tool)
}

// Delete physically removes the tool and, via cascade, its agent links
func (s *ToolService) Delete(ctx context.Context, id uint) error {
	tool, err := s.requireTool(ctx, id)
	if err != nil {
		return err
	}
	return s.tools.Delete(ctx, tool)
}

func (s *ToolService) requireTool(ctx context.Context, id uint) (*registry.Tool, error) {
	tool, err := s.tools.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tool == nil {
		return nil, shared.NewNotFoundError("Tool", id)
	}
	return tool, nil
}
