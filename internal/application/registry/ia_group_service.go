package registry

import (
	"context"
	"time"

	"github.com/agenthub/backend/internal/domain/registry"
	"github.com/agenthub/backend/internal/domain/shared"
)

// =============================================================================
// IAGroup DTOs
// =============================================================================

// CreateIAGroupRequest represents a request to create a new agent group
type CreateIAGroupRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=30"`
	Description string `json:"description" binding:"required,min=10,max=255"`
	CreatedBy   string `json:"created_by" binding:"omitempty,max=50"`
}

// UpdateIAGroupRequest represents a partial update of an agent group
type UpdateIAGroupRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=30"`
	Description *string `json:"description" binding:"omitempty,min=10,max=255"`
	UpdatedBy   *string `json:"updated_by" binding:"omitempty,max=50"`
}

// IAGroupResponse represents an agent group in API responses
type IAGroupResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	CreatedBy   string     `json:"created_by"`
	UpdatedBy   *string    `json:"updated_by"`
}

// ToIAGroupResponse converts a domain IAGroup to IAGroupResponse
func ToIAGroupResponse(g *registry.IAGroup) IAGroupResponse {
	return IAGroupResponse{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		Active:      g.Active,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
		CreatedBy:   g.CreatedBy,
		UpdatedBy:   g.UpdatedBy,
	}
}

// =============================================================================
// IAGroup Service
// =============================================================================

// IAGroupService handles agent-group business operations, including group
// membership of agents
type IAGroupService struct {
	groups shared.Repository[registry.IAGroup]
	agents shared.Repository[registry.Agent]
	links  shared.AssociationRepository
}

// NewIAGroupService creates a new IAGroupService
func NewIAGroupService(
	groups shared.Repository[registry.IAGroup],
	agents shared.Repository[registry.Agent],
	links shared.AssociationRepository,
) *IAGroupService {
	return &IAGroupService{
		groups: groups,
		agents: agents,
		links:  links,
	}
}

// Create persists a new group and returns its response representation
func (s *IAGroupService) Create(ctx context.Context, req CreateIAGroupRequest) (*IAGroupResponse, error) {
	group := registry.NewIAGroup(req.Name, req.Description, req.CreatedBy)
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}
	resp := ToIAGroupResponse(group)
	return &resp, nil
}

// List returns every group, active and inactive
func (s *IAGroupService) List(ctx context.Context) ([]IAGroupResponse, error) {
	groups, err := s.groups.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]IAGroupResponse, 0, len(groups))
	for i := range groups {
		responses = append(responses, ToIAGroupResponse(&groups[i]))
	}
	return responses, nil
}

// GetByID returns one group or a NotFoundError
func (s *IAGroupService) GetByID(ctx context.Context, id uint) (*IAGroupResponse, error) {
	group, err := s.requireGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToIAGroupResponse(group)
	return &resp, nil
}

// Update applies a partial update and returns the refreshed group
func (s *IAGroupService) Update(ctx context.Context, id uint, req UpdateIAGroupRequest) (*IAGroupResponse, error) {
	group, err := s.requireGroup(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	setString(changes, "name", req.Name)
	setString(changes, "description", req.Description)
	setString(changes, "updated_by", req.UpdatedBy)

	updated, err := s.groups.Update(ctx, group, changes)
	if err != nil {
		return nil, err
	}
	resp := ToIAGroupResponse(updated)
	return &resp, nil
}

// LogicalDelete marks the group inactive
func (s *IAGroupService) LogicalDelete(ctx context.Context, id uint) error {
	group, err := s.requireGroup(ctx, id)
	if err != nil {
		return err
	}
	return s.groups.LogicalDelete(ctx, group)
}

// Delete physically removes the group and, via cascade, its links
func (s *IAGroupService) Delete(ctx context.Context, id uint) error {
	group, err := s.requireGroup(ctx, id)
	if err != nil {
		return err
	}
	return s.groups.Delete(ctx, group)
}

// LinkAgent places an agent in the group after verifying both sides exist
func (s *IAGroupService) LinkAgent(ctx context.Context, groupID, agentID uint) error {
	if _, err := s.requireGroup(ctx, groupID); err != nil {
		return err
	}
	agent, err := s.agents.FindByID(ctx, agentID)
	if err != nil {
		return err
	}
	if agent == nil {
		return shared.NewNotFoundError("Agent", agentID)
	}
	return s.links.Link(ctx, registry.IAGroupAgents, groupID, agentID)
}

// UnlinkAgent removes the group↔agent link; absent pairs are a no-op
func (s *IAGroupService) UnlinkAgent(ctx context.Context, groupID, agentID uint) error {
	return s.links.Unlink(ctx, registry.IAGroupAgents, groupID, agentID)
}

// ListAgents returns the ids of agents in the group
func (s *IAGroupService) ListAgents(ctx context.Context, groupID uint) ([]uint, error) {
	return s.links.Links(ctx, registry.IAGroupAgents, groupID)
}

func (s *IAGroupService) requireGroup(ctx context.Context, id uint) (*registry.IAGroup, error) {
	group, err := s.groups.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, shared.NewNotFoundError("IAGroup", id)
	}
	return group, nil
}
