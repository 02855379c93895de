package registry

import (
	"context"
	"time"

	"github.com/agenthub/backend/internal/domain/registry"
	"github.com/agenthub/backend/internal/domain/shared"
)

// =============================================================================
// Enterprise DTOs
// =============================================================================

// CreateEnterpriseRequest represents a request to create a new enterprise
type CreateEnterpriseRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=30"`
	Description string `json:"description" binding:"required,min=10,max=255"`
	IAModel     string `json:"ia_model" binding:"required,min=3,max=50"`
	CreatedBy   string `json:"created_by" binding:"omitempty,max=50"`
}

// UpdateEnterpriseRequest represents a partial update of an enterprise
type UpdateEnterpriseRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=30"`
	Description *string `json:"description" binding:"omitempty,min=10,max=255"`
	IAModel     *string `json:"ia_model" binding:"omitempty,min=3,max=50"`
	UpdatedBy   *string `json:"updated_by" binding:"omitempty,max=50"`
}

// EnterpriseResponse represents an enterprise in API responses
type EnterpriseResponse struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IAModel     string     `json:"ia_model"`
	Active      bool       `json:"active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	CreatedBy   string     `json:"created_by"`
	UpdatedBy   *string    `json:"updated_by"`
}

// ToEnterpriseResponse converts a domain Enterprise to EnterpriseResponse
func ToEnterpriseResponse(e *registry.Enterprise) EnterpriseResponse {
	return EnterpriseResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		IAModel:     e.IAModel,
		Active:      e.Active,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
		CreatedBy:   e.CreatedBy,
		UpdatedBy:   e.UpdatedBy,
	}
}

// =============================================================================
// Enterprise Service
// =============================================================================

// EnterpriseService handles enterprise business operations, including the
// enterprise↔agent and enterprise↔group relationships
type EnterpriseService struct {
	enterprises shared.Repository[registry.Enterprise]
	agents      shared.Repository[registry.Agent]
	groups      shared.Repository[registry.IAGroup]
	links       shared.AssociationRepository
}

// NewEnterpriseService creates a new EnterpriseService
func NewEnterpriseService(
	enterprises shared.Repository[registry.Enterprise],
	agents shared.Repository[registry.Agent],
	groups shared.Repository[registry.IAGroup],
	links shared.AssociationRepository,
) *EnterpriseService {
	return &EnterpriseService{
		enterprises: enterprises,
		agents:      agents,
		groups:      groups,
		links:       links,
	}
}

// Create persists a new enterprise and returns its response representation
func (s *EnterpriseService) Create(ctx context.Context, req CreateEnterpriseRequest) (*EnterpriseResponse, error) {
	enterprise := registry.NewEnterprise(req.Name, req.Description, req.IAModel, req.CreatedBy)
	if err := s.enterprises.Create(ctx, enterprise); err != nil {
		return nil, err
	}
	resp := ToEnterpriseResponse(enterprise)
	return &resp, nil
}

// List returns every enterprise, active and inactive
func (s *EnterpriseService) List(ctx context.Context) ([]EnterpriseResponse, error) {
	enterprises, err := s.enterprises.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]EnterpriseResponse, 0, len(enterprises))
	for i := range enterprises {
		responses = append(responses, ToEnterpriseResponse(&enterprises[i]))
	}
	return responses, nil
}

// GetByID returns one enterprise or a NotFoundError
func (s *EnterpriseService) GetByID(ctx context.Context, id uint) (*EnterpriseResponse, error) {
	enterprise, err := s.requireEnterprise(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToEnterpriseResponse(enterprise)
	return &resp, nil
}

// Update applies a partial update and returns the refreshed enterprise
func (s *EnterpriseService) Update(ctx context.Context, id uint, req UpdateEnterpriseRequest) (*EnterpriseResponse, error) {
	enterprise, err := s.requireEnterprise(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	setString(changes, "name", req.Name)
	setString(changes, "description", req.Description)
	setString(changes, "ia_model", req.IAModel)
	setString(changes, "updated_by", req.UpdatedBy)

	updated, err := s.enterprises.Update(ctx, enterprise, changes)
	if err != nil {
		return nil, err
	}
	resp := ToEnterpriseResponse(updated)
	return &resp, nil
}

// LogicalDelete marks the enterprise inactive
func (s *EnterpriseService) LogicalDelete(ctx context.Context, id uint) error {
	enterprise, err := s.requireEnterprise(ctx, id)
	if err != nil {
		return err
	}
	return s.enterprises.LogicalDelete(ctx, enterprise)
}

// Delete physically removes the enterprise and, via cascade, its links
func (s *EnterpriseService) Delete(ctx context.Context, id uint) error {
	enterprise, err := s.requireEnterprise(ctx, id)
	if err != nil {
		return err
	}
	return s.enterprises.Delete(ctx, enterprise)
}

// LinkAgent links an agent to the enterprise after verifying both sides
// exist. The check and the insert are separate statements, so a concurrent
// hard delete can still win the race; the association table's foreign keys
// then reject the insert instead of leaving a dangling row.
func (s *EnterpriseService) LinkAgent(ctx context.Context, enterpriseID, agentID uint) error {
	if _, err := s.requireEnterprise(ctx, enterpriseID); err != nil {
		return err
	}
	if err := s.requireAgent(ctx, agentID); err != nil {
		return err
	}
	return s.links.Link(ctx, registry.EnterpriseAgents, enterpriseID, agentID)
}

// UnlinkAgent removes the enterprise↔agent link; absent pairs are a no-op
func (s *EnterpriseService) UnlinkAgent(ctx context.Context, enterpriseID, agentID uint) error {
	return s.links.Unlink(ctx, registry.EnterpriseAgents, enterpriseID, agentID)
}

// ListAgents returns the ids of agents linked to the enterprise
func (s *EnterpriseService) ListAgents(ctx context.Context, enterpriseID uint) ([]uint, error) {
	return s.links.Links(ctx, registry.EnterpriseAgents, enterpriseID)
}

// LinkIAGroup links a group to the enterprise after verifying both sides exist
func (s *EnterpriseService) LinkIAGroup(ctx context.Context, enterpriseID, groupID uint) error {
	if _, err := s.requireEnterprise(ctx, enterpriseID); err != nil {
		return err
	}
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return shared.NewNotFoundError("IAGroup", groupID)
	}
	return s.links.Link(ctx, registry.EnterpriseIAGroups, enterpriseID, groupID)
}

// UnlinkIAGroup removes the enterprise↔group link; absent pairs are a no-op
func (s *EnterpriseService) UnlinkIAGroup(ctx context.Context, enterpriseID, groupID uint) error {
	return s.links.Unlink(ctx, registry.EnterpriseIAGroups, enterpriseID, groupID)
}

// ListIAGroups returns the ids of groups linked to the enterprise
func (s *EnterpriseService) ListIAGroups(ctx context.Context, enterpriseID uint) ([]uint, error) {
	return s.links.Links(ctx, registry.EnterpriseIAGroups, enterpriseID)
}

func (s *EnterpriseService) requireEnterprise(ctx context.Context, id uint) (*registry.Enterprise, error) {
	enterprise, err := s.enterprises.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if enterprise == nil {
		return nil, shared.NewNotFoundError("Enterprise", id)
	}
	return enterprise, nil
}

func (s *EnterpriseService) requireAgent(ctx context.Context, id uint) error {
	agent, err := s.agents.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if agent == nil {
		return shared.NewNotFoundError("Agent", id)
	}
	return nil
}
