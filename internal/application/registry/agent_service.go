package registry

import (
	"context"
	"time"

	"github.com/agenthub/backend/internal/domain/registry"
	"github.com/agenthub/backend/internal/domain/shared"
)

// =============================================================================
// Agent DTOs
// =============================================================================

// CreateAgentRequest represents a request to create a new agent
type CreateAgentRequest struct {
	Name          string `json:"name" binding:"required,min=3,max=30"`
	Description   string `json:"description" binding:"required,min=10,max=255"`
	SystemMessage string `json:"system_message" binding:"required,min=10,max=255"`
	CreatedBy     string `json:"created_by" binding:"omitempty,max=50"`
}

// UpdateAgentRequest represents a partial update of an agent
type UpdateAgentRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=3,max=30"`
	Description   *string `json:"description" binding:"omitempty,min=10,max=255"`
	SystemMessage *string `json:"system_message" binding:"omitempty,min=10,max=255"`
	UpdatedBy     *string `json:"updated_by" binding:"omitempty,max=50"`
}

// AgentResponse represents an agent in API responses
type AgentResponse struct {
	ID            uint       `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	SystemMessage string     `json:"system_message"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
	CreatedBy     string     `json:"created_by"`
	UpdatedBy     *string    `json:"updated_by"`
}

// ToAgentResponse converts a domain Agent to AgentResponse
func ToAgentResponse(a *registry.Agent) AgentResponse {
	return AgentResponse{
		ID:            a.ID,
		Name:          a.Name,
		Description:   a.Description,
		SystemMessage: a.SystemMessage,
		Active:        a.Active,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
		CreatedBy:     a.CreatedBy,
		UpdatedBy:     a.UpdatedBy,
	}
}

// =============================================================================
// Agent Service
// =============================================================================

// AgentService handles agent business operations, including the agent↔tool
// relationship
type AgentService struct {
	agents shared.Repository[registry.Agent]
	tools  shared.Repository[registry.Tool]
	links  shared.AssociationRepository
}

// NewAgentService creates a new AgentService
func NewAgentService(
	agents shared.Repository[registry.Agent],
	tools shared.Repository[registry.Tool],
	links shared.AssociationRepository,
) *AgentService {
	return &AgentService{
		agents: agents,
		tools:  tools,
		links:  links,
	}
}

// Create persists a new agent and returns its response representation
func (s *AgentService) Create(ctx context.Context, req CreateAgentRequest) (*AgentResponse, error) {
	agent := registry.NewAgent(req.Name, req.Description, req.SystemMessage, req.CreatedBy)
	if err := s.agents.Create(ctx, agent); err != nil {
		return nil, err
	}
	resp := ToAgentResponse(agent)
	return &resp, nil
}

// List returns every agent, active and inactive
func (s *AgentService) List(ctx context.Context) ([]AgentResponse, error) {
	agents, err := s.agents.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]AgentResponse, 0, len(agents))
	for i := range agents {
		responses = append(responses, ToAgentResponse(&agents[i]))
	}
	return responses, nil
}

// GetByID returns one agent or a NotFoundError
func (s *AgentService) GetByID(ctx context.Context, id uint) (*AgentResponse, error) {
	agent, err := s.requireAgent(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToAgentResponse(agent)
	return &resp, nil
}

// Update applies a partial update and returns the refreshed agent
func (s *AgentService) Update(ctx context.Context, id uint, req UpdateAgentRequest) (*AgentResponse, error) {
	agent, err := s.requireAgent(ctx, id)
	if err != nil {
		return nil, err
	}

	changes := map[string]any{}
	setString(changes, "name", req.Name)
	setString(changes, "description", req.Description)
	setString(changes, "system_message", req.SystemMessage)
	setString(changes, "updated_by", req.UpdatedBy)

	updated, err := s.agents.Update(ctx, agent, changes)
	if err != nil {
		return nil, err
	}
	resp := ToAgentResponse(updated)
	return &resp, nil
}

// LogicalDelete marks the agent inactive
func (s *AgentService) LogicalDelete(ctx context.Context, id uint) error {
	agent, err := s.requireAgent(ctx, id)
	if err != nil {
		return err
	}
	return s.agents.LogicalDelete(ctx, agent)
}

// Delete physically removes the agent and, via cascade, its links
func (s *AgentService) Delete(ctx context.Context, id uint) error {
	agent, err := s.requireAgent(ctx, id)
	if err != nil {
		return err
	}
	return s.agents.Delete(ctx, agent)
}

// LinkTool equips the agent with a tool after verifying both sides exist
func (s *AgentService) LinkTool(ctx context.Context, agentID, toolID uint) error {
	if _, err := s.requireAgent(ctx, agentID); err != nil {
		return err
	}
	tool, err := s.tools.FindByID(ctx, toolID)
	if err != nil {
		return err
	}
	if tool == nil {
		return shared.NewNotFoundError("Tool", toolID)
	}
	return s.links.Link(ctx, registry.AgentTools, agentID, toolID)
}

// UnlinkTool removes the agent↔tool link; absent pairs are a no-op
func (s *AgentService) UnlinkTool(ctx context.Context, agentID, toolID uint) error {
	return s.links.Unlink(ctx, registry.AgentTools, agentID, toolID)
}

// ListTools returns the ids of tools linked to the agent
func (s *AgentService) ListTools(ctx context.Context, agentID uint) ([]uint, error) {
	return s.links.Links(ctx, registry.AgentTools, agentID)
}

func (s *AgentService) requireAgent(ctx context.Context, id uint) (*registry.Agent, error) {
	agent, err := s.agents.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, shared.NewNotFoundError("Agent", id)
	}
	return agent, nil
}
