package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/backend/internal/domain/registry"
	"github.com/agenthub/backend/internal/domain/shared"
)

func newAgentServiceWithMocks() (*AgentService, *MockRepository[registry.Agent], *MockRepository[registry.Tool], *MockAssociationRepository) {
	agents := new(MockRepository[registry.Agent])
	tools := new(MockRepository[registry.Tool])
	links := new(MockAssociationRepository)
	svc := NewAgentService(agents, tools, links)
	return svc, agents, tools, links
}

func TestAgentService_LinkTool(t *testing.T) {
	svc, agents, tools, links := newAgentServiceWithMocks()
	ctx := context.Background()

	agent := registry.NewAgent("helper", "Answers support questions", "You are a support agent", "")
	agent.ID = 1
	agents.On("FindByID", ctx, uint(1)).Return(agent, nil)
	tool := registry.NewTool("translator", "Translates text between languages", "/tools/translate", "")
	tool.ID = 4
	tools.On("FindByID", ctx, uint(4)).Return(tool, nil)
	links.On("Link", ctx, registry.AgentTools, uint(1), uint(4)).Return(nil)

	require.NoError(t, svc.LinkTool(ctx, 1, 4))
	links.AssertExpectations(t)
}

func TestAgentService_LinkTool_ToolMissing(t *testing.T) {
	svc, agents, tools, links := newAgentServiceWithMocks()
	ctx := context.Background()

	agent := registry.NewAgent("helper", "Answers support questions", "You are a support agent", "")
	agent.ID = 1
	agents.On("FindByID", ctx, uint(1)).Return(agent, nil)
	tools.On("FindByID", ctx, uint(9)).Return(nil, nil)

	err := svc.LinkTool(ctx, 1, 9)
	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Tool", notFound.Kind)
	assert.Equal(t, uint(9), notFound.ID)
	links.AssertNotCalled(t, "Link", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAgentService_Update_NotFound(t *testing.T) {
	svc, agents, _, _ := newAgentServiceWithMocks()
	ctx := context.Background()

	agents.On("FindByID", ctx, uint(8)).Return(nil, nil)

	name := "assistant"
	_, err := svc.Update(ctx, 8, UpdateAgentRequest{Name: &name})
	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Agent", notFound.Kind)
	agents.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
