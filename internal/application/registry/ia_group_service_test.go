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

func newIAGroupServiceWithMocks() (*IAGroupService, *MockRepository[registry.IAGroup], *MockRepository[registry.Agent], *MockAssociationRepository) {
	groups := new(MockRepository[registry.IAGroup])
	agents := new(MockRepository[registry.Agent])
	links := new(MockAssociationRepository)
	svc := NewIAGroupService(groups, agents, links)
	return svc, groups, agents, links
}

func TestIAGroupService_GetByID_NotFound(t *testing.T) {
	svc, groups, _, _ := newIAGroupServiceWithMocks()
	ctx := context.Background()

	groups.On("FindByID", ctx, uint(99)).Return(nil, nil)

	_, err := svc.GetByID(ctx, 99)
	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "IAGroup", notFound.Kind)
	assert.Equal(t, uint(99), notFound.ID)
}

func TestIAGroupService_LinkAgent(t *testing.T) {
	svc, groups, agents, links := newIAGroupServiceWithMocks()
	ctx := context.Background()

	group := registry.NewIAGroup("support", "Agents handling support requests", "")
	group.ID = 1
	groups.On("FindByID", ctx, uint(1)).Return(group, nil)
	agent := registry.NewAgent("helper", "Answers support questions", "You are a support agent", "")
	agent.ID = 2
	agents.On("FindByID", ctx, uint(2)).Return(agent, nil)
	links.On("Link", ctx, registry.IAGroupAgents, uint(1), uint(2)).Return(nil)

	require.NoError(t, svc.LinkAgent(ctx, 1, 2))
	links.AssertExpectations(t)
}

func TestIAGroupService_LinkAgent_GroupMissing(t *testing.T) {
	svc, groups, agents, links := newIAGroupServiceWithMocks()
	ctx := context.Background()

	groups.On("FindByID", ctx, uint(3)).Return(nil, nil)

	err := svc.LinkAgent(ctx, 3, 2)
	var notFound *shared.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "IAGroup", notFound.Kind)
	// The agent side is never consulted once the group is missing
	agents.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	links.AssertNotCalled(t, "Link", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestIAGroupService_ListAgents(t *testing.T) {
	svc, _, _, links := newIAGroupServiceWithMocks()
	ctx := context.Background()

	links.On("Links", ctx, registry.IAGroupAgents, uint(1)).Return([]uint{}, nil)

	ids, err := svc.ListAgents(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, ids)
}
