package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/backend/internal/domain/registry"
	"github.com/agenthub/backend/internal/domain/shared"
)

// seedEnterpriseAndAgent persists one enterprise and one agent for link tests
func seedEnterpriseAndAgent(t *testing.T, db *Database) (*registry.Enterprise, *registry.Agent) {
	t.Helper()
	ctx := context.Background()

	enterprise := registry.NewEnterprise("Acme", "An enterprise for testing", "gpt-4", "")
	require.NoError(t, NewRepository[registry.Enterprise](db.DB).Create(ctx, enterprise))

	agent := registry.NewAgent("helper", "Answers support questions", "You are a support agent", "")
	require.NoError(t, NewRepository[registry.Agent](db.DB).Create(ctx, agent))

	return enterprise, agent
}

func TestAssociationRepository_LinkAndLinks(t *testing.T) {
	db := setupTestDB(t)
	enterprise, agent := seedEnterpriseAndAgent(t, db)
	links := NewGormAssociationRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, links.Link(ctx, registry.EnterpriseAgents, enterprise.ID, agent.ID))

	ids, err := links.Links(ctx, registry.EnterpriseAgents, enterprise.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{agent.ID}, ids)
}

func TestAssociationRepository_Link_Duplicate(t *testing.T) {
	db := setupTestDB(t)
	enterprise, agent := seedEnterpriseAndAgent(t, db)
	links := NewGormAssociationRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, links.Link(ctx, registry.EnterpriseAgents, enterprise.ID, agent.ID))

	err := links.Link(ctx, registry.EnterpriseAgents, enterprise.ID, agent.ID)
	assert.ErrorIs(t, err, shared.ErrAlreadyLinked)

	// The duplicate attempt must not add a row
	ids, err := links.Links(ctx, registry.EnterpriseAgents, enterprise.ID)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestAssociationRepository_Unlink_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	enterprise, agent := seedEnterpriseAndAgent(t, db)
	links := NewGormAssociationRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, links.Link(ctx, registry.EnterpriseAgents, enterprise.ID, agent.ID))
	require.NoError(t, links.Unlink(ctx, registry.EnterpriseAgents, enterprise.ID, agent.ID))

	ids, err := links.Links(ctx, registry.EnterpriseAgents, enterprise.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// Removing an absent pair is not an error
	require.NoError(t, links.Unlink(ctx, registry.EnterpriseAgents, enterprise.ID, agent.ID))
}

func TestAssociationRepository_Links_Reversed(t *testing.T) {
	db := setupTestDB(t)
	enterprise, agent := seedEnterpriseAndAgent(t, db)
	links := NewGormAssociationRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, links.Link(ctx, registry.EnterpriseAgents, enterprise.ID, agent.ID))

	// Anchoring on the agent side lists the enterprises it belongs to
	ids, err := links.Links(ctx, registry.EnterpriseAgents.Reversed(), agent.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{enterprise.ID}, ids)
}

func TestAssociationRepository_CascadeOnHardDelete(t *testing.T) {
	db := setupTestDB(t)
	enterprise, agent := seedEnterpriseAndAgent(t, db)
	links := NewGormAssociationRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, links.Link(ctx, registry.EnterpriseAgents, enterprise.ID, agent.ID))

	require.NoError(t, NewRepository[registry.Agent](db.DB).Delete(ctx, agent))

	ids, err := links.Links(ctx, registry.EnterpriseAgents, enterprise.ID)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestAssociationRepository_SoftDeleteKeepsLinks(t *testing.T) {
	db := setupTestDB(t)
	enterprise, agent := seedEnterpriseAndAgent(t, db)
	links := NewGormAssociationRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, links.Link(ctx, registry.EnterpriseAgents, enterprise.ID, agent.ID))
	require.NoError(t, NewRepository[registry.Agent](db.DB).LogicalDelete(ctx, agent))

	ids, err := links.Links(ctx, registry.EnterpriseAgents, enterprise.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{agent.ID}, ids)
}
