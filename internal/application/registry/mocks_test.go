package registry

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/agenthub/backend/internal/domain/shared"
)

// =============================================================================
// Mock Repositories
// =============================================================================

// MockRepository is a mock implementation of shared.Repository
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) Create(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) Update(ctx context.Context, entity *T, changes map[string]any) (*T, error) {
	args := m.Called(ctx, entity, changes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockRepository[T]) LogicalDelete(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockRepository[T]) Delete(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

// MockAssociationRepository is a mock implementation of shared.AssociationRepository
type MockAssociationRepository struct {
	mock.Mock
}

func (m *MockAssociationRepository) Link(ctx context.Context, table shared.AssociationTable, leftID, rightID uint) error {
	args := m.Called(ctx, table, leftID, rightID)
	return args.Error(0)
}

func (m *MockAssociationRepository) Unlink(ctx context.Context, table shared.AssociationTable, leftID, rightID uint) error {
	args := m.Called(ctx, table, leftID, rightID)
	return args.Error(0)
}

func (m *MockAssociationRepository) Links(ctx context.Context, table shared.AssociationTable, anchorID uint) ([]uint, error) {
	args := m.Called(ctx, table, anchorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}
