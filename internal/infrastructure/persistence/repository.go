package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/agenthub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// Repository is a GORM-backed implementation of shared.Repository serving
// every entity kind. T is the entity struct; the pointer constraint gives
// the methods access to the embedded audit fields without reflection.
//
// Each method commits independently; there is no transaction spanning
// multiple calls. Isolation between concurrent requests is delegated to
// the storage engine.
type Repository[T any, PT interface {
	*T
	shared.Entity
}] struct {
	db *gorm.DB
}

// NewRepository creates a repository for one entity kind
func NewRepository[T any, PT interface {
	*T
	shared.Entity
}](db *gorm.DB) *Repository[T, PT] {
	return &Repository[T, PT]{db: db}
}

// Create persists a new entity, assigning its id and creation timestamp.
// A uniqueness violation surfaces as shared.ErrAlreadyExists; any other
// storage failure propagates unmodified.
func (r *Repository[T, PT]) Create(ctx context.Context, entity PT) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// FindAll returns every row in storage order, soft-deleted rows included.
// Hiding inactive rows is a caller decision, not a storage policy.
func (r *Repository[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// FindByID returns the row with the given id, or nil when there is none.
// Absence is not an error; the caller decides whether it is fatal.
func (r *Repository[T, PT]) FindByID(ctx context.Context, id uint) (PT, error) {
	var entity T
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// Update applies a partial column overwrite onto a freshly-loaded entity,
// stamps updated_at, and returns the refreshed row. Columns absent from
// changes keep their prior values. An empty change set is a no-op.
func (r *Repository[T, PT]) Update(ctx context.Context, entity PT, changes map[string]any) (PT, error) {
	if len(changes) == 0 {
		return entity, nil
	}
	changes["updated_at"] = time.Now()
	if err := r.db.WithContext(ctx).Model(entity).Updates(changes).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, shared.ErrAlreadyExists
		}
		return nil, err
	}
	var fresh T
	if err := r.db.WithContext(ctx).First(&fresh, entity.GetID()).Error; err != nil {
		return nil, err
	}
	return &fresh, nil
}

// LogicalDelete marks the entity inactive. Idempotent: an already-inactive
// entity is left untouched, updated_at included.
func (r *Repository[T, PT]) LogicalDelete(ctx context.Context, entity PT) error {
	if !entity.IsActive() {
		return nil
	}
	err := r.db.WithContext(ctx).Model(entity).Updates(map[string]any{
		"active":     false,
		"updated_at": time.Now(),
	}).Error
	if err != nil {
		return err
	}
	entity.Deactivate()
	return nil
}

// Delete physically removes the row. Association rows referencing it are
// removed by the storage engine's ON DELETE CASCADE.
func (r *Repository[T, PT]) Delete(ctx context.Context, entity PT) error {
	return r.db.WithContext(ctx).Delete(entity).Error
}
