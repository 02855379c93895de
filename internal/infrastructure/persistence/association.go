package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/agenthub/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAssociationRepository implements shared.AssociationRepository over
// raw SQL. One instance serves every association table; the descriptor
// passed to each call selects the table and the two key columns. Table and
// column names come exclusively from the predeclared descriptors in the
// registry package, never from request input.
type GormAssociationRepository struct {
	db *gorm.DB
}

// NewGormAssociationRepository creates a new GormAssociationRepository
func NewGormAssociationRepository(db *gorm.DB) *GormAssociationRepository {
	return &GormAssociationRepository{db: db}
}

// Link inserts one pair row. The composite primary key rejects duplicates,
// surfaced as shared.ErrAlreadyLinked. Link does not check that the ids
// reference live entities; the foreign keys are the last line of defense
// when a concurrent delete wins the race against the caller's existence
// check.
func (r *GormAssociationRepository) Link(ctx context.Context, table shared.AssociationTable, leftID, rightID uint) error {
	stmt := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES (?, ?)",
		table.Name, table.LeftColumn, table.RightColumn)
	if err := r.db.WithContext(ctx).Exec(stmt, leftID, rightID).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyLinked
		}
		return err
	}
	return nil
}

// Unlink deletes the matching pair row if present. Removing an absent pair
// is success, not an error.
func (r *GormAssociationRepository) Unlink(ctx context.Context, table shared.AssociationTable, leftID, rightID uint) error {
	stmt := fmt.Sprintf("DELETE FROM %s WHERE %s = ? AND %s = ?",
		table.Name, table.LeftColumn, table.RightColumn)
	return r.db.WithContext(ctx).Exec(stmt, leftID, rightID).Error
}

// Links returns every right id paired with the given left anchor, in
// storage order. Pass table.Reversed() to enumerate from the other side.
func (r *GormAssociationRepository) Links(ctx context.Context, table shared.AssociationTable, anchorID uint) ([]uint, error) {
	stmt := fmt.Sprintf("SELECT %s FROM %s WHERE %s = ?",
		table.RightColumn, table.Name, table.LeftColumn)
	var ids []uint
	if err := r.db.WithContext(ctx).Raw(stmt, anchorID).Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Ensure GormAssociationRepository implements shared.AssociationRepository
var _ shared.AssociationRepository = (*GormAssociationRepository)(nil)
