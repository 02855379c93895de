package shared

import "context"

// Repository is the persistence contract shared by every entity kind.
//
// FindByID reports absence with a nil pointer and a nil error; whether
// absence is fatal is the caller's decision. The entity arguments to
// Update, LogicalDelete and Delete must have been freshly loaded through
// FindByID — handing in a row from another store is undefined behavior at
// the storage boundary.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, entity *T, changes map[string]any) (*T, error)
	LogicalDelete(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}

// AssociationTable describes one many-to-many table by name and the two
// foreign-key columns. Call sites pass a predefined descriptor instead of
// raw column strings, so which side is which is fixed at the declaration.
type AssociationTable struct {
	Name        string
	LeftColumn  string
	RightColumn string
}

// Reversed returns the descriptor with the two sides swapped, for
// enumerating an association from its right side.
func (t AssociationTable) Reversed() AssociationTable {
	return AssociationTable{Name: t.Name, LeftColumn: t.RightColumn, RightColumn: t.LeftColumn}
}

// AssociationRepository manages many-to-many link rows. One implementation
// serves every association table; the descriptor selects the table.
//
// Link does not verify that the ids reference existing entities — that is
// the domain service's responsibility. Unlink is idempotent: removing an
// absent pair is success.
type AssociationRepository interface {
	Link(ctx context.Context, table AssociationTable, leftID, rightID uint) error
	Unlink(ctx context.Context, table AssociationTable, leftID, rightID uint) error
	Links(ctx context.Context, table AssociationTable, anchorID uint) ([]uint, error)
}
