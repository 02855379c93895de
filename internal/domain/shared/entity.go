package shared

import "time"

// SystemActor is the attribution recorded when a caller does not identify
// itself on a write.
const SystemActor = "system"

// Entity is the base interface for all persisted entities
type Entity interface {
	GetID() uint
	Kind() string
	IsActive() bool
	Deactivate()
}

// Audit provides identity, soft-delete state and audit metadata common to
// all entities. UpdatedAt and UpdatedBy stay nil until the first mutation.
type Audit struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Active    bool       `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
	CreatedBy string     `gorm:"size:50;not null" json:"created_by"`
	UpdatedBy *string    `gorm:"size:50" json:"updated_by"`
}

// GetID returns the entity ID
func (a *Audit) GetID() uint {
	return a.ID
}

// IsActive reports whether the entity has been soft-deleted
func (a *Audit) IsActive() bool {
	return a.Active
}

// Deactivate marks the entity inactive. The transition is terminal: no
// operation in this module reactivates an entity.
func (a *Audit) Deactivate() {
	a.Active = false
}
