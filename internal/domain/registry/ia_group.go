package registry

import (
	"github.com/agenthub/backend/internal/domain/shared"
)

// IAGroup represents a named group of agents
type IAGroup struct {
	shared.Audit
	Name        string `gorm:"size:30;not null"`
	Description string `gorm:"size:255;not null"`
}

// TableName returns the table name for GORM
func (IAGroup) TableName() string {
	return "ia_groups"
}

// Kind returns the entity kind name used in error reporting
func (IAGroup) Kind() string {
	return "IAGroup"
}

// NewIAGroup creates an active group attributed to createdBy
func NewIAGroup(name, description, createdBy string) *IAGroup {
	if createdBy == "" {
		createdBy = shared.SystemActor
	}
	return &IAGroup{
		Audit:       shared.Audit{Active: true, CreatedBy: createdBy},
		Name:        name,
		Description: description,
	}
}
