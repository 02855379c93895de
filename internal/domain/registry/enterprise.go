package registry

import (
	"github.com/agenthub/backend/internal/domain/shared"
)

// Enterprise represents a company operating agents on the platform
type Enterprise struct {
	shared.Audit
	Name        string `gorm:"size:30;not null"`
	Description string `gorm:"size:255;not null"`
	IAModel     string `gorm:"size:50;not null;column:ia_model"`
}

// TableName returns the table name for GORM
func (Enterprise) TableName() string {
	return "enterprises"
}

// Kind returns the entity kind name used in error reporting
func (Enterprise) Kind() string {
	return "Enterprise"
}

// NewEnterprise creates an active enterprise attributed to createdBy,
// falling back to the system actor when the caller is anonymous
func NewEnterprise(name, description, iaModel, createdBy string) *Enterprise {
	if createdBy == "" {
		createdBy = shared.SystemActor
	}
	return &Enterprise{
		Audit:       shared.Audit{Active: true, CreatedBy: createdBy},
		Name:        name,
		Description: description,
		IAModel:     iaModel,
	}
}
