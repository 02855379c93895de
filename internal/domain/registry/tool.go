package registry

import (
	"github.com/agenthub/backend/internal/domain/shared"
)

// Tool represents an executable capability that agents can be equipped with
type Tool struct {
	shared.Audit
	Name        string `gorm:"size:30;not null"`
	Description string `gorm:"size:255;not null"`
	Path        string `gorm:"size:255;not null"`
}

// TableName returns the table name for GORM
func (Tool) TableName() string {
	return "tools"
}

// Kind returns the entity kind name used in error reporting
func (Tool) Kind() string {
	return "Tool"
}

// NewTool creates an active tool attributed to createdBy
func NewTool(name, description, path, createdBy string) *Tool {
	if createdBy == "" {
		createdBy = shared.SystemActor
	}
	return &Tool{
		Audit:       shared.Audit{Active: true, CreatedBy: createdBy},
		Name:        name,
		Description: description,
		Path:        path,
	}
}
