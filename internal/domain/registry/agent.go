package registry

import (
	"github.com/agenthub/backend/internal/domain/shared"
)

// Agent represents an AI agent with its system prompt
type Agent struct {
	shared.Audit
	Name          string `gorm:"size:30;not null"`
	Description   string `gorm:"size:255;not null"`
	SystemMessage string `gorm:"size:255;not null"`
}

// TableName returns the table name for GORM
func (Agent) TableName() string {
	return "agents"
}

// Kind returns the entity kind name used in error reporting
func (Agent) Kind() string {
	return "Agent"
}

// NewAgent creates an active agent attributed to createdBy
func NewAgent(name, description, systemMessage, createdBy string) *Agent {
	if createdBy == "" {
		createdBy = shared.SystemActor
	}
	return &Agent{
		Audit:         shared.Audit{Active: true, CreatedBy: createdBy},
		Name:          name,
		Description:   description,
		SystemMessage: systemMessage,
	}
}
