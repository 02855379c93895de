package registry

import (
	"github.com/agenthub/backend/internal/domain/shared"
)

// Join models for the five many-to-many relationships. The composite
// primary key is the uniqueness constraint on each pair; the foreign keys
// cascade on physical delete of either referenced entity. Soft-deleted
// entities keep their rows.

// EnterpriseAgent links an enterprise to an agent it operates
type EnterpriseAgent struct {
	EnterpriseID uint       `gorm:"primaryKey"`
	AgentID      uint       `gorm:"primaryKey"`
	Enterprise   Enterprise `gorm:"constraint:OnDelete:CASCADE"`
	Agent        Agent      `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (EnterpriseAgent) TableName() string { return "enterprise_agents" }

// EnterpriseIAGroup links an enterprise to one of its agent groups
type EnterpriseIAGroup struct {
	EnterpriseID uint       `gorm:"primaryKey"`
	IAGroupID    uint       `gorm:"primaryKey;column:ia_group_id"`
	Enterprise   Enterprise `gorm:"constraint:OnDelete:CASCADE"`
	IAGroup      IAGroup    `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (EnterpriseIAGroup) TableName() string { return "enterprise_ia_groups" }

// IAGroupAgent places an agent in a group
type IAGroupAgent struct {
	IAGroupID uint    `gorm:"primaryKey;column:ia_group_id"`
	AgentID   uint    `gorm:"primaryKey"`
	IAGroup   IAGroup `gorm:"constraint:OnDelete:CASCADE"`
	Agent     Agent   `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (IAGroupAgent) TableName() string { return "ia_group_agents" }

// AgentTool equips an agent with a tool
type AgentTool struct {
	AgentID uint  `gorm:"primaryKey"`
	ToolID  uint  `gorm:"primaryKey"`
	Agent   Agent `gorm:"constraint:OnDelete:CASCADE"`
	Tool    Tool  `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (AgentTool) TableName() string { return "agent_tools" }

// UserEnterprise grants a user membership in an enterprise
type UserEnterprise struct {
	UserID       uint       `gorm:"primaryKey"`
	EnterpriseID uint       `gorm:"primaryKey"`
	User         User       `gorm:"constraint:OnDelete:CASCADE"`
	Enterprise   Enterprise `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (UserEnterprise) TableName() string { return "user_enterprises" }

// Table descriptors passed to the association repository. Services use
// these, or their Reversed form, to pick the table and the anchor side.
var (
	EnterpriseAgents = shared.AssociationTable{
		Name:        "enterprise_agents",
		LeftColumn:  "enterprise_id",
		RightColumn: "agent_id",
	}
	EnterpriseIAGroups = shared.AssociationTable{
		Name:        "enterprise_ia_groups",
		LeftColumn:  "enterprise_id",
		RightColumn: "ia_group_id",
	}
	IAGroupAgents = shared.AssociationTable{
		Name:        "ia_group_agents",
		LeftColumn:  "ia_group_id",
		RightColumn: "agent_id",
	}
	AgentTools = shared.AssociationTable{
		Name:        "agent_tools",
		LeftColumn:  "agent_id",
		RightColumn: "tool_id",
	}
	UserEnterprises = shared.AssociationTable{
		Name:        "user_enterprises",
		LeftColumn:  "user_id",
		RightColumn: "enterprise_id",
	}
)
