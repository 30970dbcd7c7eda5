package models

import (
	"github.com/google/uuid"

	"lead-dashboard-backend/internal/roles"
)

// TeamMember pairs a user with a team. A user holds at most one row system-wide,
// enforced by idx_team_members_user.
type TeamMember struct {
	BaseModel
	TeamID uuid.UUID  `json:"team_id" gorm:"type:uuid;not null;index"`
	UserID uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_team_members_user"`
	Role   roles.Role `json:"role" gorm:"type:varchar(20);not null;default:'editor'"`

	// Relationships
	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}

// NormalizedRole maps the stored role token, including legacy "member", to a Role
func (m *TeamMember) NormalizedRole() roles.Role {
	return roles.Normalize(string(m.Role))
}
