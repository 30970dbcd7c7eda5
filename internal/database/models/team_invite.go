package models

import (
	"time"

	"github.com/google/uuid"

	"lead-dashboard-backend/internal/roles"
)

// TeamInvite is an outstanding email invitation to a team
type TeamInvite struct {
	BaseModel
	TeamID    uuid.UUID    `json:"team_id" gorm:"type:uuid;not null;index"`
	Email     string       `json:"email" gorm:"not null;size:255"`
	Role      roles.Role   `json:"role" gorm:"type:varchar(20);not null;default:'editor'"`
	Token     string       `json:"-" gorm:"not null;size:64;uniqueIndex"`
	Status    InviteStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty"`
}

// TableName returns the table name for TeamInvite
func (TeamInvite) TableName() string {
	return "team_invites"
}
