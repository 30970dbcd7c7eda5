package models

import (
	"github.com/google/uuid"
)

// Team is a collaborative group of users sharing leads. The invite code never changes.
type Team struct {
	BaseModel
	OwnerID    uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index"`
	Name       string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	InviteCode string    `json:"invite_code" gorm:"not null;size:12;uniqueIndex:idx_teams_invite_code"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
