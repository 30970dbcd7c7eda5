package models

import (
	"github.com/google/uuid"
)

// TeamRequest is a user's request to join a team. Status moves from pending to
// approved or rejected exactly once. A user holds at most one pending request per
// team, enforced by idx_team_requests_pending.
type TeamRequest struct {
	BaseModel
	TeamID uuid.UUID     `json:"team_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_requests_pending,where:status = 'pending'"`
	UserID uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_team_requests_pending,where:status = 'pending'"`
	Note   string        `json:"note" gorm:"size:500"`
	Status RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for TeamRequest
func (TeamRequest) TableName() string {
	return "team_requests"
}
