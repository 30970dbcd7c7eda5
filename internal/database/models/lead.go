package models

import (
	"github.com/google/uuid"
)

// Lead is a sales lead owned by the user who imported it. TeamID is nil for
// privately held leads, otherwise the team of its owner.
type Lead struct {
	BaseModel
	UserID       uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	TeamID       *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	BusinessName string     `json:"business_name" gorm:"size:255"`
	ContactName  string     `json:"contact_name" gorm:"size:255"`
	Email        string     `json:"email" gorm:"size:255"`
	Phone        string     `json:"phone" gorm:"size:50"`
	Category     string     `json:"category" gorm:"size:100"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
