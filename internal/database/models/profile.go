package models

import (
	"github.com/google/uuid"
)

// Profile holds display details for an identity, keyed by the identity's user id
type Profile struct {
	BaseModel
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex"`
	FullName string    `json:"full_name" gorm:"size:200"`
	Email    string    `json:"email" gorm:"size:255;index"`
}

// TableName returns the table name for Profile
func (Profile) TableName() string {
	return "profiles"
}
