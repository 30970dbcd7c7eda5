package repository

import (
	"context"

	"lead-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProfileRepository handles database operations for profiles
type ProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetByUserIDs retrieves the profiles that exist for userIDs
func (r *ProfileRepository) GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var profiles []models.Profile
	err := r.db.WithContext(ctx).Where("user_id IN ?", userIDs).Find(&profiles).Error
	return profiles, err
}
