package repository

import (
	"context"

	"lead-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamInviteRepository handles database operations for team invites
type TeamInviteRepository struct {
	db *gorm.DB
}

// NewTeamInviteRepository creates a new team invite repository
func NewTeamInviteRepository(db *gorm.DB) *TeamInviteRepository {
	return &TeamInviteRepository{db: db}
}

// ListByTeamID retrieves a team's invites, newest first
func (r *TeamInviteRepository) ListByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.TeamInvite, error) {
	var invites []models.TeamInvite
	err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("created_at DESC").Find(&invites).Error
	return invites, err
}
