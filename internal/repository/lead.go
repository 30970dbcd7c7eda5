package repository

import (
	"context"

	"lead-dashboard-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LeadRepository moves lead ownership between users and teams
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// AssignUnownedToTeam tags every team-less lead of userID with teamID
func (r *LeadRepository) AssignUnownedToTeam(ctx context.Context, userID, teamID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Lead{}).
		Where("user_id = ? AND team_id IS NULL", userID).
		UpdateColumn("team_id", teamID)
	return res.RowsAffected, res.Error
}

// ReleaseFromTeam reverts the leads userID holds in teamID to private
func (r *LeadRepository) ReleaseFromTeam(ctx context.Context, userID, teamID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Lead{}).
		Where("user_id = ? AND team_id = ?", userID, teamID).
		UpdateColumn("team_id", gorm.Expr("NULL"))
	return res.RowsAffected, res.Error
}

// ReleaseOrphaned reverts leads whose owner no longer belongs to the lead's team
func (r *LeadRepository) ReleaseOrphaned(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Lead{}).
		Where("team_id IS NOT NULL AND NOT EXISTS (SELECT 1 FROM team_members m WHERE m.user_id = leads.user_id AND m.team_id = leads.team_id)").
		UpdateColumn("team_id", gorm.Expr("NULL"))
	return res.RowsAffected, res.Error
}
