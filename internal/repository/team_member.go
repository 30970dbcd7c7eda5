package repository

import (
	"context"

	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/roles"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamMemberRepository handles database operations for team memberships
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// Create inserts a membership. A second membership for the same user returns ErrAlreadyMember.
func (r *TeamMemberRepository) Create(ctx context.Context, member *models.TeamMember) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if isUniqueViolation(err, constraintMemberUser) {
		return apperrors.ErrAlreadyMember
	}
	return err
}

// Upsert inserts a membership or updates the role of the user's existing row in the same team.
// If the user's existing row belongs to another team nothing is written and ErrAlreadyMember is returned.
func (r *TeamMemberRepository) Upsert(ctx context.Context, member *models.TeamMember) error {
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
		Where: clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "team_members.team_id = excluded.team_id"},
		}},
	}).Create(member)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrAlreadyMember
	}
	return nil
}

// GetByID retrieves a membership by ID
func (r *TeamMemberRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.WithContext(ctx).First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetPrimaryByUserID retrieves the user's earliest membership together with its team
func (r *TeamMemberRepository) GetPrimaryByUserID(ctx context.Context, userID uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListByTeamID retrieves all members of a team in join order
func (r *TeamMemberRepository) ListByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.WithContext(ctx).Where("team_id = ?", teamID).Order("created_at ASC").Find(&members).Error
	return members, err
}

// UpdateRole sets the role of a membership
func (r *TeamMemberRepository) UpdateRole(ctx context.Context, id uuid.UUID, role roles.Role) error {
	res := r.db.WithContext(ctx).Model(&models.TeamMember{}).Where("id = ?", id).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes a membership
func (r *TeamMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.TeamMember{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
