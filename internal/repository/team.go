package repository

import (
	"context"

	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team. A collision on the invite code returns ErrInviteCodeTaken.
func (r *TeamRepository) Create(ctx context.Context, team *models.Team) error {
	err := r.db.WithContext(ctx).Create(team).Error
	if isUniqueViolation(err, constraintTeamInviteCode) {
		return apperrors.ErrInviteCodeTaken
	}
	return err
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByInviteCode retrieves the team holding an invite code
func (r *TeamRepository) GetByInviteCode(ctx context.Context, code string) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).First(&team, "invite_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// InviteCodeExists checks if any team already holds code
func (r *TeamRepository) InviteCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Team{}).Where("invite_code = ?", code).Count(&count).Error
	return count > 0, err
}
