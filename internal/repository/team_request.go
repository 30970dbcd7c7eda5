package repository

import (
	"context"

	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRequestRepository handles database operations for join requests
type TeamRequestRepository struct {
	db *gorm.DB
}

// NewTeamRequestRepository creates a new team request repository
func NewTeamRequestRepository(db *gorm.DB) *TeamRequestRepository {
	return &TeamRequestRepository{db: db}
}

// Create creates a new join request. A second pending request for the same
// team and user fails with ErrPendingRequest.
func (r *TeamRequestRepository) Create(ctx context.Context, request *models.TeamRequest) error {
	err := r.db.WithContext(ctx).Create(request).Error
	if isUniqueViolation(err, constraintPendingRequest) {
		return apperrors.ErrPendingRequest
	}
	return err
}

// GetByID retrieves a join request by ID
func (r *TeamRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TeamRequest, error) {
	var request models.TeamRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// ListPendingByTeamID retrieves a team's pending requests, oldest first
func (r *TeamRequestRepository) ListPendingByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.TeamRequest, error) {
	var requests []models.TeamRequest
	err := r.db.WithContext(ctx).
		Where("team_id = ? AND status = ?", teamID, models.RequestStatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

// HasPending checks whether userID already has a pending request for teamID
func (r *TeamRequestRepository) HasPending(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TeamRequest{}).
		Where("team_id = ? AND user_id = ? AND status = ?", teamID, userID, models.RequestStatusPending).
		Count(&count).Error
	return count > 0, err
}

// TransitionStatus moves a request from one status to another. The update only matches
// rows still in the from status, so of two concurrent transitions exactly one succeeds;
// the other gets ErrRequestNotPending.
func (r *TeamRequestRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.RequestStatus) error {
	if !from.CanTransitionTo(to) {
		return apperrors.ErrRequestNotPending
	}
	res := r.db.WithContext(ctx).Model(&models.TeamRequest{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrRequestNotPending
	}
	return nil
}
