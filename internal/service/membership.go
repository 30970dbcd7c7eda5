package service

import (
	"context"
	"errors"
	"fmt"

	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/logger"
	"lead-dashboard-backend/internal/metrics"
	"lead-dashboard-backend/internal/repository"
	"lead-dashboard-backend/internal/roles"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipService removes and re-roles team members. It is the only writer
// of existing membership rows.
type MembershipService struct {
	store   repository.StoreInterface
	gate    *AuthorizationGate
	metrics *metrics.Metrics
}

// NewMembershipService creates a new membership service
func NewMembershipService(store repository.StoreInterface, m *metrics.Metrics) *MembershipService {
	return &MembershipService{
		store:   store,
		gate:    NewAuthorizationGate(store),
		metrics: m,
	}
}

// RemoveMember deletes a member of the actor's team and reverts that member's
// team leads to private. Owners cannot be removed.
func (s *MembershipService) RemoveMember(ctx context.Context, actorID, memberID uuid.UUID) error {
	err := s.removeMember(ctx, actorID, memberID)
	s.metrics.RecordOperation("remove_member", err)
	return err
}

func (s *MembershipService) removeMember(ctx context.Context, actorID, memberID uuid.UUID) error {
	target, err := s.loadManagedTarget(ctx, actorID, memberID)
	if err != nil {
		return err
	}

	var released int64
	err = s.store.WithinTransaction(ctx, func(tx repository.StoreInterface) error {
		if err := tx.Members().Delete(ctx, target.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrMemberNotFound
			}
			return fmt.Errorf("failed to delete team member: %w", err)
		}

		released, err = tx.Leads().ReleaseFromTeam(ctx, target.UserID, target.TeamID)
		if err != nil {
			return fmt.Errorf("failed to release member leads: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.metrics.AddLeadsReassigned("member_removed", released)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":        target.TeamID,
		"member_id":      target.ID,
		"member_user":    target.UserID,
		"leads_released": released,
	}).Info("team member removed")

	return nil
}

// ChangeRole sets the role of a member of the actor's team. The owner's role is
// fixed and the owner role cannot be handed out.
func (s *MembershipService) ChangeRole(ctx context.Context, actorID, memberID uuid.UUID, role string) error {
	err := s.changeRole(ctx, actorID, memberID, role)
	s.metrics.RecordOperation("change_role", err)
	return err
}

func (s *MembershipService) changeRole(ctx context.Context, actorID, memberID uuid.UUID, token string) error {
	role := roles.Normalize(token)
	if role == roles.None {
		return apperrors.ErrInvalidRole
	}

	target, err := s.loadManagedTarget(ctx, actorID, memberID)
	if err != nil {
		return err
	}
	if role == roles.Owner {
		return apperrors.ErrOwnerNotGrantable
	}

	if err := s.store.Members().UpdateRole(ctx, target.ID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("failed to update member role: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":   target.TeamID,
		"member_id": target.ID,
		"from":      target.NormalizedRole().String(),
		"to":        role.String(),
	}).Info("team member role changed")

	return nil
}

// loadManagedTarget applies the checks shared by every member mutation: the actor
// manages a team, the member exists, sits in that team and is not the owner.
func (s *MembershipService) loadManagedTarget(ctx context.Context, actorID, memberID uuid.UUID) (*models.TeamMember, error) {
	actor, err := s.gate.RequireManager(ctx, actorID)
	if err != nil {
		return nil, err
	}

	target, err := s.store.Members().GetByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to load team member: %w", err)
	}

	if err := RequireSameTeam(actor, target.TeamID); err != nil {
		return nil, err
	}
	if target.NormalizedRole() == roles.Owner {
		return nil, apperrors.ErrOwnerImmutable
	}
	return target, nil
}
