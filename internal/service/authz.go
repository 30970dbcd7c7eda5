package service

import (
	"context"
	"errors"
	"fmt"

	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/repository"
	"lead-dashboard-backend/internal/roles"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthorizationGate resolves a caller's primary team and role and checks it
// against what an operation requires
type AuthorizationGate struct {
	store repository.StoreInterface
}

// NewAuthorizationGate creates a gate reading memberships from store
func NewAuthorizationGate(store repository.StoreInterface) *AuthorizationGate {
	return &AuthorizationGate{store: store}
}

// PrimaryMembership returns the user's earliest membership, or nil if the user has none
func (g *AuthorizationGate) PrimaryMembership(ctx context.Context, userID uuid.UUID) (*models.TeamMember, error) {
	return primaryMembership(ctx, g.store.Members(), userID)
}

// RequireMember returns the caller's membership or ErrNotTeamMember
func (g *AuthorizationGate) RequireMember(ctx context.Context, userID uuid.UUID) (*models.TeamMember, error) {
	member, err := g.PrimaryMembership(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member == nil || !member.NormalizedRole().IsValid() {
		return nil, apperrors.ErrNotTeamMember
	}
	return member, nil
}

// RequireManager returns the caller's membership if its role is admin or above
func (g *AuthorizationGate) RequireManager(ctx context.Context, userID uuid.UUID) (*models.TeamMember, error) {
	member, err := g.RequireMember(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !member.NormalizedRole().AtLeast(roles.Admin) {
		return nil, apperrors.ErrNotTeamManager
	}
	return member, nil
}

// RequireSameTeam rejects targets outside the actor's team
func RequireSameTeam(actor *models.TeamMember, teamID uuid.UUID) error {
	if actor.TeamID != teamID {
		return apperrors.ErrCrossTeam
	}
	return nil
}

func primaryMembership(ctx context.Context, members repository.TeamMemberRepositoryInterface, userID uuid.UUID) (*models.TeamMember, error) {
	member, err := members.GetPrimaryByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve team membership: %w", err)
	}
	return member, nil
}
