package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	CreateTeam(ctx context.Context, userID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error)
	GetOverview(ctx context.Context, userID uuid.UUID) (*TeamOverviewResponse, error)
}

// MembershipServiceInterface defines the interface for membership mutations
type MembershipServiceInterface interface {
	RemoveMember(ctx context.Context, actorID, memberID uuid.UUID) error
	ChangeRole(ctx context.Context, actorID, memberID uuid.UUID, role string) error
}

// JoinRequestServiceInterface defines the interface for the join request workflow
type JoinRequestServiceInterface interface {
	SubmitRequest(ctx context.Context, userID uuid.UUID, req *SubmitJoinRequest) (*TeamRequestResponse, error)
	ApproveRequest(ctx context.Context, actorID, requestID uuid.UUID) error
	RejectRequest(ctx context.Context, actorID, requestID uuid.UUID) error
}
