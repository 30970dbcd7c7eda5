package repository

import (
	"context"

	"lead-dashboard-backend/internal/database/models"
	"lead-dashboard-backend/internal/roles"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Team, error)
	GetByInviteCode(ctx context.Context, code string) (*models.Team, error)
	InviteCodeExists(ctx context.Context, code string) (bool, error)
}

// TeamMemberRepositoryInterface defines the interface for team membership operations
type TeamMemberRepositoryInterface interface {
	Create(ctx context.Context, member *models.TeamMember) error
	Upsert(ctx context.Context, member *models.TeamMember) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TeamMember, error)
	GetPrimaryByUserID(ctx context.Context, userID uuid.UUID) (*models.TeamMember, error)
	ListByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.TeamMember, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role roles.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TeamInviteRepositoryInterface defines the interface for team invite operations
type TeamInviteRepositoryInterface interface {
	ListByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.TeamInvite, error)
}

// TeamRequestRepositoryInterface defines the interface for join request operations
type TeamRequestRepositoryInterface interface {
	Create(ctx context.Context, request *models.TeamRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TeamRequest, error)
	ListPendingByTeamID(ctx context.Context, teamID uuid.UUID) ([]models.TeamRequest, error)
	HasPending(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.RequestStatus) error
}

// LeadRepositoryInterface defines the lead ownership operations driven by membership changes
type LeadRepositoryInterface interface {
	AssignUnownedToTeam(ctx context.Context, userID, teamID uuid.UUID) (int64, error)
	ReleaseFromTeam(ctx context.Context, userID, teamID uuid.UUID) (int64, error)
	ReleaseOrphaned(ctx context.Context) (int64, error)
}

// ProfileRepositoryInterface defines the interface for profile lookups
type ProfileRepositoryInterface interface {
	GetByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]models.Profile, error)
}

// StoreInterface groups the repositories and runs multi-step effects atomically
type StoreInterface interface {
	Teams() TeamRepositoryInterface
	Members() TeamMemberRepositoryInterface
	Invites() TeamInviteRepositoryInterface
	Requests() TeamRequestRepositoryInterface
	Leads() LeadRepositoryInterface
	Profiles() ProfileRepositoryInterface
	WithinTransaction(ctx context.Context, fn func(tx StoreInterface) error) error
}
