package testutils

import (
	"fmt"
	"time"

	"lead-dashboard-backend/internal/database/models"
	"lead-dashboard-backend/internal/roles"

	"github.com/google/uuid"
)

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct {
	seq int
}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a distinct invite code per call
func (f *TeamFactory) Create() *models.Team {
	f.seq++
	return &models.Team{
		BaseModel:  newBase(),
		OwnerID:    uuid.New(),
		Name:       "Test Team",
		InviteCode: fmt.Sprintf("%05d", 10000+f.seq),
	}
}

// WithOwner sets the owner of the team
func (f *TeamFactory) WithOwner(ownerID uuid.UUID) *models.Team {
	team := f.Create()
	team.OwnerID = ownerID
	return team
}

// WithInviteCode sets a fixed invite code
func (f *TeamFactory) WithInviteCode(code string) *models.Team {
	team := f.Create()
	team.InviteCode = code
	return team
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates an editor membership in teamID
func (f *TeamMemberFactory) Create(teamID uuid.UUID) *models.TeamMember {
	return &models.TeamMember{
		BaseModel: newBase(),
		TeamID:    teamID,
		UserID:    uuid.New(),
		Role:      roles.Editor,
	}
}

// WithRole creates a membership in teamID with the given role
func (f *TeamMemberFactory) WithRole(teamID uuid.UUID, role roles.Role) *models.TeamMember {
	member := f.Create(teamID)
	member.Role = role
	return member
}

// Owner creates the owner membership for team
func (f *TeamMemberFactory) Owner(team *models.Team) *models.TeamMember {
	member := f.WithRole(team.ID, roles.Owner)
	member.UserID = team.OwnerID
	return member
}

// TeamRequestFactory provides methods to create test TeamRequest data
type TeamRequestFactory struct{}

// NewTeamRequestFactory creates a new TeamRequestFactory
func NewTeamRequestFactory() *TeamRequestFactory {
	return &TeamRequestFactory{}
}

// Create creates a pending request with no role marker
func (f *TeamRequestFactory) Create(teamID uuid.UUID) *models.TeamRequest {
	return &models.TeamRequest{
		BaseModel: newBase(),
		TeamID:    teamID,
		UserID:    uuid.New(),
		Status:    models.RequestStatusPending,
	}
}

// WithRole creates a pending request asking for role
func (f *TeamRequestFactory) WithRole(teamID uuid.UUID, role roles.Role) *models.TeamRequest {
	req := f.Create(teamID)
	req.Note = "role:" + string(role)
	return req
}

// WithStatus creates a request in the given status
func (f *TeamRequestFactory) WithStatus(teamID uuid.UUID, status models.RequestStatus) *models.TeamRequest {
	req := f.Create(teamID)
	req.Status = status
	return req
}

// TeamInviteFactory provides methods to create test TeamInvite data
type TeamInviteFactory struct{}

// NewTeamInviteFactory creates a new TeamInviteFactory
func NewTeamInviteFactory() *TeamInviteFactory {
	return &TeamInviteFactory{}
}

// Create creates a pending editor invitation expiring in a week
func (f *TeamInviteFactory) Create(teamID uuid.UUID) *models.TeamInvite {
	expires := time.Now().Add(7 * 24 * time.Hour)
	return &models.TeamInvite{
		BaseModel: newBase(),
		TeamID:    teamID,
		Email:     "invitee@example.com",
		Role:      roles.Editor,
		Token:     uuid.NewString(),
		Status:    models.InviteStatusPending,
		ExpiresAt: &expires,
	}
}

// LeadFactory provides methods to create test Lead data
type LeadFactory struct{}

// NewLeadFactory creates a new LeadFactory
func NewLeadFactory() *LeadFactory {
	return &LeadFactory{}
}

// Create creates an unassigned lead owned by userID
func (f *LeadFactory) Create(userID uuid.UUID) *models.Lead {
	return &models.Lead{
		BaseModel:    newBase(),
		UserID:       userID,
		BusinessName: "Test Business",
		ContactName:  "Test Contact",
		Email:        "contact@business.example",
		Category:     "retail",
	}
}

// InTeam creates a lead owned by userID tagged with teamID
func (f *LeadFactory) InTeam(userID, teamID uuid.UUID) *models.Lead {
	lead := f.Create(userID)
	lead.TeamID = &teamID
	return lead
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a profile for userID
func (f *ProfileFactory) Create(userID uuid.UUID) *models.Profile {
	return &models.Profile{
		BaseModel: newBase(),
		UserID:    userID,
		FullName:  "Test User",
		Email:     userID.String()[:8] + "@example.com",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team    *TeamFactory
	Member  *TeamMemberFactory
	Request *TeamRequestFactory
	Invite  *TeamInviteFactory
	Lead    *LeadFactory
	Profile *ProfileFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:    NewTeamFactory(),
		Member:  NewTeamMemberFactory(),
		Request: NewTeamRequestFactory(),
		Invite:  NewTeamInviteFactory(),
		Lead:    NewLeadFactory(),
		Profile: NewProfileFactory(),
	}
}

// TeamWithOwner creates a team and its owner membership
func (fs *FactorySet) TeamWithOwner() (*models.Team, *models.TeamMember) {
	team := fs.Team.Create()
	return team, fs.Member.Owner(team)
}
