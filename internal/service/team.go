package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/logger"
	"lead-dashboard-backend/internal/metrics"
	"lead-dashboard-backend/internal/profiles"
	"lead-dashboard-backend/internal/repository"
	"lead-dashboard-backend/internal/roles"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// TeamConfig holds the team registry settings
type TeamConfig struct {
	DefaultName    string
	InsertAttempts int
}

// TeamService creates teams and assembles the team overview
type TeamService struct {
	store     repository.StoreInterface
	gate      *AuthorizationGate
	codes     *InviteCodeGenerator
	directory profiles.Directory
	metrics   *metrics.Metrics
	validator *validator.Validate
	cfg       TeamConfig
}

// NewTeamService creates a new team service
func NewTeamService(store repository.StoreInterface, codes *InviteCodeGenerator, directory profiles.Directory, m *metrics.Metrics, validator *validator.Validate, cfg TeamConfig) *TeamService {
	if cfg.DefaultName == "" {
		cfg.DefaultName = "My Team"
	}
	if cfg.InsertAttempts < 1 {
		cfg.InsertAttempts = 1
	}
	return &TeamService{
		store:     store,
		gate:      NewAuthorizationGate(store),
		codes:     codes,
		directory: directory,
		metrics:   m,
		validator: validator,
		cfg:       cfg,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name string `json:"name" validate:"max=100" example:"Acme"`
}

// TeamResponse represents the response for team operations
type TeamResponse struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"ownerId"`
	Name       string    `json:"name"`
	InviteCode string    `json:"inviteCode" example:"48213"`
	CreatedAt  string    `json:"createdAt"`
}

// MemberResponse is a team member decorated with profile details
type MemberResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Role        roles.Role `json:"role" swaggertype:"string" example:"editor"`
	DisplayName string     `json:"displayName,omitempty"`
	Email       string     `json:"email,omitempty"`
	JoinedAt    string     `json:"joinedAt"`
}

// InviteResponse is an outstanding invitation
type InviteResponse struct {
	ID        uuid.UUID           `json:"id"`
	Email     string              `json:"email"`
	Role      roles.Role          `json:"role" swaggertype:"string" example:"viewer"`
	Status    models.InviteStatus `json:"status" swaggertype:"string" example:"pending"`
	CreatedAt string              `json:"createdAt"`
	ExpiresAt *string             `json:"expiresAt,omitempty"`
}

// TeamRequestResponse is a join request with the role it asks for
type TeamRequestResponse struct {
	ID            uuid.UUID            `json:"id"`
	TeamID        uuid.UUID            `json:"teamId"`
	UserID        uuid.UUID            `json:"userId"`
	DisplayName   string               `json:"displayName,omitempty"`
	Email         string               `json:"email,omitempty"`
	Note          string               `json:"note"`
	RequestedRole roles.Role           `json:"requestedRole" swaggertype:"string" example:"editor"`
	Status        models.RequestStatus `json:"status" swaggertype:"string" example:"pending"`
	CreatedAt     string               `json:"createdAt"`
}

// TeamOverviewResponse is the caller's team as seen by the caller. Team is nil
// and the lists are empty when the caller belongs to no team.
type TeamOverviewResponse struct {
	Team         *TeamResponse         `json:"team"`
	Role         string                `json:"role" example:"owner"`
	Capabilities roles.Capabilities    `json:"capabilities"`
	Members      []MemberResponse      `json:"members"`
	Invites      []InviteResponse      `json:"invites"`
	Requests     []TeamRequestResponse `json:"requests"`
}

// CreateTeam creates a team owned by userID, makes userID its owner member and
// moves the owner's team-less leads into it, all in one transaction
func (s *TeamService) CreateTeam(ctx context.Context, userID uuid.UUID, req *CreateTeamRequest) (*TeamResponse, error) {
	team, err := s.createTeam(ctx, userID, req)
	s.metrics.RecordOperation("create_team", err)
	if err != nil {
		return nil, err
	}
	return toTeamResponse(team), nil
}

func (s *TeamService) createTeam(ctx context.Context, userID uuid.UUID, req *CreateTeamRequest) (*models.Team, error) {
	log := logger.WithContext(ctx)

	if req == nil {
		req = &CreateTeamRequest{}
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", err.Error())
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = s.cfg.DefaultName
	}

	existing, err := s.gate.PrimaryMembership(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyMember
	}

	var (
		team     *models.Team
		assigned int64
	)
	for attempt := 1; attempt <= s.cfg.InsertAttempts; attempt++ {
		err = s.store.WithinTransaction(ctx, func(tx repository.StoreInterface) error {
			code, err := s.codes.Generate(ctx, tx.Teams())
			if err != nil {
				return err
			}

			team = &models.Team{OwnerID: userID, Name: name, InviteCode: code}
			if err := tx.Teams().Create(ctx, team); err != nil {
				return err
			}

			owner := &models.TeamMember{TeamID: team.ID, UserID: userID, Role: roles.Owner}
			if err := tx.Members().Create(ctx, owner); err != nil {
				return err
			}

			assigned, err = tx.Leads().AssignUnownedToTeam(ctx, userID, team.ID)
			if err != nil {
				return fmt.Errorf("failed to assign leads to team: %w", err)
			}
			return nil
		})
		if !errors.Is(err, apperrors.ErrInviteCodeTaken) {
			break
		}
		log.WithField("attempt", attempt).Warn("invite code taken concurrently, regenerating")
	}
	if errors.Is(err, apperrors.ErrInviteCodeTaken) {
		return nil, apperrors.NewResourceExhaustedError(inviteCodeResource, s.cfg.InsertAttempts)
	}
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInternal {
			return nil, fmt.Errorf("failed to create team: %w", err)
		}
		return nil, err
	}

	s.metrics.AddLeadsReassigned("team_created", assigned)
	log.WithFields(map[string]interface{}{
		"team_id":        team.ID,
		"leads_assigned": assigned,
	}).Info("team created")

	return team, nil
}

// GetPrimaryTeam returns the user's team and normalized role, or nil and None
func (s *TeamService) GetPrimaryTeam(ctx context.Context, userID uuid.UUID) (*models.Team, roles.Role, error) {
	member, err := s.gate.PrimaryMembership(ctx, userID)
	if err != nil || member == nil {
		return nil, roles.None, err
	}

	team := member.Team
	if team == nil {
		team, err = s.store.Teams().GetByID(ctx, member.TeamID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, roles.None, apperrors.ErrTeamNotFound
		}
		if err != nil {
			return nil, roles.None, fmt.Errorf("failed to load team: %w", err)
		}
	}
	return team, member.NormalizedRole(), nil
}

// GetOverview returns the caller's team with its members, invites and pending
// requests. Profile lookups only decorate the result and never fail it.
func (s *TeamService) GetOverview(ctx context.Context, userID uuid.UUID) (*TeamOverviewResponse, error) {
	team, role, err := s.GetPrimaryTeam(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := &TeamOverviewResponse{
		Role:         role.String(),
		Capabilities: roles.CapabilitiesFor(role),
		Members:      []MemberResponse{},
		Invites:      []InviteResponse{},
		Requests:     []TeamRequestResponse{},
	}
	if team == nil {
		return overview, nil
	}
	overview.Team = toTeamResponse(team)

	var (
		members  []models.TeamMember
		invites  []models.TeamInvite
		requests []models.TeamRequest
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = s.store.Members().ListByTeamID(gctx, team.ID)
		return err
	})
	g.Go(func() error {
		var err error
		invites, err = s.store.Invites().ListByTeamID(gctx, team.ID)
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = s.store.Requests().ListPendingByTeamID(gctx, team.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load team overview: %w", err)
	}

	userIDs := make([]uuid.UUID, 0, len(members)+len(requests))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}
	for _, r := range requests {
		userIDs = append(userIDs, r.UserID)
	}
	found := s.lookupProfiles(ctx, userIDs)

	for _, m := range members {
		p := found[m.UserID]
		overview.Members = append(overview.Members, MemberResponse{
			ID:          m.ID,
			UserID:      m.UserID,
			Role:        m.NormalizedRole(),
			DisplayName: p.DisplayName(),
			Email:       p.Email,
			JoinedAt:    m.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, inv := range invites {
		overview.Invites = append(overview.Invites, toInviteResponse(inv))
	}
	for _, r := range requests {
		resp := toTeamRequestResponse(&r)
		p := found[r.UserID]
		resp.DisplayName = p.DisplayName()
		resp.Email = p.Email
		overview.Requests = append(overview.Requests, *resp)
	}

	return overview, nil
}

func (s *TeamService) lookupProfiles(ctx context.Context, userIDs []uuid.UUID) map[uuid.UUID]profiles.Profile {
	if s.directory == nil || len(userIDs) == 0 {
		return map[uuid.UUID]profiles.Profile{}
	}
	found, err := s.directory.Lookup(ctx, userIDs)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("profile lookup failed, listing without display names")
		return map[uuid.UUID]profiles.Profile{}
	}
	return found
}

func toTeamResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:         team.ID,
		OwnerID:    team.OwnerID,
		Name:       team.Name,
		InviteCode: team.InviteCode,
		CreatedAt:  team.CreatedAt.Format(time.RFC3339),
	}
}

func toInviteResponse(inv models.TeamInvite) InviteResponse {
	resp := InviteResponse{
		ID:        inv.ID,
		Email:     inv.Email,
		Role:      roles.Normalize(string(inv.Role)),
		Status:    inv.Status,
		CreatedAt: inv.CreatedAt.Format(time.RFC3339),
	}
	if inv.ExpiresAt != nil {
		expires := inv.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &expires
	}
	return resp
}

func toTeamRequestResponse(r *models.TeamRequest) *TeamRequestResponse {
	return &TeamRequestResponse{
		ID:            r.ID,
		TeamID:        r.TeamID,
		UserID:        r.UserID,
		Note:          r.Note,
		RequestedRole: ParseRequestedRole(r.Note),
		Status:        r.Status,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}
