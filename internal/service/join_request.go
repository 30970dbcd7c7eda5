package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/logger"
	"lead-dashboard-backend/internal/metrics"
	"lead-dashboard-backend/internal/repository"
	"lead-dashboard-backend/internal/roles"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// roleMarker matches the role:<token> marker a join request note may carry
var roleMarker = regexp.MustCompile(`(?i)\brole:\s*([a-z]+)`)

// ParseRequestedRole extracts the role a join request asks for from its note.
// Missing, unknown and owner tokens fall back to editor.
func ParseRequestedRole(note string) roles.Role {
	m := roleMarker.FindStringSubmatch(note)
	if m == nil {
		return roles.Editor
	}
	role := roles.Normalize(m[1])
	if role == roles.None || role == roles.Owner {
		return roles.Editor
	}
	return role
}

// EncodeRequestNote prefixes note with a role:<role> marker
func EncodeRequestNote(role roles.Role, note string) string {
	note = strings.TrimSpace(note)
	if role == roles.None {
		return note
	}
	if note == "" {
		return "role:" + string(role)
	}
	return "role:" + string(role) + " " + note
}

// SubmitJoinRequest represents the request to join a team by invite code
type SubmitJoinRequest struct {
	InviteCode string `json:"inviteCode" validate:"required,numeric,min=3,max=12" example:"48213"`
	Role       string `json:"role,omitempty" validate:"omitempty,max=20" example:"viewer"`
	Note       string `json:"note,omitempty" validate:"max=400"`
}

// JoinRequestService runs the pending -> approved | rejected workflow
type JoinRequestService struct {
	store     repository.StoreInterface
	gate      *AuthorizationGate
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewJoinRequestService creates a new join request service
func NewJoinRequestService(store repository.StoreInterface, m *metrics.Metrics, validator *validator.Validate) *JoinRequestService {
	return &JoinRequestService{
		store:     store,
		gate:      NewAuthorizationGate(store),
		metrics:   m,
		validator: validator,
	}
}

// SubmitRequest files a pending request from a user without a team to the team
// holding the invite code
func (s *JoinRequestService) SubmitRequest(ctx context.Context, userID uuid.UUID, req *SubmitJoinRequest) (*TeamRequestResponse, error) {
	request, err := s.submitRequest(ctx, userID, req)
	s.metrics.RecordOperation("submit_request", err)
	if err != nil {
		return nil, err
	}
	return toTeamRequestResponse(request), nil
}

func (s *JoinRequestService) submitRequest(ctx context.Context, userID uuid.UUID, req *SubmitJoinRequest) (*models.TeamRequest, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("inviteCode", "is required")
	}
	req.InviteCode = strings.TrimSpace(req.InviteCode)
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	role := roles.Editor
	if req.Role != "" {
		role = roles.Normalize(req.Role)
		if role == roles.None {
			return nil, apperrors.ErrInvalidRole
		}
		if role == roles.Owner {
			return nil, apperrors.ErrOwnerNotGrantable
		}
	}

	existing, err := s.gate.PrimaryMembership(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrAlreadyMember
	}

	team, err := s.store.Teams().GetByInviteCode(ctx, req.InviteCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInviteCodeNotFound
		}
		return nil, fmt.Errorf("failed to resolve invite code: %w", err)
	}

	pending, err := s.store.Requests().HasPending(ctx, team.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending requests: %w", err)
	}
	if pending {
		return nil, apperrors.ErrPendingRequest
	}

	request := &models.TeamRequest{
		TeamID: team.ID,
		UserID: userID,
		Note:   EncodeRequestNote(role, req.Note),
		Status: models.RequestStatusPending,
	}
	if err := s.store.Requests().Create(ctx, request); err != nil {
		if errors.Is(err, apperrors.ErrPendingRequest) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create team request: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":    team.ID,
		"request_id": request.ID,
		"role":       role.String(),
	}).Info("team request submitted")

	return request, nil
}

// ApproveRequest accepts a pending request: the requester becomes a member with
// the requested role, the request is marked approved and the requester's
// team-less leads move into the team, atomically
func (s *JoinRequestService) ApproveRequest(ctx context.Context, actorID, requestID uuid.UUID) error {
	err := s.approveRequest(ctx, actorID, requestID)
	s.metrics.RecordOperation("approve_request", err)
	return err
}

func (s *JoinRequestService) approveRequest(ctx context.Context, actorID, requestID uuid.UUID) error {
	request, err := s.loadPendingRequest(ctx, actorID, requestID)
	if err != nil {
		return err
	}
	role := ParseRequestedRole(request.Note)

	existing, err := s.gate.PrimaryMembership(ctx, request.UserID)
	if err != nil {
		return err
	}
	if existing != nil {
		if existing.TeamID != request.TeamID {
			return apperrors.ErrAlreadyMember
		}
		if existing.NormalizedRole() == roles.Owner {
			return apperrors.ErrOwnerImmutable
		}
		// a stale request never demotes
		if existing.NormalizedRole().AtLeast(role) {
			role = existing.NormalizedRole()
		}
	}

	var assigned int64
	err = s.store.WithinTransaction(ctx, func(tx repository.StoreInterface) error {
		if err := tx.Requests().TransitionStatus(ctx, request.ID, models.RequestStatusPending, models.RequestStatusApproved); err != nil {
			return err
		}

		member := &models.TeamMember{TeamID: request.TeamID, UserID: request.UserID, Role: role}
		if err := tx.Members().Upsert(ctx, member); err != nil {
			return err
		}

		assigned, err = tx.Leads().AssignUnownedToTeam(ctx, request.UserID, request.TeamID)
		if err != nil {
			return fmt.Errorf("failed to assign leads to team: %w", err)
		}
		return nil
	})
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInternal {
			return fmt.Errorf("failed to approve team request: %w", err)
		}
		return err
	}

	s.metrics.AddLeadsReassigned("request_approved", assigned)
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":        request.TeamID,
		"request_id":     request.ID,
		"requester":      request.UserID,
		"role":           role.String(),
		"leads_assigned": assigned,
	}).Info("team request approved")

	return nil
}

// RejectRequest marks a pending request rejected. Nothing else changes.
func (s *JoinRequestService) RejectRequest(ctx context.Context, actorID, requestID uuid.UUID) error {
	err := s.rejectRequest(ctx, actorID, requestID)
	s.metrics.RecordOperation("reject_request", err)
	return err
}

func (s *JoinRequestService) rejectRequest(ctx context.Context, actorID, requestID uuid.UUID) error {
	request, err := s.loadPendingRequest(ctx, actorID, requestID)
	if err != nil {
		return err
	}

	err = s.store.Requests().TransitionStatus(ctx, request.ID, models.RequestStatusPending, models.RequestStatusRejected)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindInternal {
			return fmt.Errorf("failed to reject team request: %w", err)
		}
		return err
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"team_id":    request.TeamID,
		"request_id": request.ID,
	}).Info("team request rejected")

	return nil
}

// loadPendingRequest applies the checks shared by approve and reject
func (s *JoinRequestService) loadPendingRequest(ctx context.Context, actorID, requestID uuid.UUID) (*models.TeamRequest, error) {
	actor, err := s.gate.RequireManager(ctx, actorID)
	if err != nil {
		return nil, err
	}

	request, err := s.store.Requests().GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamRequestNotFound
		}
		return nil, fmt.Errorf("failed to load team request: %w", err)
	}

	if err := RequireSameTeam(actor, request.TeamID); err != nil {
		return nil, err
	}
	if request.Status.IsTerminal() {
		return nil, apperrors.ErrRequestNotPending
	}
	return request, nil
}
