package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"lead-dashboard-backend/internal/auth"
	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team membership operations
type TeamHandler struct {
	teamService        service.TeamServiceInterface
	membershipService  service.MembershipServiceInterface
	joinRequestService service.JoinRequestServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface, membershipService service.MembershipServiceInterface, joinRequestService service.JoinRequestServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService:        teamService,
		membershipService:  membershipService,
		joinRequestService: joinRequestService,
	}
}

// MemberTargetRequest identifies a team member row
type MemberTargetRequest struct {
	MemberID string `json:"memberId" binding:"required" example:"3f1c2a8e-9d4b-4c1e-8f00-1a2b3c4d5e6f"`
}

// ChangeRoleRequest carries the member row and the role to assign
type ChangeRoleRequest struct {
	MemberID string `json:"memberId" binding:"required" example:"3f1c2a8e-9d4b-4c1e-8f00-1a2b3c4d5e6f"`
	Role     string `json:"role" binding:"required" example:"viewer"`
}

// RequestTargetRequest identifies a join request
type RequestTargetRequest struct {
	RequestID string `json:"requestId" binding:"required" example:"7a6b5c4d-3e2f-4a1b-9c8d-7e6f5a4b3c2d"`
}

// CreateTeam handles POST /team
// @Summary Create a team
// @Description Create a team owned by the caller. The caller's unassigned leads move into the new team.
// @Tags team
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest false "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request or caller already in a team"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 503 {object} ErrorResponse "Invite code space exhausted"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredential)
		return
	}

	// the body is optional
	var req service.CreateTeamRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBadRequest(c, err.Error())
			return
		}
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetOverview handles GET /team
// @Summary Get the caller's team overview
// @Description Team, role, capabilities, members, invitations and pending join requests of the caller's primary team
// @Tags team
// @Produce json
// @Success 200 {object} service.TeamOverviewResponse "Team overview"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team [get]
func (h *TeamHandler) GetOverview(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredential)
		return
	}

	overview, err := h.teamService.GetOverview(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, overview)
}

// RemoveMember handles POST /team/members/remove
// @Summary Remove a team member
// @Description Remove a member from the caller's team. The member's leads in the team become unassigned.
// @Tags team
// @Accept json
// @Produce json
// @Param body body MemberTargetRequest true "Member to remove"
// @Success 200 {object} OKResponse "Member removed"
// @Failure 400 {object} ErrorResponse "Invalid request or owner targeted"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Caller is not a manager of the member's team"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team/members/remove [post]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredential)
		return
	}

	var req MemberTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		respondBadRequest(c, "invalid member ID")
		return
	}

	if err := h.membershipService.RemoveMember(c.Request.Context(), userID, memberID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// ChangeRole handles POST /team/members/role
// @Summary Change a member's role
// @Description Assign admin, editor or viewer to a member of the caller's team
// @Tags team
// @Accept json
// @Produce json
// @Param body body ChangeRoleRequest true "Member and new role"
// @Success 200 {object} OKResponse "Role changed"
// @Failure 400 {object} ErrorResponse "Invalid role or owner targeted"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Caller is not a manager of the member's team"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team/members/role [post]
func (h *TeamHandler) ChangeRole(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredential)
		return
	}

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		respondBadRequest(c, "invalid member ID")
		return
	}

	if err := h.membershipService.ChangeRole(c.Request.Context(), userID, memberID, req.Role); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OKResponse{OK: true})
}

// SubmitRequest handles POST /team/requests
// @Summary Ask to join a team
// @Description Submit a join request for the team owning the invite code
// @Tags team
// @Accept json
// @Produce json
// @Param body body service.SubmitJoinRequest true "Invite code, requested role and note"
// @Success 201 {object} service.TeamRequestResponse "Request submitted"
// @Failure 400 {object} ErrorResponse "Invalid request, caller already in a team, or request already pending"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "Unknown invite code"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team/requests [post]
func (h *TeamHandler) SubmitRequest(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredential)
		return
	}

	var req service.SubmitJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	request, err := h.joinRequestService.SubmitRequest(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ApproveRequest handles POST /team/requests/approve
// @Summary Approve a join request
// @Description Approve a pending join request. The requester joins with the requested role and their unassigned leads move into the team.
// @Tags team
// @Accept json
// @Produce json
// @Param body body RequestTargetRequest true "Request to approve"
// @Success 200 {object} OKResponse "Request approved"
// @Failure 400 {object} ErrorResponse "Invalid request or request not pending"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Caller is not a manager of the request's team"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team/requests/approve [post]
func (h *TeamHandler) ApproveRequest(c *gin.Context) {
	h.resolveRequest(c, h.joinRequestService.ApproveRequest)
}

// RejectRequest handles POST /team/requests/reject
// @Summary Reject a join request
// @Description Reject a pending join request
// @Tags team
// @Accept json
// @Produce json
// @Param body body RequestTargetRequest true "Request to reject"
// @Success 200 {object} OKResponse "Request rejected"
// @Failure 400 {object} ErrorResponse "Invalid request or request not pending"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "Caller is not a manager of the request's team"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /team/requests/reject [post]
func (h *TeamHandler) RejectRequest(c *gin.Context) {
	h.resolveRequest(c, h.joinRequestService.RejectRequest)
}

func (h *TeamHandler) resolveRequest(c *gin.Context, resolve func(ctx context.Context, actorID, requestID uuid.UUID) error) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingCredential)
		return
	}

	var req RequestTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	requestID, err := uuid.Parse(req.RequestID)
	if err != nil {
		respondBadRequest(c, "invalid request ID")
		return
	}

	if err := resolve(c.Request.Context(), userID, requestID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, OKResponse{OK: true})
}
