package service_test

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/profiles"
	"lead-dashboard-backend/internal/roles"
	"lead-dashboard-backend/internal/service"
	"lead-dashboard-backend/internal/testutils/memstore"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// TeamWorkflowTestSuite runs whole workflows against the in-memory store
type TeamWorkflowTestSuite struct {
	suite.Suite
	store       *memstore.Store
	teams       *service.TeamService
	memberships *service.MembershipService
	requests    *service.JoinRequestService
	ctx         context.Context
}

func (suite *TeamWorkflowTestSuite) SetupTest() {
	suite.store = memstore.New()
	v := validator.New()
	codes := service.NewInviteCodeGenerator(5, 30, nil)
	suite.teams = service.NewTeamService(suite.store, codes, profiles.NewStoreDirectory(suite.store.Profiles()), nil, v,
		service.TeamConfig{DefaultName: "My Team", InsertAttempts: 3})
	suite.memberships = service.NewMembershipService(suite.store, nil)
	suite.requests = service.NewJoinRequestService(suite.store, nil, v)
	suite.ctx = context.Background()
}

func (suite *TeamWorkflowTestSuite) TestCreateApproveRejectScenario() {
	userA, userB, userC := uuid.New(), uuid.New(), uuid.New()
	leadB := suite.store.AddLead(userB, nil, "B's Bakery")
	suite.store.AddProfile(userB, "Bea", "bea@example.com")

	// A creates Acme
	team, err := suite.teams.CreateTeam(suite.ctx, userA, &service.CreateTeamRequest{Name: "Acme"})
	suite.Require().NoError(err)
	suite.Len(team.InviteCode, 5)
	members := suite.store.TeamMembers(team.ID)
	suite.Require().Len(members, 1)
	suite.Equal(userA, members[0].UserID)
	suite.Equal(roles.Owner, members[0].Role)

	// B asks to join as viewer, A approves
	reqB, err := suite.requests.SubmitRequest(suite.ctx, userB, &service.SubmitJoinRequest{InviteCode: team.InviteCode, Role: "viewer"})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.requests.ApproveRequest(suite.ctx, userA, reqB.ID))

	members = suite.store.TeamMembers(team.ID)
	suite.Require().Len(members, 2)
	suite.Equal(userB, members[1].UserID)
	suite.Equal(roles.Viewer, members[1].Role)
	suite.Require().NotNil(suite.store.Lead(leadB.ID).TeamID)
	suite.Equal(team.ID, *suite.store.Lead(leadB.ID).TeamID)
	suite.Equal(models.RequestStatusApproved, suite.store.Request(reqB.ID).Status)

	// C asks, A rejects
	leadC := suite.store.AddLead(userC, nil, "C's Cafe")
	reqC, err := suite.requests.SubmitRequest(suite.ctx, userC, &service.SubmitJoinRequest{InviteCode: team.InviteCode})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.requests.RejectRequest(suite.ctx, userA, reqC.ID))

	suite.Empty(suite.store.MembershipsOf(userC))
	suite.Equal(models.RequestStatusRejected, suite.store.Request(reqC.ID).Status)
	suite.Nil(suite.store.Lead(leadC.ID).TeamID)

	// overview as seen by B
	overview, err := suite.teams.GetOverview(suite.ctx, userB)
	suite.Require().NoError(err)
	suite.Equal("viewer", overview.Role)
	suite.True(overview.Capabilities.CanExportOnly)
	suite.Len(overview.Members, 2)
	suite.Equal("Bea", overview.Members[1].DisplayName)
	suite.Empty(overview.Requests)
}

func (suite *TeamWorkflowTestSuite) TestOwnerCannotChangeOwnRole() {
	userA := uuid.New()
	team, err := suite.teams.CreateTeam(suite.ctx, userA, nil)
	suite.Require().NoError(err)
	owner := suite.store.TeamMembers(team.ID)[0]

	err = suite.memberships.ChangeRole(suite.ctx, userA, owner.ID, "admin")

	suite.ErrorIs(err, apperrors.ErrOwnerImmutable)
	suite.Equal(roles.Owner, suite.store.TeamMembers(team.ID)[0].Role)
}

func (suite *TeamWorkflowTestSuite) TestAdminCannotTouchOtherTeam() {
	teamX, _ := suite.store.AddTeam(uuid.New(), "X", "11111")
	teamY, _ := suite.store.AddTeam(uuid.New(), "Y", "22222")
	adminD := suite.store.AddMember(teamX.ID, uuid.New(), roles.Admin)
	memberY := suite.store.AddMember(teamY.ID, uuid.New(), roles.Editor)

	err := suite.memberships.RemoveMember(suite.ctx, adminD.UserID, memberY.ID)

	suite.ErrorIs(err, apperrors.ErrCrossTeam)
	suite.Len(suite.store.TeamMembers(teamY.ID), 2)
}

func (suite *TeamWorkflowTestSuite) TestRemoveMemberReleasesTeamLeads() {
	team, _ := suite.store.AddTeam(uuid.New(), "Acme", "33333")
	admin := suite.store.AddMember(team.ID, uuid.New(), roles.Admin)
	leaver := suite.store.AddMember(team.ID, uuid.New(), roles.Editor)
	teamLead := suite.store.AddLead(leaver.UserID, &team.ID, "shared")
	otherTeam := uuid.New()
	foreignLead := suite.store.AddLead(leaver.UserID, &otherTeam, "stale")

	suite.Require().NoError(suite.memberships.RemoveMember(suite.ctx, admin.UserID, leaver.ID))

	suite.Empty(suite.store.MembershipsOf(leaver.UserID))
	suite.Nil(suite.store.Lead(teamLead.ID).TeamID)
	suite.NotNil(suite.store.Lead(foreignLead.ID).TeamID)
}

func (suite *TeamWorkflowTestSuite) TestRemoveMemberRollsBackOnLeadFailure() {
	team, _ := suite.store.AddTeam(uuid.New(), "Acme", "44444")
	admin := suite.store.AddMember(team.ID, uuid.New(), roles.Admin)
	leaver := suite.store.AddMember(team.ID, uuid.New(), roles.Editor)
	suite.store.FailOn("Leads.ReleaseFromTeam", assert.AnError)

	err := suite.memberships.RemoveMember(suite.ctx, admin.UserID, leaver.ID)

	suite.Error(err)
	suite.Len(suite.store.MembershipsOf(leaver.UserID), 1)
}

func (suite *TeamWorkflowTestSuite) TestCreateTeamRollsBackOnLeadFailure() {
	userA := uuid.New()
	suite.store.FailOn("Leads.AssignUnownedToTeam", assert.AnError)

	_, err := suite.teams.CreateTeam(suite.ctx, userA, nil)

	suite.Error(err)
	suite.Equal(0, suite.store.TeamCount())
	suite.Empty(suite.store.MembershipsOf(userA))

	suite.store.FailOn("Leads.AssignUnownedToTeam", nil)
	_, err = suite.teams.CreateTeam(suite.ctx, userA, nil)
	suite.NoError(err)
}

func (suite *TeamWorkflowTestSuite) TestApproveTwiceIsInvalidState() {
	team, owner := suite.store.AddTeam(uuid.New(), "Acme", "55555")
	req := suite.store.AddRequest(team.ID, uuid.New(), "role:admin", models.RequestStatusPending)

	suite.Require().NoError(suite.requests.ApproveRequest(suite.ctx, owner.UserID, req.ID))
	err := suite.requests.ApproveRequest(suite.ctx, owner.UserID, req.ID)

	suite.ErrorIs(err, apperrors.ErrRequestNotPending)
	suite.Len(suite.store.MembershipsOf(req.UserID), 1)
	suite.Equal(roles.Admin, suite.store.MembershipsOf(req.UserID)[0].Role)
}

func (suite *TeamWorkflowTestSuite) TestApprovalUpsertIsIdempotent() {
	team, owner := suite.store.AddTeam(uuid.New(), "Acme", "66666")
	requester := uuid.New()
	// a stale membership left behind by an earlier partial approval
	suite.store.AddMember(team.ID, requester, roles.Viewer)
	req := suite.store.AddRequest(team.ID, requester, "role:editor", models.RequestStatusPending)

	suite.Require().NoError(suite.requests.ApproveRequest(suite.ctx, owner.UserID, req.ID))

	rows := suite.store.MembershipsOf(requester)
	suite.Require().Len(rows, 1)
	suite.Equal(roles.Editor, rows[0].Role)
}

func (suite *TeamWorkflowTestSuite) TestStaleRequestDoesNotDemotePromotedMember() {
	team, owner := suite.store.AddTeam(uuid.New(), "Acme", "67676")
	requester := uuid.New()
	first := suite.store.AddRequest(team.ID, requester, "role:viewer", models.RequestStatusPending)
	stale := suite.store.AddRequest(team.ID, requester, "role:viewer", models.RequestStatusPending)

	suite.Require().NoError(suite.requests.ApproveRequest(suite.ctx, owner.UserID, first.ID))
	rows := suite.store.MembershipsOf(requester)
	suite.Require().Len(rows, 1)
	suite.Require().NoError(suite.memberships.ChangeRole(suite.ctx, owner.UserID, rows[0].ID, "admin"))

	suite.Require().NoError(suite.requests.ApproveRequest(suite.ctx, owner.UserID, stale.ID))

	rows = suite.store.MembershipsOf(requester)
	suite.Require().Len(rows, 1)
	suite.Equal(roles.Admin, rows[0].Role)
	suite.Equal(models.RequestStatusApproved, suite.store.Request(stale.ID).Status)
}

func (suite *TeamWorkflowTestSuite) TestSecondPendingRequestIsRejectedByStore() {
	team, _ := suite.store.AddTeam(uuid.New(), "Acme", "68686")
	requester := uuid.New()
	suite.Require().NoError(suite.store.Requests().Create(suite.ctx, &models.TeamRequest{TeamID: team.ID, UserID: requester}))

	err := suite.store.Requests().Create(suite.ctx, &models.TeamRequest{TeamID: team.ID, UserID: requester})

	suite.ErrorIs(err, apperrors.ErrPendingRequest)
	suite.NoError(suite.store.Requests().Create(suite.ctx, &models.TeamRequest{
		TeamID: team.ID, UserID: requester, Status: models.RequestStatusRejected,
	}))
}

func (suite *TeamWorkflowTestSuite) TestRejectedRequestCannotBeApproved() {
	team, owner := suite.store.AddTeam(uuid.New(), "Acme", "77777")
	req := suite.store.AddRequest(team.ID, uuid.New(), "", models.RequestStatusPending)

	suite.Require().NoError(suite.requests.RejectRequest(suite.ctx, owner.UserID, req.ID))

	suite.ErrorIs(suite.requests.ApproveRequest(suite.ctx, owner.UserID, req.ID), apperrors.ErrRequestNotPending)
	suite.ErrorIs(suite.requests.RejectRequest(suite.ctx, owner.UserID, req.ID), apperrors.ErrRequestNotPending)
	suite.Empty(suite.store.MembershipsOf(req.UserID))
}

func (suite *TeamWorkflowTestSuite) TestPrimaryTeamIsEarliestMembership() {
	user := uuid.New()
	first, _ := suite.store.AddTeam(uuid.New(), "First", "10001")
	second, _ := suite.store.AddTeam(uuid.New(), "Second", "10002")
	suite.store.AddMember(first.ID, user, roles.Viewer)
	suite.store.AddMember(second.ID, user, roles.Admin)

	team, role, err := suite.teams.GetPrimaryTeam(suite.ctx, user)

	suite.Require().NoError(err)
	suite.Equal(first.ID, team.ID)
	suite.Equal(roles.Viewer, role)
}

func (suite *TeamWorkflowTestSuite) TestInviteCodeRaceIsRetriedOnInsert() {
	suite.store.BlindInviteCodeCheck(true)
	codes := service.NewInviteCodeGenerator(5, 30, nil).WithRandom(sequence(1, 1, 2))
	teams := service.NewTeamService(suite.store, codes, nil, nil, validator.New(),
		service.TeamConfig{InsertAttempts: 3})

	first, err := teams.CreateTeam(suite.ctx, uuid.New(), nil)
	suite.Require().NoError(err)
	second, err := teams.CreateTeam(suite.ctx, uuid.New(), nil)
	suite.Require().NoError(err)

	suite.Equal("10001", first.InviteCode)
	suite.Equal("10002", second.InviteCode)
}

func (suite *TeamWorkflowTestSuite) TestCodeSpaceExhaustion() {
	// a 3-digit space with every code taken
	codes := service.NewInviteCodeGenerator(3, 30, nil)
	for n := 100; n <= 999; n++ {
		suite.store.AddTeam(uuid.New(), "t", strconv.Itoa(n))
	}
	teams := service.NewTeamService(suite.store, codes, nil, nil, validator.New(), service.TeamConfig{})

	_, err := teams.CreateTeam(suite.ctx, uuid.New(), nil)

	suite.ErrorIs(err, apperrors.ErrInviteCodeSpaceExhausted)
	suite.Equal(apperrors.KindResourceExhausted, apperrors.KindOf(err))
}

func TestTeamWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(TeamWorkflowTestSuite))
}

// TestAtMostOneMembershipUnderConcurrency races team creation and approvals
// for the same users and checks no user ends up with two memberships
func TestAtMostOneMembershipUnderConcurrency(t *testing.T) {
	store := memstore.New()
	v := validator.New()
	teams := service.NewTeamService(store, service.NewInviteCodeGenerator(5, 30, nil), nil, nil, v,
		service.TeamConfig{InsertAttempts: 3})
	requests := service.NewJoinRequestService(store, nil, v)

	team, owner := store.AddTeam(uuid.New(), "Acme", "90000")
	users := make([]uuid.UUID, 20)
	pending := make([]models.TeamRequest, len(users))
	for i := range users {
		users[i] = uuid.New()
		pending[i] = store.AddRequest(team.ID, users[i], "role:viewer", models.RequestStatusPending)
	}

	var wg sync.WaitGroup
	for i := range users {
		for j := 0; j < 3; j++ {
			wg.Add(2)
			go func(u uuid.UUID) {
				defer wg.Done()
				_, _ = teams.CreateTeam(context.Background(), u, nil)
			}(users[i])
			go func(id uuid.UUID) {
				defer wg.Done()
				_ = requests.ApproveRequest(context.Background(), owner.UserID, id)
			}(pending[i].ID)
		}
	}
	wg.Wait()

	for _, u := range users {
		rows := store.MembershipsOf(u)
		require.Len(t, rows, 1, "user %s", u)
		if rows[0].TeamID == team.ID {
			assert.Equal(t, roles.Viewer, rows[0].Role)
		} else {
			assert.Equal(t, roles.Owner, rows[0].Role)
		}
	}
}
