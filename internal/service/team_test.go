package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/mocks"
	"lead-dashboard-backend/internal/profiles"
	"lead-dashboard-backend/internal/repository"
	"lead-dashboard-backend/internal/roles"
	"lead-dashboard-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type stubDirectory struct {
	profiles map[uuid.UUID]profiles.Profile
	err      error
}

func (d stubDirectory) Lookup(_ context.Context, _ []uuid.UUID) (map[uuid.UUID]profiles.Profile, error) {
	return d.profiles, d.err
}

// TeamServiceTestSuite defines the test suite for TeamService
type TeamServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockStore    *mocks.MockStoreInterface
	mockTeams    *mocks.MockTeamRepositoryInterface
	mockMembers  *mocks.MockTeamMemberRepositoryInterface
	mockInvites  *mocks.MockTeamInviteRepositoryInterface
	mockRequests *mocks.MockTeamRequestRepositoryInterface
	mockLeads    *mocks.MockLeadRepositoryInterface
	directory    *stubDirectory
	teamService  *service.TeamService
}

func (suite *TeamServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockStoreInterface(suite.ctrl)
	suite.mockTeams = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.mockMembers = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.mockInvites = mocks.NewMockTeamInviteRepositoryInterface(suite.ctrl)
	suite.mockRequests = mocks.NewMockTeamRequestRepositoryInterface(suite.ctrl)
	suite.mockLeads = mocks.NewMockLeadRepositoryInterface(suite.ctrl)

	suite.mockStore.EXPECT().Teams().Return(suite.mockTeams).AnyTimes()
	suite.mockStore.EXPECT().Members().Return(suite.mockMembers).AnyTimes()
	suite.mockStore.EXPECT().Invites().Return(suite.mockInvites).AnyTimes()
	suite.mockStore.EXPECT().Requests().Return(suite.mockRequests).AnyTimes()
	suite.mockStore.EXPECT().Leads().Return(suite.mockLeads).AnyTimes()
	suite.mockStore.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repository.StoreInterface) error) error {
			return fn(suite.mockStore)
		}).AnyTimes()

	suite.directory = &stubDirectory{}
	codes := service.NewInviteCodeGenerator(5, 30, nil).WithRandom(func(int) int { return 2345 })
	suite.teamService = service.NewTeamService(suite.mockStore, codes, suite.directory, nil, validator.New(),
		service.TeamConfig{DefaultName: "My Team", InsertAttempts: 3})
}

func (suite *TeamServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TeamServiceTestSuite) TestCreateTeamSuccess() {
	userID := uuid.New()
	teamID := uuid.New()
	suite.mockMembers.EXPECT().GetPrimaryByUserID(gomock.Any(), userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeams.EXPECT().InviteCodeExists(gomock.Any(), "12345").Return(false, nil)
	suite.mockTeams.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, t *models.Team) error {
			suite.Equal("Acme", t.Name)
			suite.Equal(userID, t.OwnerID)
			t.ID = teamID
			return nil
		})
	suite.mockMembers.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.TeamMember) error {
			suite.Equal(teamID, m.TeamID)
			suite.Equal(userID, m.UserID)
			suite.Equal(roles.Owner, m.Role)
			return nil
		})
	suite.mockLeads.EXPECT().AssignUnownedToTeam(gomock.Any(), userID, teamID).Return(int64(7), nil)

	resp, err := suite.teamService.CreateTeam(context.Background(), userID, &service.CreateTeamRequest{Name: "  Acme "})

	suite.Require().NoError(err)
	suite.Equal(teamID, resp.ID)
	suite.Equal("12345", resp.InviteCode)
	suite.Equal("Acme", resp.Name)
}

func (suite *TeamServiceTestSuite) TestCreateTeamDefaultName() {
	userID := uuid.New()
	suite.mockMembers.EXPECT().GetPrimaryByUserID(gomock.Any(), userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeams.EXPECT().InviteCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.mockTeams.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockMembers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockLeads.EXPECT().AssignUnownedToTeam(gomock.Any(), userID, gomock.Any()).Return(int64(0), nil)

	resp, err := suite.teamService.CreateTeam(context.Background(), userID, nil)

	suite.Require().NoError(err)
	suite.Equal("My Team", resp.Name)
}

func (suite *TeamServiceTestSuite) TestCreateTeamNameTooLong() {
	_, err := suite.teamService.CreateTeam(context.Background(), uuid.New(), &service.CreateTeamRequest{Name: strings.Repeat("x", 101)})

	suite.Equal(apperrors.KindInvalidInput, apperrors.KindOf(err))
}

func (suite *TeamServiceTestSuite) TestCreateTeamAlreadyMember() {
	userID := uuid.New()
	suite.mockMembers.EXPECT().GetPrimaryByUserID(gomock.Any(), userID).Return(newMember(uuid.New(), roles.Viewer), nil)

	_, err := suite.teamService.CreateTeam(context.Background(), userID, &service.CreateTeamRequest{Name: "Acme"})

	suite.ErrorIs(err, apperrors.ErrAlreadyMember)
}

func (suite *TeamServiceTestSuite) TestCreateTeamOwnerInsertFailureIsFatal() {
	userID := uuid.New()
	suite.mockMembers.EXPECT().GetPrimaryByUserID(gomock.Any(), userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeams.EXPECT().InviteCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
	suite.mockTeams.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockMembers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection lost"))

	_, err := suite.teamService.CreateTeam(context.Background(), userID, &service.CreateTeamRequest{Name: "Acme"})

	suite.Error(err)
	suite.Equal(apperrors.KindInternal, apperrors.KindOf(err))
	suite.Contains(err.Error(), "failed to create team")
}

func (suite *TeamServiceTestSuite) TestCreateTeamRetriesInviteCodeRace() {
	userID := uuid.New()
	suite.mockMembers.EXPECT().GetPrimaryByUserID(gomock.Any(), userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeams.EXPECT().InviteCodeExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
	gomock.InOrder(
		suite.mockTeams.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrInviteCodeTaken),
		suite.mockTeams.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil),
	)
	suite.mockMembers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockLeads.EXPECT().AssignUnownedToTeam(gomock.Any(), userID, gomock.Any()).Return(int64(0), nil)

	_, err := suite.teamService.CreateTeam(context.Background(), userID, &service.CreateTeamRequest{Name: "Acme"})

	suite.NoError(err)
}

func (suite *TeamServiceTestSuite) TestCreateTeamInsertRetriesAreBounded() {
	userID := uuid.New()
	suite.mockMembers.EXPECT().GetPrimaryByUserID(gomock.Any(), userID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockTeams.EXPECT().InviteCodeExists(gomock.Any(), gomock.Any()).Return(false, nil).Times(3)
	suite.mockTeams.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrInviteCodeTaken).Times(3)

	_, err := suite.teamService.CreateTeam(context.Background(), userID, &service.CreateTeamRequest{Name: "Acme"})

	suite.ErrorIs(err, apperrors.ErrInviteCodeSpaceExhausted)
}

func (suite *TeamServiceTestSuite) TestGetOverviewWithoutTeam() {
	userID := uuid.New()
	suite.mockMembers.EXPECT().GetPrimaryByUserID(gomock.Any(), userID).Return(nil, gorm.ErrRecordNotFound)

	overview, err := suite.teamService.GetOverview(context.Background(), userID)

	suite.Require().NoError(err)
	suite.Nil(overview.Team)
	suite.Equal("none", overview.Role)
	suite.Equal(roles.Capabilities{}, overview.Capabilities)
	suite.Empty(overview.Members)
	suite.NotNil(overview.Members)
}

func (suite *TeamServiceTestSuite) TestGetOverviewToleratesProfileFailure() {
	team := &models.Team{Name: "Acme", InviteCode: "12345"}
	team.ID = uuid.New()
	caller := newMember(team.ID, roles.Role("member"))
	caller.Team = team
	pending := models.TeamRequest{TeamID: team.ID, UserID: uuid.New(), Note: "role:viewer", Status: models.RequestStatusPending}
	pending.ID = uuid.New()

	suite.directory.err = errors.New("ldap down")
	suite.mockMembers.EXPECT().GetPrimaryByUserID(gomock.Any(), caller.UserID).Return(caller, nil)
	suite.mockMembers.EXPECT().ListByTeamID(gomock.Any(), team.ID).Return([]models.TeamMember{*caller}, nil)
	suite.mockInvites.EXPECT().ListByTeamID(gomock.Any(), team.ID).Return(nil, nil)
	suite.mockRequests.EXPECT().ListPendingByTeamID(gomock.Any(), team.ID).Return([]models.TeamRequest{pending}, nil)

	overview, err := suite.teamService.GetOverview(context.Background(), caller.UserID)

	suite.Require().NoError(err)
	suite.Equal("editor", overview.Role)
	suite.True(overview.Capabilities.CanEdit)
	suite.False(overview.Capabilities.CanManageMembers)
	suite.Require().Len(overview.Members, 1)
	suite.Equal(roles.Editor, overview.Members[0].Role)
	suite.Empty(overview.Members[0].DisplayName)
	suite.Require().Len(overview.Requests, 1)
	suite.Equal(roles.Viewer, overview.Requests[0].RequestedRole)
	suite.Empty(overview.Invites)
}

func (suite *TeamServiceTestSuite) TestGetOverviewListFailure() {
	team := &models.Team{Name: "Acme"}
	team.ID = uuid.New()
	caller := newMember(team.ID, roles.Owner)
	caller.Team = team

	suite.mockMembers.EXPECT().GetPrimaryByUserID(gomock.Any(), caller.UserID).Return(caller, nil)
	suite.mockMembers.EXPECT().ListByTeamID(gomock.Any(), team.ID).Return(nil, errors.New("boom"))
	suite.mockInvites.EXPECT().ListByTeamID(gomock.Any(), team.ID).Return(nil, nil).AnyTimes()
	suite.mockRequests.EXPECT().ListPendingByTeamID(gomock.Any(), team.ID).Return(nil, nil).AnyTimes()

	_, err := suite.teamService.GetOverview(context.Background(), caller.UserID)

	suite.Error(err)
	suite.Equal(apperrors.KindInternal, apperrors.KindOf(err))
}

func (suite *TeamServiceTestSuite) TestGetOverviewMissingTeamRow() {
	caller := newMember(uuid.New(), roles.Editor)

	suite.mockMembers.EXPECT().GetPrimaryByUserID(gomock.Any(), caller.UserID).Return(caller, nil)
	suite.mockTeams.EXPECT().GetByID(gomock.Any(), caller.TeamID).Return(nil, gorm.ErrRecordNotFound)

	_, err := suite.teamService.GetOverview(context.Background(), caller.UserID)

	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
	suite.Equal(apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestTeamServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TeamServiceTestSuite))
}
