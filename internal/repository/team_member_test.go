//go:build integration
// +build integration

package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/roles"
	"lead-dashboard-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamMemberRepositoryTestSuite tests the TeamMemberRepository against Postgres
type TeamMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamMemberRepository
	store         *Store
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamMemberRepository(suite.baseTestSuite.DB)
	suite.store = NewStore(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TeamMemberRepositoryTestSuite) createTeam() *models.Team {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.store.Teams().Create(suite.ctx, team))
	return team
}

func (suite *TeamMemberRepositoryTestSuite) TestCreateSecondMembershipFails() {
	first := suite.createTeam()
	second := suite.createTeam()
	member := suite.factories.Member.Create(first.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, member))

	again := suite.factories.Member.Create(second.ID)
	again.UserID = member.UserID
	err := suite.repo.Create(suite.ctx, again)

	suite.ErrorIs(err, apperrors.ErrAlreadyMember)
}

func (suite *TeamMemberRepositoryTestSuite) TestUpsertSameTeamUpdatesRole() {
	team := suite.createTeam()
	member := suite.factories.Member.WithRole(team.ID, roles.Viewer)
	suite.Require().NoError(suite.repo.Create(suite.ctx, member))

	again := suite.factories.Member.WithRole(team.ID, roles.Admin)
	again.UserID = member.UserID
	suite.Require().NoError(suite.repo.Upsert(suite.ctx, again))

	members, err := suite.repo.ListByTeamID(suite.ctx, team.ID)
	suite.Require().NoError(err)
	suite.Require().Len(members, 1)
	suite.Equal(member.ID, members[0].ID)
	suite.Equal(roles.Admin, members[0].Role)
}

func (suite *TeamMemberRepositoryTestSuite) TestUpsertOtherTeamIsRefused() {
	first := suite.createTeam()
	second := suite.createTeam()
	member := suite.factories.Member.Create(first.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, member))

	again := suite.factories.Member.Create(second.ID)
	again.UserID = member.UserID
	err := suite.repo.Upsert(suite.ctx, again)

	suite.ErrorIs(err, apperrors.ErrAlreadyMember)
	stored, err := suite.repo.GetByID(suite.ctx, member.ID)
	suite.Require().NoError(err)
	suite.Equal(first.ID, stored.TeamID)
}

func (suite *TeamMemberRepositoryTestSuite) TestConcurrentCreatesKeepOneRow() {
	const workers = 6
	userID := uuid.New()
	members := make([]*models.TeamMember, workers)
	for i := range members {
		members[i] = suite.factories.Member.Create(suite.createTeam().ID)
		members[i].UserID = userID
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = suite.repo.Create(suite.ctx, members[i])
		}(i)
	}
	wg.Wait()

	var count int64
	suite.Require().NoError(suite.baseTestSuite.DB.Model(&models.TeamMember{}).Where("user_id = ?", userID).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *TeamMemberRepositoryTestSuite) TestGetPrimaryByUserIDLoadsTeam() {
	team := suite.createTeam()
	member := suite.factories.Member.Create(team.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, member))

	primary, err := suite.repo.GetPrimaryByUserID(suite.ctx, member.UserID)

	suite.Require().NoError(err)
	suite.Equal(member.ID, primary.ID)
	suite.Require().NotNil(primary.Team)
	suite.Equal(team.InviteCode, primary.Team.InviteCode)
}

func (suite *TeamMemberRepositoryTestSuite) TestGetPrimaryByUserIDNotFound() {
	_, err := suite.repo.GetPrimaryByUserID(suite.ctx, uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *TeamMemberRepositoryTestSuite) TestListByTeamIDInJoinOrder() {
	team := suite.createTeam()
	owner := suite.factories.Member.Owner(team)
	suite.Require().NoError(suite.repo.Create(suite.ctx, owner))
	later := suite.factories.Member.Create(team.ID)
	later.CreatedAt = owner.CreatedAt.Add(time.Minute)
	suite.Require().NoError(suite.repo.Create(suite.ctx, later))

	members, err := suite.repo.ListByTeamID(suite.ctx, team.ID)

	suite.Require().NoError(err)
	suite.Require().Len(members, 2)
	suite.Equal(owner.ID, members[0].ID)
	suite.Equal(later.ID, members[1].ID)
}

func (suite *TeamMemberRepositoryTestSuite) TestUpdateRoleAndDelete() {
	team := suite.createTeam()
	member := suite.factories.Member.Create(team.ID)
	suite.Require().NoError(suite.repo.Create(suite.ctx, member))

	suite.Require().NoError(suite.repo.UpdateRole(suite.ctx, member.ID, roles.Viewer))
	stored, err := suite.repo.GetByID(suite.ctx, member.ID)
	suite.Require().NoError(err)
	suite.Equal(roles.Viewer, stored.Role)

	suite.Require().NoError(suite.repo.Delete(suite.ctx, member.ID))
	suite.ErrorIs(suite.repo.Delete(suite.ctx, member.ID), gorm.ErrRecordNotFound)
	suite.ErrorIs(suite.repo.UpdateRole(suite.ctx, member.ID, roles.Admin), gorm.ErrRecordNotFound)
}

func (suite *TeamMemberRepositoryTestSuite) TestLegacyMemberRoleNormalizes() {
	team := suite.createTeam()
	member := suite.factories.Member.Create(team.ID)
	member.Role = roles.Role("member")
	suite.Require().NoError(suite.repo.Create(suite.ctx, member))

	stored, err := suite.repo.GetByID(suite.ctx, member.ID)

	suite.Require().NoError(err)
	suite.Equal(roles.Editor, stored.NormalizedRole())
}

// TestTeamMemberRepositoryTestSuite runs the test suite
func TestTeamMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamMemberRepositoryTestSuite))
}
