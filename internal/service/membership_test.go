package service_test

import (
	"context"
	"errors"
	"testing"

	"lead-dashboard-backend/internal/database/models"
	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/mocks"
	"lead-dashboard-backend/internal/repository"
	"lead-dashboard-backend/internal/roles"
	"lead-dashboard-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MembershipServiceTestSuite defines the test suite for MembershipService
type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockStore   *mocks.MockStoreInterface
	mockMembers *mocks.MockTeamMemberRepositoryInterface
	mockLeads   *mocks.MockLeadRepositoryInterface
	service     *service.MembershipService

	teamID uuid.UUID
	actor  *models.TeamMember
}

func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockStore = mocks.NewMockStoreInterface(suite.ctrl)
	suite.mockMembers = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.mockLeads = mocks.NewMockLeadRepositoryInterface(suite.ctrl)

	suite.mockStore.EXPECT().Members().Return(suite.mockMembers).AnyTimes()
	suite.mockStore.EXPECT().Leads().Return(suite.mockLeads).AnyTimes()
	suite.mockStore.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(repository.StoreInterface) error) error {
			return fn(suite.mockStore)
		}).AnyTimes()

	suite.service = service.NewMembershipService(suite.mockStore, nil)

	suite.teamID = uuid.New()
	suite.actor = newMember(suite.teamID, roles.Admin)
}

func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func newMember(teamID uuid.UUID, role roles.Role) *models.TeamMember {
	m := &models.TeamMember{TeamID: teamID, UserID: uuid.New(), Role: role}
	m.ID = uuid.New()
	return m
}

func (suite *MembershipServiceTestSuite) expectActor(member *models.TeamMember) {
	suite.mockMembers.EXPECT().GetPrimaryByUserID(gomock.Any(), member.UserID).Return(member, nil)
}

func (suite *MembershipServiceTestSuite) TestRemoveMemberSuccess() {
	target := newMember(suite.teamID, roles.Editor)
	suite.expectActor(suite.actor)
	suite.mockMembers.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)
	suite.mockMembers.EXPECT().Delete(gomock.Any(), target.ID).Return(nil)
	suite.mockLeads.EXPECT().ReleaseFromTeam(gomock.Any(), target.UserID, suite.teamID).Return(int64(4), nil)

	err := suite.service.RemoveMember(context.Background(), suite.actor.UserID, target.ID)

	suite.NoError(err)
}

func (suite *MembershipServiceTestSuite) TestRemoveMemberNotFound() {
	missing := uuid.New()
	suite.expectActor(suite.actor)
	suite.mockMembers.EXPECT().GetByID(gomock.Any(), missing).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.RemoveMember(context.Background(), suite.actor.UserID, missing)

	suite.ErrorIs(err, apperrors.ErrMemberNotFound)
	suite.Equal(apperrors.KindNotFound, apperrors.KindOf(err))
}

func (suite *MembershipServiceTestSuite) TestRemoveMemberOtherTeamIsForbidden() {
	target := newMember(uuid.New(), roles.Viewer)
	suite.expectActor(suite.actor)
	suite.mockMembers.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)

	err := suite.service.RemoveMember(context.Background(), suite.actor.UserID, target.ID)

	suite.ErrorIs(err, apperrors.ErrCrossTeam)
	suite.Equal(apperrors.KindForbidden, apperrors.KindOf(err))
}

func (suite *MembershipServiceTestSuite) TestRemoveOwnerIsInvalidOperation() {
	for _, actorRole := range []roles.Role{roles.Owner, roles.Admin} {
		actor := newMember(suite.teamID, actorRole)
		owner := newMember(suite.teamID, roles.Owner)
		suite.expectActor(actor)
		suite.mockMembers.EXPECT().GetByID(gomock.Any(), owner.ID).Return(owner, nil)

		err := suite.service.RemoveMember(context.Background(), actor.UserID, owner.ID)

		suite.ErrorIs(err, apperrors.ErrOwnerImmutable, "actor role %s", actorRole)
		suite.Equal(apperrors.KindInvalidOperation, apperrors.KindOf(err))
	}
}

func (suite *MembershipServiceTestSuite) TestRemoveMemberRequiresManager() {
	for _, actorRole := range []roles.Role{roles.Editor, roles.Viewer, roles.Role("member")} {
		actor := newMember(suite.teamID, actorRole)
		suite.expectActor(actor)

		err := suite.service.RemoveMember(context.Background(), actor.UserID, uuid.New())

		suite.ErrorIs(err, apperrors.ErrNotTeamManager, "actor role %s", actorRole)
	}
}

func (suite *MembershipServiceTestSuite) TestRemoveMemberWithoutTeamIsForbidden() {
	actorID := uuid.New()
	suite.mockMembers.EXPECT().GetPrimaryByUserID(gomock.Any(), actorID).Return(nil, gorm.ErrRecordNotFound)

	err := suite.service.RemoveMember(context.Background(), actorID, uuid.New())

	suite.ErrorIs(err, apperrors.ErrNotTeamMember)
	suite.Equal(apperrors.KindForbidden, apperrors.KindOf(err))
}

func (suite *MembershipServiceTestSuite) TestRemoveMemberLeadFailureIsSurfaced() {
	target := newMember(suite.teamID, roles.Editor)
	suite.expectActor(suite.actor)
	suite.mockMembers.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)
	suite.mockMembers.EXPECT().Delete(gomock.Any(), target.ID).Return(nil)
	suite.mockLeads.EXPECT().ReleaseFromTeam(gomock.Any(), target.UserID, suite.teamID).Return(int64(0), errors.New("deadlock"))

	err := suite.service.RemoveMember(context.Background(), suite.actor.UserID, target.ID)

	suite.Error(err)
	suite.Equal(apperrors.KindInternal, apperrors.KindOf(err))
}

func (suite *MembershipServiceTestSuite) TestChangeRoleSuccess() {
	target := newMember(suite.teamID, roles.Role("member"))
	suite.expectActor(suite.actor)
	suite.mockMembers.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)
	suite.mockMembers.EXPECT().UpdateRole(gomock.Any(), target.ID, roles.Viewer).Return(nil)

	err := suite.service.ChangeRole(context.Background(), suite.actor.UserID, target.ID, "VIEWER")

	suite.NoError(err)
}

func (suite *MembershipServiceTestSuite) TestChangeRoleInvalidToken() {
	err := suite.service.ChangeRole(context.Background(), suite.actor.UserID, uuid.New(), "bogus")

	suite.ErrorIs(err, apperrors.ErrInvalidRole)
	suite.Equal(apperrors.KindInvalidInput, apperrors.KindOf(err))
}

func (suite *MembershipServiceTestSuite) TestChangeRoleOfOwnerIsInvalidOperation() {
	owner := newMember(suite.teamID, roles.Owner)
	suite.expectActor(owner)
	suite.mockMembers.EXPECT().GetByID(gomock.Any(), owner.ID).Return(owner, nil)

	err := suite.service.ChangeRole(context.Background(), owner.UserID, owner.ID, "admin")

	suite.ErrorIs(err, apperrors.ErrOwnerImmutable)
}

func (suite *MembershipServiceTestSuite) TestChangeRoleCannotGrantOwner() {
	target := newMember(suite.teamID, roles.Admin)
	suite.expectActor(suite.actor)
	suite.mockMembers.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)

	err := suite.service.ChangeRole(context.Background(), suite.actor.UserID, target.ID, "owner")

	suite.ErrorIs(err, apperrors.ErrOwnerNotGrantable)
	suite.Equal(apperrors.KindInvalidOperation, apperrors.KindOf(err))
}

func (suite *MembershipServiceTestSuite) TestChangeRoleOtherTeamIsForbidden() {
	target := newMember(uuid.New(), roles.Editor)
	suite.expectActor(suite.actor)
	suite.mockMembers.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)

	err := suite.service.ChangeRole(context.Background(), suite.actor.UserID, target.ID, "viewer")

	suite.ErrorIs(err, apperrors.ErrCrossTeam)
}

func (suite *MembershipServiceTestSuite) TestChangeRoleTargetVanished() {
	target := newMember(suite.teamID, roles.Editor)
	suite.expectActor(suite.actor)
	suite.mockMembers.EXPECT().GetByID(gomock.Any(), target.ID).Return(target, nil)
	suite.mockMembers.EXPECT().UpdateRole(gomock.Any(), target.ID, roles.Admin).Return(gorm.ErrRecordNotFound)

	err := suite.service.ChangeRole(context.Background(), suite.actor.UserID, target.ID, "admin")

	suite.ErrorIs(err, apperrors.ErrMemberNotFound)
}

func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
