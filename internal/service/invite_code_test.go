package service_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	apperrors "lead-dashboard-backend/internal/errors"
	"lead-dashboard-backend/internal/mocks"
	"lead-dashboard-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// InviteCodeGeneratorTestSuite defines the test suite for InviteCodeGenerator
type InviteCodeGeneratorTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockTeamRepositoryInterface
}

func (suite *InviteCodeGeneratorTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
}

func (suite *InviteCodeGeneratorTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func sequence(values ...int) func(int) int {
	i := 0
	return func(int) int {
		v := values[i%len(values)]
		i++
		return v
	}
}

func (suite *InviteCodeGeneratorTestSuite) TestCodeSpace() {
	gen := service.NewInviteCodeGenerator(5, 30, nil)

	suite.Equal(10000, gen.Floor())
	suite.Equal(90000, gen.SpaceSize())
	suite.Equal(30, gen.MaxAttempts())
}

func (suite *InviteCodeGeneratorTestSuite) TestReturnsFirstFreeCode() {
	gen := service.NewInviteCodeGenerator(5, 30, nil).WithRandom(sequence(0, 89999))

	suite.mockRepo.EXPECT().InviteCodeExists(gomock.Any(), "10000").Return(true, nil)
	suite.mockRepo.EXPECT().InviteCodeExists(gomock.Any(), "99999").Return(false, nil)

	code, err := gen.Generate(context.Background(), suite.mockRepo)

	suite.NoError(err)
	suite.Equal("99999", code)
}

func (suite *InviteCodeGeneratorTestSuite) TestExhaustionAfterExactlyMaxAttempts() {
	gen := service.NewInviteCodeGenerator(5, 30, nil).WithRandom(sequence(42))

	suite.mockRepo.EXPECT().InviteCodeExists(gomock.Any(), "10042").Return(true, nil).Times(30)

	code, err := gen.Generate(context.Background(), suite.mockRepo)

	suite.Empty(code)
	suite.ErrorIs(err, apperrors.ErrInviteCodeSpaceExhausted)
	suite.Equal(apperrors.KindResourceExhausted, apperrors.KindOf(err))
	suite.Contains(err.Error(), "30 attempts")
}

func (suite *InviteCodeGeneratorTestSuite) TestStoreErrorStopsGeneration() {
	gen := service.NewInviteCodeGenerator(5, 30, nil)

	suite.mockRepo.EXPECT().InviteCodeExists(gomock.Any(), gomock.Any()).Return(false, errors.New("connection reset"))

	_, err := gen.Generate(context.Background(), suite.mockRepo)

	suite.Error(err)
	suite.Equal(apperrors.KindInternal, apperrors.KindOf(err))
}

func (suite *InviteCodeGeneratorTestSuite) TestCodesStayInsideTheSpace() {
	gen := service.NewInviteCodeGenerator(5, 30, nil)
	suite.mockRepo.EXPECT().InviteCodeExists(gomock.Any(), gomock.Any()).Return(false, nil).AnyTimes()

	for i := 0; i < 500; i++ {
		code, err := gen.Generate(context.Background(), suite.mockRepo)
		suite.Require().NoError(err)
		suite.Len(code, 5)
		n, err := strconv.Atoi(code)
		suite.Require().NoError(err)
		suite.GreaterOrEqual(n, 10000)
		suite.LessOrEqual(n, 99999)
	}
}

func TestInviteCodeGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(InviteCodeGeneratorTestSuite))
}
