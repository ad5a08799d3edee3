package service_test

import (
	"testing"

	"black-bears-backend/internal/database/models"
	apperrors "black-bears-backend/internal/errors"
	"black-bears-backend/internal/mocks"
	"black-bears-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LeaderboardServiceTestSuite defines the test suite for LeaderboardService
type LeaderboardServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRepo           *mocks.MockLeaderboardRepositoryInterface
	mockTeamRepo       *mocks.MockTeamRepositoryInterface
	leaderboardService *service.LeaderboardService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *LeaderboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockLeaderboardRepositoryInterface(suite.ctrl)
	suite.mockTeamRepo = mocks.NewMockTeamRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.leaderboardService = service.NewLeaderboardService(suite.mockRepo, suite.mockTeamRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *LeaderboardServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateEntry tests creating a leaderboard entry
func (suite *LeaderboardServiceTestSuite) TestCreateEntry() {
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.leaderboardService.Create(&service.CreateLeaderboardEntryRequest{
		Name:     "Black Bears",
		Gender:   "male",
		Games:    10,
		Wins:     7,
		Losses:   3,
		Scored:   812,
		Conceded: 745,
		Position: 1,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Black Bears", response.Name)
	assert.Equal(suite.T(), 1, response.Position)
}

// TestCreateEntryNegativeWins tests that negative counters are rejected
func (suite *LeaderboardServiceTestSuite) TestCreateEntryNegativeWins() {
	response, err := suite.leaderboardService.Create(&service.CreateLeaderboardEntryRequest{
		Name:   "Black Bears",
		Gender: "male",
		Wins:   -1,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateEntryNotFound tests updating a non-existent entry
func (suite *LeaderboardServiceTestSuite) TestUpdateEntryNotFound() {
	suite.mockRepo.EXPECT().
		GetByID(uint(77)).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	position := 2
	response, err := suite.leaderboardService.Update(77, &service.UpdateLeaderboardEntryRequest{Position: &position})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestDeleteEntryReturnsRemovedRow tests that delete echoes the removed entry
func (suite *LeaderboardServiceTestSuite) TestDeleteEntryReturnsRemovedRow() {
	stored := &models.LeaderboardEntry{ID: 5, Name: "Eagles", Gender: models.GenderMale, Position: 4}

	suite.mockRepo.EXPECT().GetByID(uint(5)).Return(stored, nil).Times(1)
	suite.mockRepo.EXPECT().Delete(uint(5)).Return(nil).Times(1)

	response, err := suite.leaderboardService.Delete(5)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Eagles", response.Name)
	assert.Equal(suite.T(), 4, response.Position)
}

// TestRebuildDerivesSnapshotFromTeams tests that Rebuild reads both divisions
// in standings order and assigns positions 1..n per division
func (suite *LeaderboardServiceTestSuite) TestRebuildDerivesSnapshotFromTeams() {
	maleTeams := []models.Team{
		{Name: "Black Bears", Gender: models.GenderMale, GamesPlayed: 10, Wins: 7, Losses: 3, PointsScored: 812, PointsConceded: 745},
		{Name: "Eagles", Gender: models.GenderMale, GamesPlayed: 10, Wins: 4, Losses: 6, PointsScored: 700, PointsConceded: 760},
	}
	femaleTeams := []models.Team{
		{Name: "Black Bears Women", Gender: models.GenderFemale, GamesPlayed: 8, Wins: 6, Losses: 2, PointsScored: 540, PointsConceded: 470},
	}

	suite.mockTeamRepo.EXPECT().Standings(models.GenderMale).Return(maleTeams, nil).Times(1)
	suite.mockTeamRepo.EXPECT().Standings(models.GenderFemale).Return(femaleTeams, nil).Times(1)

	suite.mockRepo.EXPECT().
		ReplaceAll(gomock.Any()).
		DoAndReturn(func(entries []models.LeaderboardEntry) error {
			suite.Len(entries, 3)
			suite.Equal("Black Bears", entries[0].Name)
			suite.Equal(1, entries[0].Position)
			suite.Equal("Eagles", entries[1].Name)
			suite.Equal(2, entries[1].Position)
			suite.Equal("Black Bears Women", entries[2].Name)
			suite.Equal(1, entries[2].Position)
			return nil
		}).
		Times(1)
	suite.mockRepo.EXPECT().
		List().
		Return([]models.LeaderboardEntry{
			{ID: 1, Name: "Black Bears", Gender: models.GenderMale, Position: 1},
			{ID: 3, Name: "Black Bears Women", Gender: models.GenderFemale, Position: 1},
			{ID: 2, Name: "Eagles", Gender: models.GenderMale, Position: 2},
		}, nil).
		Times(1)

	response, err := suite.leaderboardService.Rebuild()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response, 3)
}

// TestRebuildPropagatesStandingsError tests that a standings failure aborts the rebuild
func (suite *LeaderboardServiceTestSuite) TestRebuildPropagatesStandingsError() {
	suite.mockTeamRepo.EXPECT().
		Standings(models.GenderMale).
		Return(nil, gorm.ErrInvalidDB).
		Times(1)
	// No ReplaceAll expectation: the stale snapshot must survive

	response, err := suite.leaderboardService.Rebuild()

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
}

// TestLeaderboardServiceTestSuite runs the test suite
func TestLeaderboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardServiceTestSuite))
}
