package repository

import (
	"testing"

	"black-bears-backend/internal/database/models"
	"black-bears-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.Create()

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotZero(team.ID)
}

// TestCreateDuplicateName tests that the unique name constraint is enforced
func (suite *TeamRepositoryTestSuite) TestCreateDuplicateName() {
	team1 := suite.factories.Team.WithName("Black Bears")
	suite.NoError(suite.repo.Create(team1))

	team2 := suite.factories.Team.WithName("Black Bears")
	err := suite.repo.Create(team2)

	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByName tests retrieving a team by its unique name
func (suite *TeamRepositoryTestSuite) TestGetByName() {
	team := suite.factories.Team.WithName("Black Bears")
	suite.NoError(suite.repo.Create(team))

	retrieved, err := suite.repo.GetByName("Black Bears")

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(team.ID, retrieved.ID)
}

// TestGetByNameNotFound tests retrieving a non-existent team by name
func (suite *TeamRepositoryTestSuite) TestGetByNameNotFound() {
	team, err := suite.repo.GetByName("no-such-team")

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(team)
}

// TestListFiltersByGender tests the optional gender scope
func (suite *TeamRepositoryTestSuite) TestListFiltersByGender() {
	suite.NoError(suite.repo.Create(suite.factories.Team.WithGender(models.GenderMale)))
	suite.NoError(suite.repo.Create(suite.factories.Team.WithGender(models.GenderFemale)))

	female := models.GenderFemale
	teams, total, err := suite.repo.List(&female, 100, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(teams, 1)
	suite.Equal(models.GenderFemale, teams[0].Gender)
}

// TestStandingsOrdersByPositionNullsLast tests the ranked listing:
// ranked teams first by position, unranked teams after them.
func (suite *TeamRepositoryTestSuite) TestStandingsOrdersByPositionNullsLast() {
	third := suite.factories.Team.WithName("Third")
	pos3 := 3
	third.CurrentPosition = &pos3
	suite.NoError(suite.repo.Create(third))

	unranked := suite.factories.Team.WithName("Unranked")
	suite.NoError(suite.repo.Create(unranked))

	first := suite.factories.Team.WithName("First")
	pos1 := 1
	first.CurrentPosition = &pos1
	suite.NoError(suite.repo.Create(first))

	teams, err := suite.repo.Standings(models.GenderMale)

	suite.NoError(err)
	suite.Len(teams, 3)
	suite.Equal("First", teams[0].Name)
	suite.Equal("Third", teams[1].Name)
	suite.Equal("Unranked", teams[2].Name)
	suite.Nil(teams[2].CurrentPosition)
}

// TestStandingsScopedToGender tests that standings never mix divisions
func (suite *TeamRepositoryTestSuite) TestStandingsScopedToGender() {
	suite.NoError(suite.repo.Create(suite.factories.Team.WithGender(models.GenderMale)))
	suite.NoError(suite.repo.Create(suite.factories.Team.WithGender(models.GenderFemale)))

	teams, err := suite.repo.Standings(models.GenderFemale)

	suite.NoError(err)
	suite.Len(teams, 1)
	suite.Equal(models.GenderFemale, teams[0].Gender)
}

// TestUpdatePersistsDerivedFields tests that recalculated fields round-trip
func (suite *TeamRepositoryTestSuite) TestUpdatePersistsDerivedFields() {
	team := suite.factories.Team.WithRecord("Black Bears", 10, 7, 3, 812, 745)
	suite.NoError(suite.repo.Create(team))

	team.Wins = 8
	team.Losses = 2
	team.Recalculate()
	suite.NoError(suite.repo.Update(team))

	retrieved, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.InDelta(0.8, retrieved.WinPercentage, 0.0001)
	suite.Equal(67, retrieved.PointsDifference)
}

// TestDelete tests deleting a team
func (suite *TeamRepositoryTestSuite) TestDelete() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	err := suite.repo.Delete(team.ID)

	suite.NoError(err)
	_, err = suite.repo.GetByID(team.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
