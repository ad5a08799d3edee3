package repository

import (
	"testing"

	"black-bears-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// NewsRepositoryTestSuite tests the NewsRepository
type NewsRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NewsRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *NewsRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewNewsRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *NewsRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *NewsRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *NewsRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateWithTags tests creating a news item with tag associations
func (suite *NewsRepositoryTestSuite) TestCreateWithTags() {
	news := suite.factories.News.WithTags("season", "schedule")

	err := suite.repo.Create(news)

	suite.NoError(err)
	suite.NotZero(news.ID)

	retrieved, err := suite.repo.GetByID(news.ID)
	suite.NoError(err)
	suite.Len(retrieved.Tags, 2)
}

// TestGetByIDNotFound tests retrieving a non-existent news item
func (suite *NewsRepositoryTestSuite) TestGetByIDNotFound() {
	news, err := suite.repo.GetByID(99999)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(news)
}

// TestListWithEmptyTagsReturnsEverything tests that an empty tag set is no filter
func (suite *NewsRepositoryTestSuite) TestListWithEmptyTagsReturnsEverything() {
	suite.NoError(suite.repo.Create(suite.factories.News.WithTitle("Untagged")))
	tagged := suite.factories.News.WithTags("season")
	tagged.Title = "With tags"
	suite.NoError(suite.repo.Create(tagged))

	news, total, err := suite.repo.List(nil, 100, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(news, 2)
}

// TestListFiltersByTagIntersection tests tag-scoped listing
func (suite *NewsRepositoryTestSuite) TestListFiltersByTagIntersection() {
	seasonal := suite.factories.News.WithTags("season")
	seasonal.Title = "Season news"
	suite.NoError(suite.repo.Create(seasonal))

	transfer := suite.factories.News.WithTags("transfers")
	transfer.Title = "Transfer news"
	suite.NoError(suite.repo.Create(transfer))

	both := suite.factories.News.WithTags("season", "transfers")
	both.Title = "Both"
	suite.NoError(suite.repo.Create(both))

	news, total, err := suite.repo.List([]string{"season"}, 100, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(news, 2)
	for _, n := range news {
		suite.NotEqual("Transfer news", n.Title)
	}
}

// TestListDoesNotDuplicateMultiTagMatches tests that an item matching several
// requested tags appears once
func (suite *NewsRepositoryTestSuite) TestListDoesNotDuplicateMultiTagMatches() {
	both := suite.factories.News.WithTags("season", "transfers")
	suite.NoError(suite.repo.Create(both))

	news, total, err := suite.repo.List([]string{"season", "transfers"}, 100, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(news, 1)
}

// TestGetOrCreateTagsIsIdempotent tests that resolving a name twice yields one row
func (suite *NewsRepositoryTestSuite) TestGetOrCreateTagsIsIdempotent() {
	first, err := suite.repo.GetOrCreateTags([]string{"season"})
	suite.NoError(err)
	suite.Len(first, 1)

	second, err := suite.repo.GetOrCreateTags([]string{"season"})
	suite.NoError(err)
	suite.Len(second, 1)
	suite.Equal(first[0].ID, second[0].ID)

	tags, err := suite.repo.ListTags()
	suite.NoError(err)
	suite.Len(tags, 1)
}

// TestReplaceTags tests the wholesale tag replacement
func (suite *NewsRepositoryTestSuite) TestReplaceTags() {
	news := suite.factories.News.WithTags("season")
	suite.NoError(suite.repo.Create(news))

	newTags, err := suite.repo.GetOrCreateTags([]string{"playoffs", "final"})
	suite.NoError(err)
	suite.NoError(suite.repo.ReplaceTags(news, newTags))

	retrieved, err := suite.repo.GetByID(news.ID)
	suite.NoError(err)
	suite.Len(retrieved.Tags, 2)
	names := []string{retrieved.Tags[0].Name, retrieved.Tags[1].Name}
	suite.Contains(names, "playoffs")
	suite.Contains(names, "final")
}

// TestUpdateKeepsTags tests that a scalar update leaves the tag set alone
func (suite *NewsRepositoryTestSuite) TestUpdateKeepsTags() {
	news := suite.factories.News.WithTags("season")
	suite.NoError(suite.repo.Create(news))

	news.Title = "Updated title"
	suite.NoError(suite.repo.Update(news))

	retrieved, err := suite.repo.GetByID(news.ID)
	suite.NoError(err)
	suite.Equal("Updated title", retrieved.Title)
	suite.Len(retrieved.Tags, 1)
}

// TestListTagsSortedByName tests the tag listing order
func (suite *NewsRepositoryTestSuite) TestListTagsSortedByName() {
	_, err := suite.repo.GetOrCreateTags([]string{"transfers", "final", "season"})
	suite.NoError(err)

	tags, err := suite.repo.ListTags()

	suite.NoError(err)
	suite.Len(tags, 3)
	suite.Equal("final", tags[0].Name)
	suite.Equal("season", tags[1].Name)
	suite.Equal("transfers", tags[2].Name)
}

// Run the test suite
func TestNewsRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NewsRepositoryTestSuite))
}
