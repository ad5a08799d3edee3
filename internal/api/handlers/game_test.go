package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"black-bears-backend/internal/api/handlers"
	apperrors "black-bears-backend/internal/errors"
	"black-bears-backend/internal/mocks"
	"black-bears-backend/internal/service"
	"black-bears-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// GameHandlerTestSuite defines the test suite for GameHandler
type GameHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockGameServiceInterface
	handler     *handlers.GameHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *GameHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockGameServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewGameHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	games := v1.Group("/games")
	{
		games.GET("/", suite.handler.ListGames)
		games.POST("/", suite.handler.CreateGame)
		games.GET("/upcoming", suite.handler.UpcomingGames)
		games.GET("/results", suite.handler.GameResults)
		games.GET("/:id", suite.handler.GetGame)
		games.PUT("/:id", suite.handler.UpdateGame)
	}
}

// TearDownTest cleans up after each test
func (suite *GameHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListGames tests the ListGames handler
func (suite *GameHandlerTestSuite) TestListGames() {
	// Test date range decoding
	suite.T().Run("Decodes Date Range", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(params service.ListGamesParams) (*service.GameListResponse, error) {
				assert.Equal(t, "male", params.Gender)
				assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), params.StartDate.UTC())
				assert.Equal(t, time.Date(2026, 6, 30, 23, 59, 59, 0, time.UTC), params.EndDate.UTC())
				return &service.GameListResponse{Games: []service.GameResponse{}, Limit: 100}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET",
			"/api/v1/games/?gender=male&start_date=2026-01-01T00:00:00Z&end_date=2026-06-30T23:59:59Z", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	// Test malformed start_date
	suite.T().Run("Invalid Start Date", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/games/?start_date=01.06.2026", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid start_date")
	})
}

// TestUpcomingGames tests the UpcomingGames handler
func (suite *GameHandlerTestSuite) TestUpcomingGames() {
	suite.T().Run("Defaults Limit To Ten", func(t *testing.T) {
		suite.mockService.EXPECT().
			Upcoming(gomock.Any()).
			DoAndReturn(func(params service.ListGamesParams) ([]service.GameResponse, error) {
				assert.Equal(t, 10, params.Limit)
				return []service.GameResponse{}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/games/upcoming", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestGameResults tests the GameResults handler
func (suite *GameHandlerTestSuite) TestGameResults() {
	suite.T().Run("Success", func(t *testing.T) {
		ours, theirs := 84, 79
		suite.mockService.EXPECT().
			Results(gomock.Any()).
			Return([]service.GameResponse{
				{ID: 1, Gender: "male", TeamName: "Black Bears", ScoreBlackBears: &ours, ScoreOpponent: &theirs},
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/games/results", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.GameResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 1)
		assert.Equal(t, 84, *response[0].ScoreBlackBears)
	})
}

// TestCreateGame tests the CreateGame handler
func (suite *GameHandlerTestSuite) TestCreateGame() {
	// Test successful game creation
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"gender":       "male",
			"team_name":    "Black Bears",
			"date_time":    "2026-09-12T18:00:00Z",
			"location":     "Home Arena",
			"is_home_game": true,
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(&service.GameResponse{
				ID:         1,
				Gender:     "male",
				TeamName:   "Black Bears",
				DateTime:   time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
				Location:   "Home Arena",
				IsHomeGame: true,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/games/", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.GameResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, "Black Bears", response.TeamName)
	})

	// Test gender mismatch against the referenced team
	suite.T().Run("Gender Mismatch", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"gender":       "female",
			"team_name":    "Eagles",
			"date_time":    "2026-09-12T18:00:00Z",
			"location":     "Home Arena",
			"is_home_game": true,
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrGenderMismatch).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/games/", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "does not match the team gender")
	})

	// Test unknown team
	suite.T().Run("Team Not Found", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"gender":       "male",
			"team_name":    "Ghosts",
			"date_time":    "2026-09-12T18:00:00Z",
			"location":     "Home Arena",
			"is_home_game": true,
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/games/", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})
}

// TestUpdateGame tests the UpdateGame handler
func (suite *GameHandlerTestSuite) TestUpdateGame() {
	// Test recording a final score
	suite.T().Run("Records Score", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"score_black_bears": 91,
			"score_opponent":    88,
		}

		ours, theirs := 91, 88
		suite.mockService.EXPECT().
			Update(uint(1), gomock.Any()).
			Return(&service.GameResponse{
				ID:              1,
				Gender:          "male",
				TeamName:        "Black Bears",
				ScoreBlackBears: &ours,
				ScoreOpponent:   &theirs,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/games/1", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.GameResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 91, *response.ScoreBlackBears)
	})

	// Test game not found
	suite.T().Run("Not Found", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"location": "Away Arena",
		}

		suite.mockService.EXPECT().
			Update(uint(99), gomock.Any()).
			Return(nil, apperrors.ErrGameNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/games/99", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestGameHandlerTestSuite runs the test suite
func TestGameHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GameHandlerTestSuite))
}
