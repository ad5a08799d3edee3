package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"black-bears-backend/internal/api/handlers"
	apperrors "black-bears-backend/internal/errors"
	"black-bears-backend/internal/mocks"
	"black-bears-backend/internal/service"
	"black-bears-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// PlayerHandlerTestSuite defines the test suite for PlayerHandler
type PlayerHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockPlayerServiceInterface
	handler     *handlers.PlayerHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *PlayerHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockPlayerServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewPlayerHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	players := v1.Group("/players")
	{
		players.GET("/", suite.handler.ListPlayers)
		players.POST("/", suite.handler.CreatePlayer)
		players.GET("/:id", suite.handler.GetPlayer)
		players.PUT("/:id", suite.handler.UpdatePlayer)
	}
}

// TearDownTest cleans up after each test
func (suite *PlayerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListPlayers tests the ListPlayers handler
func (suite *PlayerHandlerTestSuite) TestListPlayers() {
	// Test query parameter decoding
	suite.T().Run("Decodes Query Parameters", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(params service.ListPlayersParams) (*service.PlayerListResponse, error) {
				assert.Equal(t, "female", params.Gender)
				assert.Equal(t, "volk", params.Search)
				assert.Equal(t, "points", params.SortBy)
				assert.Equal(t, 5, *params.MinGames)
				assert.Equal(t, 10, params.Skip)
				assert.Equal(t, 20, params.Limit)
				return &service.PlayerListResponse{Players: []service.PlayerResponse{}, Skip: 10, Limit: 20}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET",
			"/api/v1/players/?gender=female&search=volk&sort_by=points&min_games=5&skip=10&limit=20", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	// Test default sort key
	suite.T().Run("Defaults Sort To Name", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any()).
			DoAndReturn(func(params service.ListPlayersParams) (*service.PlayerListResponse, error) {
				assert.Equal(t, "name", params.SortBy)
				assert.Nil(t, params.MinGames)
				return &service.PlayerListResponse{Players: []service.PlayerResponse{}, Limit: 100}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	// Test malformed min_games
	suite.T().Run("Invalid Min Games", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/?min_games=abc", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid min_games")
	})
}

// TestCreatePlayer tests the CreatePlayer handler
func (suite *PlayerHandlerTestSuite) TestCreatePlayer() {
	// Test successful player creation
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name": "Иван",
			"last_name":  "Петров",
			"gender":     "male",
			"number":     7,
			"position":   "guard",
			"height":     192.0,
			"weight":     88.0,
			"birth_date": "2000-03-15",
		}

		expectedResponse := &service.PlayerResponse{
			ID:        1,
			FirstName: "Иван",
			LastName:  "Петров",
			Gender:    "male",
			Number:    7,
			Position:  "guard",
			Height:    192,
			Weight:    88,
			BirthDate: "2000-03-15",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/players/", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.LastName, response.LastName)
		assert.Zero(t, response.TotalPoints)
	})

	// Test validation error from the service
	suite.T().Run("Validation Error", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"first_name": "Иван",
			"last_name":  "Петров",
			"gender":     "other",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.NewValidationError("gender", "must be male or female")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/players/", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "validation error")
	})

	// Test invalid JSON
	suite.T().Run("Invalid JSON", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/api/v1/players/", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetPlayer tests the GetPlayer handler
func (suite *PlayerHandlerTestSuite) TestGetPlayer() {
	// Test successful retrieval
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := &service.PlayerResponse{
			ID:        3,
			FirstName: "Иван",
			LastName:  "Петров",
			Gender:    "male",
			BirthDate: "2000-03-15",
		}

		suite.mockService.EXPECT().
			GetByID(uint(3)).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/3", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, uint(3), response.ID)
	})

	// Test player not found
	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(uint(99)).
			Return(nil, apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/99", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "player not found")
	})

	// Test non-numeric ID
	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/players/abc", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid id")
	})
}

// TestUpdatePlayer tests the UpdatePlayer handler
func (suite *PlayerHandlerTestSuite) TestUpdatePlayer() {
	// Test successful partial update
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"total_points": 120,
		}

		expectedResponse := &service.PlayerResponse{
			ID:          3,
			FirstName:   "Иван",
			LastName:    "Петров",
			Gender:      "male",
			BirthDate:   "2000-03-15",
			TotalPoints: 120,
		}

		suite.mockService.EXPECT().
			Update(uint(3), gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/players/3", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.PlayerResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 120, response.TotalPoints)
	})

	// Test player not found
	suite.T().Run("Not Found", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"total_points": 120,
		}

		suite.mockService.EXPECT().
			Update(uint(99), gomock.Any()).
			Return(nil, apperrors.ErrPlayerNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/players/99", requestBody)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

// TestPlayerHandlerTestSuite runs the test suite
func TestPlayerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerHandlerTestSuite))
}
