package handlers_test

import (
	"net/http"
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

// NewsHandlerTestSuite defines the test suite for NewsHandler
type NewsHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNewsServiceInterface
	handler     *handlers.NewsHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *NewsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNewsServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewNewsHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	news := v1.Group("/news")
	{
		news.GET("/", suite.handler.ListNews)
		news.POST("/", suite.handler.CreateNews)
		news.GET("/tags/", suite.handler.ListTags)
		news.GET("/:id", suite.handler.GetNews)
		news.PUT("/:id", suite.handler.UpdateNews)
	}
}

// TearDownTest cleans up after each test
func (suite *NewsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListNews tests the ListNews handler
func (suite *NewsHandlerTestSuite) TestListNews() {
	// Test repeated tags parameters
	suite.T().Run("Decodes Repeated Tags", func(t *testing.T) {
		suite.mockService.EXPECT().
			List([]string{"season", "playoffs"}, 0, 100).
			Return(&service.NewsListResponse{News: []service.NewsResponse{}, Limit: 100}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/news/?tags=season&tags=playoffs", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	// Test unfiltered feed
	suite.T().Run("No Tags Returns Whole Feed", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Len(0), 0, 100).
			Return(&service.NewsListResponse{
				News:  []service.NewsResponse{{ID: 1, Title: "Сезон открыт"}},
				Total: 1,
				Limit: 100,
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/news/", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.NewsListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.News, 1)
	})
}

// TestCreateNews tests the CreateNews handler
func (suite *NewsHandlerTestSuite) TestCreateNews() {
	// Test successful creation with tags
	suite.T().Run("Success", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"title":   "Сезон открыт",
			"content": "Первая игра сезона состоится в субботу.",
			"tags":    []string{"season"},
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(&service.NewsResponse{
				ID:      1,
				Title:   "Сезон открыт",
				Content: "Первая игра сезона состоится в субботу.",
				Tags:    []service.TagResponse{{ID: 1, Name: "season"}},
			}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/news/", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.NewsResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Tags, 1)
		assert.Equal(t, "season", response.Tags[0].Name)
	})

	// Test missing required fields
	suite.T().Run("Validation Error", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"content": "Текст без заголовка",
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.NewValidationError("title", "is required")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/news/", requestBody)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetNews tests the GetNews handler
func (suite *NewsHandlerTestSuite) TestGetNews() {
	suite.T().Run("Not Found", func(t *testing.T) {
		suite.mockService.EXPECT().
			GetByID(uint(404)).
			Return(nil, apperrors.ErrNewsNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/news/404", nil)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "news item not found")
	})
}

// TestUpdateNews tests the UpdateNews handler
func (suite *NewsHandlerTestSuite) TestUpdateNews() {
	suite.T().Run("Replaces Tags", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"tags": []string{"final"},
		}

		suite.mockService.EXPECT().
			Update(uint(1), gomock.Any()).
			DoAndReturn(func(id uint, req *service.UpdateNewsRequest) (*service.NewsResponse, error) {
				assert.NotNil(t, req.Tags)
				assert.Equal(t, []string{"final"}, *req.Tags)
				return &service.NewsResponse{
					ID:    1,
					Title: "Сезон открыт",
					Tags:  []service.TagResponse{{ID: 3, Name: "final"}},
				}, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/news/1", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

// TestListTags tests the ListTags handler
func (suite *NewsHandlerTestSuite) TestListTags() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListTags().
			Return([]service.TagResponse{{ID: 3, Name: "final"}, {ID: 1, Name: "season"}}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/news/tags/", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response []service.TagResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response, 2)
	})
}

// TestNewsHandlerTestSuite runs the test suite
func TestNewsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NewsHandlerTestSuite))
}
