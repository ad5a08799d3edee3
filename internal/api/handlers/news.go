package handlers

import (
	"net/http"
	"strconv"

	"black-bears-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NewsHandler handles HTTP requests for news and tag operations
type NewsHandler struct {
	newsService service.NewsServiceInterface
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(newsService service.NewsServiceInterface) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
	}
}

// ListNews handles GET /news
// @Summary List news items
// @Description Get news items, newest first. Repeated tags parameters narrow the feed to items carrying any of the given tags; no tags returns the whole feed.
// @Tags news
// @Accept json
// @Produce json
// @Param tags query []string false "Tag names to filter by" collectionFormat(multi)
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Maximum number of items" default(100)
// @Success 200 {object} service.NewsListResponse "Successfully retrieved news"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /news [get]
func (h *NewsHandler) ListNews(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	resp, err := h.newsService.List(c.QueryArray("tags"), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateNews handles POST /news
// @Summary Create a news item
// @Description Tags are resolved get-or-create style by name
// @Tags news
// @Accept json
// @Produce json
// @Param news body service.CreateNewsRequest true "News data"
// @Success 201 {object} service.NewsResponse "Successfully created news"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /news [post]
func (h *NewsHandler) CreateNews(c *gin.Context) {
	var req service.CreateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news, err := h.newsService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, news)
}

// GetNews handles GET /news/:id
// @Summary Get news item by ID
// @Tags news
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Success 200 {object} service.NewsResponse "Successfully retrieved news item"
// @Failure 400 {object} ErrorResponse "Invalid news ID"
// @Failure 404 {object} ErrorResponse "News item not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /news/{id} [get]
func (h *NewsHandler) GetNews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	news, err := h.newsService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// UpdateNews handles PUT /news/:id
// @Summary Update a news item
// @Description Apply a partial update; a supplied tag list replaces the stored set wholesale
// @Tags news
// @Accept json
// @Produce json
// @Param id path int true "News ID"
// @Param news body service.UpdateNewsRequest true "Fields to update"
// @Success 200 {object} service.NewsResponse "Successfully updated news item"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "News item not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /news/{id} [put]
func (h *NewsHandler) UpdateNews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateNewsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	news, err := h.newsService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, news)
}

// ListTags handles GET /news/tags/
// @Summary List all tags
// @Tags news
// @Accept json
// @Produce json
// @Success 200 {array} service.TagResponse "Successfully retrieved tags"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /news/tags/ [get]
func (h *NewsHandler) ListTags(c *gin.Context) {
	tags, err := h.newsService.ListTags()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}
