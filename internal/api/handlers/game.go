package handlers

import (
	"net/http"
	"strconv"
	"time"

	"black-bears-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GameHandler handles HTTP requests for game operations
type GameHandler struct {
	gameService service.GameServiceInterface
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService service.GameServiceInterface) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// listParams decodes the shared game-listing query parameters
func (h *GameHandler) listParams(c *gin.Context, defaultLimit string) (service.ListGamesParams, bool) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", defaultLimit))

	params := service.ListGamesParams{
		Gender:   c.Query("gender"),
		TeamName: c.Query("team_name"),
		Skip:     skip,
		Limit:    limit,
	}

	if startStr := c.Query("start_date"); startStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
			return params, false
		}
		params.StartDate = &start
	}
	if endStr := c.Query("end_date"); endStr != "" {
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date"})
			return params, false
		}
		params.EndDate = &end
	}

	return params, true
}

// ListGames handles GET /games
// @Summary List games
// @Description Get games with optional gender, date range and team filters, newest first
// @Tags games
// @Accept json
// @Produce json
// @Param gender query string false "Gender filter (male or female)"
// @Param team_name query string false "Exact team name filter"
// @Param start_date query string false "Inclusive lower bound (RFC3339)"
// @Param end_date query string false "Inclusive upper bound (RFC3339)"
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Maximum number of items" default(100)
// @Success 200 {object} service.GameListResponse "Successfully retrieved games"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	params, ok := h.listParams(c, "100")
	if !ok {
		return
	}

	resp, err := h.gameService.List(params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpcomingGames handles GET /games/upcoming
// @Summary List upcoming games
// @Description Games scheduled from now on, soonest first
// @Tags games
// @Accept json
// @Produce json
// @Param gender query string false "Gender filter (male or female)"
// @Param team_name query string false "Exact team name filter"
// @Param limit query int false "Maximum number of items" default(10)
// @Success 200 {array} service.GameResponse "Successfully retrieved upcoming games"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /games/upcoming [get]
func (h *GameHandler) UpcomingGames(c *gin.Context) {
	params, ok := h.listParams(c, "10")
	if !ok {
		return
	}

	games, err := h.gameService.Upcoming(params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// GameResults handles GET /games/results
// @Summary List played games
// @Description Past games with both final scores recorded, newest first
// @Tags games
// @Accept json
// @Produce json
// @Param gender query string false "Gender filter (male or female)"
// @Param team_name query string false "Exact team name filter"
// @Param limit query int false "Maximum number of items" default(100)
// @Success 200 {array} service.GameResponse "Successfully retrieved results"
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /games/results [get]
func (h *GameHandler) GameResults(c *gin.Context) {
	params, ok := h.listParams(c, "100")
	if !ok {
		return
	}

	games, err := h.gameService.Results(params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, games)
}

// CreateGame handles POST /games
// @Summary Create a new game
// @Description The referenced team must exist and its gender must match the game's gender
// @Tags games
// @Accept json
// @Produce json
// @Param game body service.CreateGameRequest true "Game data"
// @Success 201 {object} service.GameResponse "Successfully created game"
// @Failure 400 {object} ErrorResponse "Invalid request body or gender mismatch"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req service.CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, game)
}

// GetGame handles GET /games/:id
// @Summary Get game by ID
// @Tags games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Success 200 {object} service.GameResponse "Successfully retrieved game"
// @Failure 400 {object} ErrorResponse "Invalid game ID"
// @Failure 404 {object} ErrorResponse "Game not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	game, err := h.gameService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}

// UpdateGame handles PUT /games/:id
// @Summary Update a game
// @Description Apply a partial update; team/gender changes are re-validated first
// @Tags games
// @Accept json
// @Produce json
// @Param id path int true "Game ID"
// @Param game body service.UpdateGameRequest true "Fields to update"
// @Success 200 {object} service.GameResponse "Successfully updated game"
// @Failure 400 {object} ErrorResponse "Invalid request body or gender mismatch"
// @Failure 404 {object} ErrorResponse "Game or team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /games/{id} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	game, err := h.gameService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, game)
}
