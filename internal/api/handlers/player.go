package handlers

import (
	"net/http"
	"strconv"

	"black-bears-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlayerHandler handles HTTP requests for player operations
type PlayerHandler struct {
	playerService service.PlayerServiceInterface
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerService service.PlayerServiceInterface) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// ListPlayers handles GET /players
// @Summary List players
// @Description Get players with optional gender, name search, minimum-games filters and sorting
// @Tags players
// @Accept json
// @Produce json
// @Param gender query string false "Gender filter (male or female)"
// @Param search query string false "Case-insensitive substring match on first or last name"
// @Param min_games query int false "Minimum games played"
// @Param sort_by query string false "Sort key: name, points, rebounds, assists, steals, blocks" default(name)
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Maximum number of items" default(100)
// @Success 200 {object} service.PlayerListResponse "Successfully retrieved players"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players [get]
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	params := service.ListPlayersParams{
		Gender: c.Query("gender"),
		Search: c.Query("search"),
		SortBy: c.DefaultQuery("sort_by", "name"),
		Skip:   skip,
		Limit:  limit,
	}
	if minGamesStr := c.Query("min_games"); minGamesStr != "" {
		minGames, err := strconv.Atoi(minGamesStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_games"})
			return
		}
		params.MinGames = &minGames
	}

	resp, err := h.playerService.List(params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreatePlayer handles POST /players
// @Summary Create a new player
// @Description Create a roster player; season statistics start at zero
// @Tags players
// @Accept json
// @Produce json
// @Param player body service.CreatePlayerRequest true "Player data"
// @Success 201 {object} service.PlayerResponse "Successfully created player"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players [post]
func (h *PlayerHandler) CreatePlayer(c *gin.Context) {
	var req service.CreatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, player)
}

// GetPlayer handles GET /players/:id
// @Summary Get player by ID
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Success 200 {object} service.PlayerResponse "Successfully retrieved player"
// @Failure 400 {object} ErrorResponse "Invalid player ID"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/{id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	player, err := h.playerService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}

// UpdatePlayer handles PUT /players/:id
// @Summary Update a player
// @Description Apply a partial update; only supplied fields change
// @Tags players
// @Accept json
// @Produce json
// @Param id path int true "Player ID"
// @Param player body service.UpdatePlayerRequest true "Fields to update"
// @Success 200 {object} service.PlayerResponse "Successfully updated player"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /players/{id} [put]
func (h *PlayerHandler) UpdatePlayer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player, err := h.playerService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, player)
}
