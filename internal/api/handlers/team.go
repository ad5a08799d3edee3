package handlers

import (
	"net/http"
	"strconv"

	"black-bears-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description Get teams with optional gender filtering
// @Tags teams
// @Accept json
// @Produce json
// @Param gender query string false "Gender filter (male or female)"
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Maximum number of items" default(100)
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	resp, err := h.teamService.List(c.Query("gender"), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetTeamStats handles GET /teams/:id/stats
// @Summary Get team standings counters
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/stats [get]
func (h *TeamHandler) GetTeamStats(c *gin.Context) {
	h.GetTeam(c)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Apply a partial update; derived standings fields are recomputed
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param team body service.UpdateTeamRequest true "Fields to update"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// UpdateTeamPosition handles PUT /teams/:id/position
// @Summary Set the team's standings position
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Param position query int true "League position (rank)"
// @Success 200 {object} service.TeamResponse "Successfully updated position"
// @Failure 400 {object} ErrorResponse "Invalid position"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id}/position [put]
func (h *TeamHandler) UpdateTeamPosition(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	position, err := strconv.Atoi(c.Query("position"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid position"})
		return
	}

	team, err := h.teamService.UpdatePosition(id, position)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path int true "Team ID"
// @Success 200 {object} map[string]interface{} "Successfully deleted team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "team deleted successfully"})
}

// GetStandings handles GET /teams/standings/:gender
// @Summary Get the standings for a gender division
// @Description Teams ordered by current position; unranked teams sort last
// @Tags teams
// @Accept json
// @Produce json
// @Param gender path string true "Gender division (male or female)"
// @Success 200 {array} service.TeamResponse "Successfully retrieved standings"
// @Failure 400 {object} ErrorResponse "Invalid gender"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/standings/{gender} [get]
func (h *TeamHandler) GetStandings(c *gin.Context) {
	standings, err := h.teamService.Standings(c.Param("gender"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, standings)
}
