package handlers

import (
	"net/http"

	"black-bears-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LeaderboardHandler handles HTTP requests for leaderboard operations
type LeaderboardHandler struct {
	leaderboardService service.LeaderboardServiceInterface
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService service.LeaderboardServiceInterface) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
	}
}

// ListLeaderboard handles GET /leaderboard
// @Summary List leaderboard entries
// @Description Get all leaderboard entries ordered by position
// @Tags leaderboard
// @Accept json
// @Produce json
// @Success 200 {array} service.LeaderboardEntryResponse "Successfully retrieved leaderboard"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leaderboard [get]
func (h *LeaderboardHandler) ListLeaderboard(c *gin.Context) {
	entries, err := h.leaderboardService.List()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

// CreateLeaderboardEntry handles POST /leaderboard
// @Summary Create a leaderboard entry
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param entry body service.CreateLeaderboardEntryRequest true "Entry data"
// @Success 201 {object} service.LeaderboardEntryResponse "Successfully created entry"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leaderboard [post]
func (h *LeaderboardHandler) CreateLeaderboardEntry(c *gin.Context) {
	var req service.CreateLeaderboardEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.leaderboardService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// UpdateLeaderboardEntry handles PUT /leaderboard/:id
// @Summary Update a leaderboard entry
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param entry body service.UpdateLeaderboardEntryRequest true "Fields to update"
// @Success 200 {object} service.LeaderboardEntryResponse "Successfully updated entry"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leaderboard/{id} [put]
func (h *LeaderboardHandler) UpdateLeaderboardEntry(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req service.UpdateLeaderboardEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.leaderboardService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DeleteLeaderboardEntry handles DELETE /leaderboard/:id
// @Summary Delete a leaderboard entry
// @Description Removes the entry and returns the removed row
// @Tags leaderboard
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} service.LeaderboardEntryResponse "Successfully deleted entry"
// @Failure 400 {object} ErrorResponse "Invalid entry ID"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leaderboard/{id} [delete]
func (h *LeaderboardHandler) DeleteLeaderboardEntry(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	entry, err := h.leaderboardService.Delete(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// RebuildLeaderboard handles POST /leaderboard/rebuild
// @Summary Rebuild the leaderboard snapshot
// @Description Replaces the leaderboard with a snapshot derived from the authoritative team standings
// @Tags leaderboard
// @Accept json
// @Produce json
// @Success 200 {array} service.LeaderboardEntryResponse "Rebuilt leaderboard"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /leaderboard/rebuild [post]
func (h *LeaderboardHandler) RebuildLeaderboard(c *gin.Context) {
	entries, err := h.leaderboardService.Rebuild()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}
