package repository

import (
	"black-bears-backend/internal/database/models"

	"gorm.io/gorm"
)

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// Ensure PlayerRepository implements PlayerRepositoryInterface
var _ PlayerRepositoryInterface = (*PlayerRepository)(nil)

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// statOrderings maps sort keys to orderings. Statistical sorts are descending;
// anything not listed falls back to the name ordering.
var statOrderings = map[string]string{
	"points":   "total_points DESC",
	"rebounds": "total_rebounds DESC",
	"assists":  "total_assists DESC",
	"steals":   "total_steals DESC",
	"blocks":   "total_blocks DESC",
}

// Create creates a new player
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id uint) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// List retrieves players matching the filter with pagination
func (r *PlayerRepository) List(filter PlayerFilter, limit, offset int) ([]models.Player, int64, error) {
	var players []models.Player
	var total int64

	query := r.db.Model(&models.Player{})
	if filter.Gender != nil {
		query = query.Where("gender = ?", *filter.Gender)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern)
	}
	if filter.MinGames != nil {
		query = query.Where("games_played >= ?", *filter.MinGames)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	ordering, ok := statOrderings[filter.SortBy]
	if !ok {
		ordering = "last_name ASC, first_name ASC"
	}

	// Get paginated results
	err := query.Order(ordering).Limit(limit).Offset(offset).Find(&players).Error
	if err != nil {
		return nil, 0, err
	}

	return players, total, nil
}

// Update updates a player
func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// Delete deletes a player
func (r *PlayerRepository) Delete(id uint) error {
	return r.db.Delete(&models.Player{}, "id = ?", id).Error
}
