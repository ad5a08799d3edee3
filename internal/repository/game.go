package repository

import (
	"time"

	"black-bears-backend/internal/database/models"

	"gorm.io/gorm"
)

// GameRepository handles database operations for games
type GameRepository struct {
	db *gorm.DB
}

// Ensure GameRepository implements GameRepositoryInterface
var _ GameRepositoryInterface = (*GameRepository)(nil)

// NewGameRepository creates a new game repository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create creates a new game
func (r *GameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

// GetByID retrieves a game by ID
func (r *GameRepository) GetByID(id uint) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

// applyFilter composes the shared game predicates onto a query.
// Date bounds are inclusive.
func applyFilter(query *gorm.DB, filter GameFilter) *gorm.DB {
	if filter.Gender != nil {
		query = query.Where("gender = ?", *filter.Gender)
	}
	if filter.TeamName != "" {
		query = query.Where("team_name = ?", filter.TeamName)
	}
	if filter.StartDate != nil {
		query = query.Where("date_time >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date_time <= ?", *filter.EndDate)
	}
	return query
}

// List retrieves games matching the filter, newest first, with pagination
func (r *GameRepository) List(filter GameFilter, limit, offset int) ([]models.Game, int64, error) {
	var games []models.Game
	var total int64

	query := applyFilter(r.db.Model(&models.Game{}), filter)

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("date_time DESC").Limit(limit).Offset(offset).Find(&games).Error
	if err != nil {
		return nil, 0, err
	}

	return games, total, nil
}

// Upcoming retrieves games scheduled at or after now, soonest first
func (r *GameRepository) Upcoming(filter GameFilter, now time.Time, limit int) ([]models.Game, error) {
	var games []models.Game
	err := applyFilter(r.db.Model(&models.Game{}), filter).
		Where("date_time >= ?", now).
		Order("date_time ASC").
		Limit(limit).
		Find(&games).Error
	return games, err
}

// Results retrieves played games (both scores recorded), newest first
func (r *GameRepository) Results(filter GameFilter, now time.Time, limit int) ([]models.Game, error) {
	var games []models.Game
	err := applyFilter(r.db.Model(&models.Game{}), filter).
		Where("date_time < ?", now).
		Where("score_black_bears IS NOT NULL AND score_opponent IS NOT NULL").
		Order("date_time DESC").
		Limit(limit).
		Find(&games).Error
	return games, err
}

// Update updates a game
func (r *GameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}
