package repository

import (
	"black-bears-backend/internal/database/models"

	"gorm.io/gorm"
)

// LeaderboardRepository handles database operations for leaderboard entries
type LeaderboardRepository struct {
	db *gorm.DB
}

// Ensure LeaderboardRepository implements LeaderboardRepositoryInterface
var _ LeaderboardRepositoryInterface = (*LeaderboardRepository)(nil)

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(db *gorm.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// Create creates a new leaderboard entry
func (r *LeaderboardRepository) Create(entry *models.LeaderboardEntry) error {
	return r.db.Create(entry).Error
}

// GetByID retrieves a leaderboard entry by ID
func (r *LeaderboardRepository) GetByID(id uint) (*models.LeaderboardEntry, error) {
	var entry models.LeaderboardEntry
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List retrieves all leaderboard entries ordered by position
func (r *LeaderboardRepository) List() ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	err := r.db.Order("position ASC").Find(&entries).Error
	return entries, err
}

// Update updates a leaderboard entry
func (r *LeaderboardRepository) Update(entry *models.LeaderboardEntry) error {
	return r.db.Save(entry).Error
}

// Delete deletes a leaderboard entry
func (r *LeaderboardRepository) Delete(id uint) error {
	return r.db.Delete(&models.LeaderboardEntry{}, "id = ?", id).Error
}

// ReplaceAll swaps the whole snapshot in one transaction
func (r *LeaderboardRepository) ReplaceAll(entries []models.LeaderboardEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.LeaderboardEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}
