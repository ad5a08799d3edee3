package repository

import (
	"black-bears-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// Ensure TeamRepository implements TeamRepositoryInterface
var _ TeamRepositoryInterface = (*TeamRepository)(nil)

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves teams, optionally scoped to a gender, with pagination
func (r *TeamRepository) List(gender *models.Gender, limit, offset int) ([]models.Team, int64, error) {
	var teams []models.Team
	var total int64

	query := r.db.Model(&models.Team{})
	if gender != nil {
		query = query.Where("gender = ?", *gender)
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get paginated results
	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&teams).Error
	if err != nil {
		return nil, 0, err
	}

	return teams, total, nil
}

// Standings retrieves the ranked team listing for a gender division.
// Unranked teams (current_position IS NULL) sort last.
func (r *TeamRepository) Standings(gender models.Gender) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.
		Where("gender = ?", gender).
		Order("current_position ASC NULLS LAST").
		Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uint) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
