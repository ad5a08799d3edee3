package repository

import (
	"errors"

	"black-bears-backend/internal/database/models"

	"gorm.io/gorm"
)

// NewsRepository handles database operations for news items and tags
type NewsRepository struct {
	db *gorm.DB
}

// Ensure NewsRepository implements NewsRepositoryInterface
var _ NewsRepositoryInterface = (*NewsRepository)(nil)

// NewNewsRepository creates a new news repository
func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// Create creates a news item together with its tag associations
func (r *NewsRepository) Create(news *models.News) error {
	return r.db.Create(news).Error
}

// GetByID retrieves a news item with its tags
func (r *NewsRepository) GetByID(id uint) (*models.News, error) {
	var news models.News
	err := r.db.Preload("Tags").First(&news, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &news, nil
}

// List retrieves news items, newest first, with pagination. A non-empty tag
// set matches any item whose tags intersect it; an empty set matches all items.
func (r *NewsRepository) List(tags []string, limit, offset int) ([]models.News, int64, error) {
	var news []models.News
	var total int64

	query := r.db.Model(&models.News{})
	if len(tags) > 0 {
		query = query.
			Joins("JOIN news_tags ON news_tags.news_id = news.id").
			Joins("JOIN tags ON tags.id = news_tags.tag_id").
			Where("tags.name IN ?", tags).
			Distinct("news.id")
	}

	// Get total count
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Distinct("news.id") narrows the select list; reset it for the page query
	err := query.Select("news.*").
		Preload("Tags").
		Order("news.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&news).Error
	if err != nil {
		return nil, 0, err
	}

	return news, total, nil
}

// Update updates the scalar fields of a news item
func (r *NewsRepository) Update(news *models.News) error {
	return r.db.Omit("Tags").Save(news).Error
}

// ReplaceTags overwrites the tag set of a news item wholesale
func (r *NewsRepository) ReplaceTags(news *models.News, tags []models.Tag) error {
	return r.db.Model(news).Association("Tags").Replace(tags)
}

// GetOrCreateTags resolves tag names, creating missing tags on first reference
func (r *NewsRepository) GetOrCreateTags(names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	for _, name := range names {
		var tag models.Tag
		err := r.db.First(&tag, "name = ?", name).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			tag = models.Tag{Name: name}
			err = r.db.Create(&tag).Error
		}
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// ListTags retrieves all tags
func (r *NewsRepository) ListTags() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, err
}
