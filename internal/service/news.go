package service

import (
	"errors"
	"fmt"
	"time"

	"black-bears-backend/internal/database/models"
	apperrors "black-bears-backend/internal/errors"
	"black-bears-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// NewsService handles business logic for news items and tags
type NewsService struct {
	repo      repository.NewsRepositoryInterface
	validator *validator.Validate
}

// Ensure NewsService implements NewsServiceInterface
var _ NewsServiceInterface = (*NewsService)(nil)

// NewNewsService creates a new news service
func NewNewsService(repo repository.NewsRepositoryInterface, validator *validator.Validate) *NewsService {
	return &NewsService{
		repo:      repo,
		validator: validator,
	}
}

// CreateNewsRequest represents the request to create a news item
type CreateNewsRequest struct {
	Title    string   `json:"title" validate:"required"`
	Content  string   `json:"content" validate:"required"`
	ImageURL string   `json:"image_url,omitempty"`
	Tags     []string `json:"tags" validate:"dive,required"`
}

// UpdateNewsRequest represents a partial update. A supplied tag list replaces
// the stored set wholesale; tags are never merged.
type UpdateNewsRequest struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	ImageURL *string   `json:"image_url,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// NewsResponse represents a news item in API responses
type NewsResponse struct {
	ID        uint          `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	ImageURL  string        `json:"image_url,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Tags      []TagResponse `json:"tags"`
}

// NewsListResponse represents a paginated list of news items
type NewsListResponse struct {
	News  []NewsResponse `json:"news"`
	Total int64          `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}

// Create creates a news item, resolving each tag name get-or-create style
func (s *NewsService) Create(req *CreateNewsRequest) (*NewsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	tags, err := s.repo.GetOrCreateTags(req.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tags: %w", err)
	}

	news := &models.News{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		Tags:     tags,
	}

	if err := s.repo.Create(news); err != nil {
		return nil, fmt.Errorf("failed to create news: %w", err)
	}

	return s.toResponse(news), nil
}

// GetByID retrieves a news item by ID
func (s *NewsService) GetByID(id uint) (*NewsResponse, error) {
	news, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news: %w", err)
	}

	return s.toResponse(news), nil
}

// List retrieves news items. An empty tag set returns the unfiltered feed;
// a non-empty set matches items whose tags intersect it.
func (s *NewsService) List(tags []string, skip, limit int) (*NewsListResponse, error) {
	skip, limit = normalizePage(skip, limit)

	news, total, err := s.repo.List(tags, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}

	responses := make([]NewsResponse, len(news))
	for i, item := range news {
		responses[i] = *s.toResponse(&item)
	}

	return &NewsListResponse{
		News:  responses,
		Total: total,
		Skip:  skip,
		Limit: limit,
	}, nil
}

// Update applies a partial update to a news item
func (s *NewsService) Update(id uint, req *UpdateNewsRequest) (*NewsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	news, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to get news: %w", err)
	}

	if req.Tags != nil {
		tags, err := s.repo.GetOrCreateTags(*req.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve tags: %w", err)
		}
		if err := s.repo.ReplaceTags(news, tags); err != nil {
			return nil, fmt.Errorf("failed to replace tags: %w", err)
		}
		news.Tags = tags
	}

	if req.Title != nil {
		news.Title = *req.Title
	}
	if req.Content != nil {
		news.Content = *req.Content
	}
	if req.ImageURL != nil {
		news.ImageURL = *req.ImageURL
	}

	if err := s.repo.Update(news); err != nil {
		return nil, fmt.Errorf("failed to update news: %w", err)
	}

	return s.toResponse(news), nil
}

// ListTags retrieves all tags
func (s *NewsService) ListTags() ([]TagResponse, error) {
	tags, err := s.repo.ListTags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	responses := make([]TagResponse, len(tags))
	for i, tag := range tags {
		responses[i] = TagResponse{ID: tag.ID, Name: tag.Name}
	}
	return responses, nil
}

// toResponse converts a News model to API response
func (s *NewsService) toResponse(news *models.News) *NewsResponse {
	tags := make([]TagResponse, len(news.Tags))
	for i, tag := range news.Tags {
		tags[i] = TagResponse{ID: tag.ID, Name: tag.Name}
	}

	return &NewsResponse{
		ID:        news.ID,
		Title:     news.Title,
		Content:   news.Content,
		ImageURL:  news.ImageURL,
		CreatedAt: news.CreatedAt,
		UpdatedAt: news.UpdatedAt,
		Tags:      tags,
	}
}
