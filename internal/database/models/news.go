package models

import (
	"time"
)

// News represents a published news item with its tag set
type News struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"not null" validate:"required"`
	Content   string    `json:"content" gorm:"not null" validate:"required"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Tags []Tag `json:"tags" gorm:"many2many:news_tags"`
}

// TableName returns the table name for News
func (News) TableName() string {
	return "news"
}

// Tag is a unique label attached to news items, created on first reference
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
