package models

import (
	"time"
)

// Player represents a roster player with cumulative season statistics
type Player struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FirstName string    `json:"first_name" gorm:"not null" validate:"required"`
	LastName  string    `json:"last_name" gorm:"not null" validate:"required"`
	Gender    Gender    `json:"gender" gorm:"not null" validate:"required,oneof=male female"`
	Number    int       `json:"number" gorm:"not null"`
	Position  string    `json:"position" gorm:"not null"`
	Height    float64   `json:"height" gorm:"not null"` // centimeters
	Weight    float64   `json:"weight" gorm:"not null"` // kilograms
	BirthDate time.Time `json:"birth_date" gorm:"type:date;not null"`
	Biography string    `json:"biography"`
	ImageURL  string    `json:"image_url"`

	// Season statistics
	GamesPlayed    int `json:"games_played" gorm:"default:0"`
	TotalPoints    int `json:"total_points" gorm:"default:0"`
	TotalRebounds  int `json:"total_rebounds" gorm:"default:0"`
	TotalAssists   int `json:"total_assists" gorm:"default:0"`
	TotalSteals    int `json:"total_steals" gorm:"default:0"`
	TotalBlocks    int `json:"total_blocks" gorm:"default:0"`
	TotalTurnovers int `json:"total_turnovers" gorm:"default:0"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
