package models

import (
	"time"
)

// Game represents a scheduled or played game. TeamName references Team.Name
// and the game's gender must match the referenced team's gender.
type Game struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Gender     Gender    `json:"gender" gorm:"not null" validate:"required,oneof=male female"`
	TeamName   string    `json:"team_name" gorm:"not null;index" validate:"required"`
	DateTime   time.Time `json:"date_time" gorm:"not null;index"`
	Location   string    `json:"location" gorm:"not null"`
	IsHomeGame bool      `json:"is_home_game" gorm:"not null"`

	// Final score, nil until the game is played
	ScoreBlackBears *int `json:"score_black_bears"`
	ScoreOpponent   *int `json:"score_opponent"`
}

// TableName returns the table name for Game
func (Game) TableName() string {
	return "games"
}

// IsPlayed reports whether both final scores have been recorded.
func (g *Game) IsPlayed() bool {
	return g.ScoreBlackBears != nil && g.ScoreOpponent != nil
}
