package models

// LeaderboardEntry is a denormalized standings row. Team rows are the
// authoritative standings; the leaderboard table is a snapshot rebuilt from
// them by an explicit recomputation step.
type LeaderboardEntry struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name" gorm:"not null" validate:"required"`
	Gender   Gender `json:"gender" gorm:"not null" validate:"required,oneof=male female"`
	Games    int    `json:"games" gorm:"not null;default:0"`
	Wins     int    `json:"wins" gorm:"not null;default:0"`
	Losses   int    `json:"losses" gorm:"not null;default:0"`
	Scored   int    `json:"scored" gorm:"not null;default:0"`
	Conceded int    `json:"conceded" gorm:"not null;default:0"`
	Position int    `json:"position" gorm:"not null;default:0"`
}

// TableName returns the table name for LeaderboardEntry
func (LeaderboardEntry) TableName() string {
	return "leaderboard"
}
