package models

// Team represents a club team with its standings counters.
// Name is the natural key referenced by Game.TeamName.
type Team struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Name    string `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Gender  Gender `json:"gender" gorm:"not null" validate:"required,oneof=male female"`
	LogoURL string `json:"logo_url"`

	// Standings counters
	GamesPlayed     int  `json:"games_played" gorm:"default:0"`
	Wins            int  `json:"wins" gorm:"default:0"`
	Losses          int  `json:"losses" gorm:"default:0"`
	PointsScored    int  `json:"points_scored" gorm:"default:0"`
	PointsConceded  int  `json:"points_conceded" gorm:"default:0"`
	CurrentPosition *int `json:"current_position"` // league rank, nil until assigned

	// Derived fields, refreshed by Recalculate on every write touching the counters
	WinPercentage    float64 `json:"win_percentage" gorm:"default:0"`
	PointsDifference int     `json:"points_difference" gorm:"default:0"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// Recalculate refreshes the derived standings fields from the counters.
func (t *Team) Recalculate() {
	if t.GamesPlayed > 0 {
		t.WinPercentage = float64(t.Wins) / float64(t.GamesPlayed)
	} else {
		t.WinPercentage = 0
	}
	t.PointsDifference = t.PointsScored - t.PointsConceded
}
