package repository

import (
	"time"

	"black-bears-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PlayerFilter holds the predicate set and ordering for player listings
type PlayerFilter struct {
	Gender   *models.Gender
	Search   string
	MinGames *int
	SortBy   string
}

// GameFilter holds the predicate set for game listings
type GameFilter struct {
	Gender    *models.Gender
	TeamName  string
	StartDate *time.Time
	EndDate   *time.Time
}

// PlayerRepositoryInterface defines the interface for player repository operations
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id uint) (*models.Player, error)
	List(filter PlayerFilter, limit, offset int) ([]models.Player, int64, error)
	Update(player *models.Player) error
	Delete(id uint) error
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uint) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	List(gender *models.Gender, limit, offset int) ([]models.Team, int64, error)
	Standings(gender models.Gender) ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uint) error
}

// GameRepositoryInterface defines the interface for game repository operations
type GameRepositoryInterface interface {
	Create(game *models.Game) error
	GetByID(id uint) (*models.Game, error)
	List(filter GameFilter, limit, offset int) ([]models.Game, int64, error)
	Upcoming(filter GameFilter, now time.Time, limit int) ([]models.Game, error)
	Results(filter GameFilter, now time.Time, limit int) ([]models.Game, error)
	Update(game *models.Game) error
}

// NewsRepositoryInterface defines the interface for news repository operations
type NewsRepositoryInterface interface {
	Create(news *models.News) error
	GetByID(id uint) (*models.News, error)
	List(tags []string, limit, offset int) ([]models.News, int64, error)
	Update(news *models.News) error
	ReplaceTags(news *models.News, tags []models.Tag) error
	GetOrCreateTags(names []string) ([]models.Tag, error)
	ListTags() ([]models.Tag, error)
}

// LeaderboardRepositoryInterface defines the interface for leaderboard repository operations
type LeaderboardRepositoryInterface interface {
	Create(entry *models.LeaderboardEntry) error
	GetByID(id uint) (*models.LeaderboardEntry, error)
	List() ([]models.LeaderboardEntry, error)
	Update(entry *models.LeaderboardEntry) error
	Delete(id uint) error
	ReplaceAll(entries []models.LeaderboardEntry) error
}
