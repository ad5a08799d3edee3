package testutils

import (
	"fmt"
	"time"

	"black-bears-backend/internal/database/models"
)

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test Player with default values
func (f *PlayerFactory) Create() *models.Player {
	return &models.Player{
		FirstName: "Ivan",
		LastName:  "Petrov",
		Gender:    models.GenderMale,
		Number:    7,
		Position:  "guard",
		Height:    192,
		Weight:    88,
		BirthDate: time.Date(2000, 3, 15, 0, 0, 0, 0, time.UTC),
		Biography: "Test player biography",
	}
}

// WithName sets a custom first and last name
func (f *PlayerFactory) WithName(first, last string) *models.Player {
	p := f.Create()
	p.FirstName = first
	p.LastName = last
	return p
}

// WithGender sets a custom gender
func (f *PlayerFactory) WithGender(gender models.Gender) *models.Player {
	p := f.Create()
	p.Gender = gender
	return p
}

// WithStats sets the cumulative stat counters
func (f *PlayerFactory) WithStats(games, points, rebounds, assists int) *models.Player {
	p := f.Create()
	p.GamesPlayed = games
	p.TotalPoints = points
	p.TotalRebounds = rebounds
	p.TotalAssists = assists
	return p
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct {
	seq int
}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with a unique name
func (f *TeamFactory) Create() *models.Team {
	f.seq++
	return &models.Team{
		Name:   fmt.Sprintf("Black Bears %d", f.seq),
		Gender: models.GenderMale,
	}
}

// WithName sets a custom team name
func (f *TeamFactory) WithName(name string) *models.Team {
	t := f.Create()
	t.Name = name
	return t
}

// WithGender sets a custom gender
func (f *TeamFactory) WithGender(gender models.Gender) *models.Team {
	t := f.Create()
	t.Gender = gender
	return t
}

// WithRecord sets the standings counters and refreshes the derived fields
func (f *TeamFactory) WithRecord(name string, games, wins, losses, scored, conceded int) *models.Team {
	t := f.WithName(name)
	t.GamesPlayed = games
	t.Wins = wins
	t.Losses = losses
	t.PointsScored = scored
	t.PointsConceded = conceded
	t.Recalculate()
	return t
}

// GameFactory provides methods to create test Game data
type GameFactory struct{}

// NewGameFactory creates a new GameFactory
func NewGameFactory() *GameFactory {
	return &GameFactory{}
}

// Create creates a test Game with default values
func (f *GameFactory) Create() *models.Game {
	return &models.Game{
		Gender:     models.GenderMale,
		TeamName:   "Black Bears 1",
		DateTime:   time.Now().Add(72 * time.Hour).Truncate(time.Second).UTC(),
		Location:   "Home Arena",
		IsHomeGame: true,
	}
}

// WithTeam sets the team name and gender
func (f *GameFactory) WithTeam(teamName string, gender models.Gender) *models.Game {
	g := f.Create()
	g.TeamName = teamName
	g.Gender = gender
	return g
}

// At sets the game date
func (f *GameFactory) At(dt time.Time) *models.Game {
	g := f.Create()
	g.DateTime = dt
	return g
}

// Played sets a final score, making the game a result
func (f *GameFactory) Played(teamName string, dt time.Time, ours, theirs int) *models.Game {
	g := f.Create()
	g.TeamName = teamName
	g.DateTime = dt
	g.ScoreBlackBears = &ours
	g.ScoreOpponent = &theirs
	return g
}

// NewsFactory provides methods to create test News data
type NewsFactory struct{}

// NewNewsFactory creates a new NewsFactory
func NewNewsFactory() *NewsFactory {
	return &NewsFactory{}
}

// Create creates a test News item with default values
func (f *NewsFactory) Create() *models.News {
	return &models.News{
		Title:   "Season opener announced",
		Content: "The first game of the season has been scheduled.",
	}
}

// WithTitle sets a custom title
func (f *NewsFactory) WithTitle(title string) *models.News {
	n := f.Create()
	n.Title = title
	return n
}

// WithTags attaches tags by name
func (f *NewsFactory) WithTags(names ...string) *models.News {
	n := f.Create()
	for _, name := range names {
		n.Tags = append(n.Tags, models.Tag{Name: name})
	}
	return n
}

// LeaderboardFactory provides methods to create test LeaderboardEntry data
type LeaderboardFactory struct{}

// NewLeaderboardFactory creates a new LeaderboardFactory
func NewLeaderboardFactory() *LeaderboardFactory {
	return &LeaderboardFactory{}
}

// Create creates a test LeaderboardEntry with default values
func (f *LeaderboardFactory) Create() *models.LeaderboardEntry {
	return &models.LeaderboardEntry{
		Name:     "Black Bears",
		Gender:   models.GenderMale,
		Games:    10,
		Wins:     7,
		Losses:   3,
		Scored:   812,
		Conceded: 745,
		Position: 1,
	}
}

// WithPosition sets the name and league position
func (f *LeaderboardFactory) WithPosition(name string, position int) *models.LeaderboardEntry {
	e := f.Create()
	e.Name = name
	e.Position = position
	return e
}

// FactorySet provides access to all factories
type FactorySet struct {
	Player      *PlayerFactory
	Team        *TeamFactory
	Game        *GameFactory
	News        *NewsFactory
	Leaderboard *LeaderboardFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Player:      NewPlayerFactory(),
		Team:        NewTeamFactory(),
		Game:        NewGameFactory(),
		News:        NewNewsFactory(),
		Leaderboard: NewLeaderboardFactory(),
	}
}
