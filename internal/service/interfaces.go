package service

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	Create(req *CreatePlayerRequest) (*PlayerResponse, error)
	GetByID(id uint) (*PlayerResponse, error)
	List(params ListPlayersParams) (*PlayerListResponse, error)
	Update(id uint, req *UpdatePlayerRequest) (*PlayerResponse, error)
}

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(req *CreateTeamRequest) (*TeamResponse, error)
	GetByID(id uint) (*TeamResponse, error)
	List(gender string, skip, limit int) (*TeamListResponse, error)
	Standings(gender string) ([]TeamResponse, error)
	Update(id uint, req *UpdateTeamRequest) (*TeamResponse, error)
	UpdatePosition(id uint, position int) (*TeamResponse, error)
	Delete(id uint) error
}

// GameServiceInterface defines the interface for game service
type GameServiceInterface interface {
	Create(req *CreateGameRequest) (*GameResponse, error)
	GetByID(id uint) (*GameResponse, error)
	List(params ListGamesParams) (*GameListResponse, error)
	Upcoming(params ListGamesParams) ([]GameResponse, error)
	Results(params ListGamesParams) ([]GameResponse, error)
	Update(id uint, req *UpdateGameRequest) (*GameResponse, error)
}

// NewsServiceInterface defines the interface for news service
type NewsServiceInterface interface {
	Create(req *CreateNewsRequest) (*NewsResponse, error)
	GetByID(id uint) (*NewsResponse, error)
	List(tags []string, skip, limit int) (*NewsListResponse, error)
	Update(id uint, req *UpdateNewsRequest) (*NewsResponse, error)
	ListTags() ([]TagResponse, error)
}

// LeaderboardServiceInterface defines the interface for leaderboard service
type LeaderboardServiceInterface interface {
	List() ([]LeaderboardEntryResponse, error)
	Create(req *CreateLeaderboardEntryRequest) (*LeaderboardEntryResponse, error)
	Update(id uint, req *UpdateLeaderboardEntryRequest) (*LeaderboardEntryResponse, error)
	Delete(id uint) (*LeaderboardEntryResponse, error)
	Rebuild() ([]LeaderboardEntryResponse, error)
}
