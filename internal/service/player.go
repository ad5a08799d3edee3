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

const birthDateLayout = "2006-01-02"

// PlayerService handles business logic for players
type PlayerService struct {
	repo      repository.PlayerRepositoryInterface
	validator *validator.Validate
}

// Ensure PlayerService implements PlayerServiceInterface
var _ PlayerServiceInterface = (*PlayerService)(nil)

// NewPlayerService creates a new player service
func NewPlayerService(repo repository.PlayerRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		repo:      repo,
		validator: validator,
	}
}

// CreatePlayerRequest represents the request to create a player
type CreatePlayerRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Gender    string  `json:"gender" validate:"required,oneof=male female"`
	Number    int     `json:"number" validate:"min=0"`
	Position  string  `json:"position" validate:"required"`
	Height    float64 `json:"height" validate:"gt=0"`
	Weight    float64 `json:"weight" validate:"gt=0"`
	BirthDate string  `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Biography string  `json:"biography,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
}

// UpdatePlayerRequest represents a partial update; only supplied fields are applied
type UpdatePlayerRequest struct {
	FirstName *string  `json:"first_name,omitempty"`
	LastName  *string  `json:"last_name,omitempty"`
	Gender    *string  `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	Number    *int     `json:"number,omitempty" validate:"omitempty,min=0"`
	Position  *string  `json:"position,omitempty"`
	Height    *float64 `json:"height,omitempty" validate:"omitempty,gt=0"`
	Weight    *float64 `json:"weight,omitempty" validate:"omitempty,gt=0"`
	BirthDate *string  `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Biography *string  `json:"biography,omitempty"`
	ImageURL  *string  `json:"image_url,omitempty"`

	GamesPlayed    *int `json:"games_played,omitempty" validate:"omitempty,min=0"`
	TotalPoints    *int `json:"total_points,omitempty" validate:"omitempty,min=0"`
	TotalRebounds  *int `json:"total_rebounds,omitempty" validate:"omitempty,min=0"`
	TotalAssists   *int `json:"total_assists,omitempty" validate:"omitempty,min=0"`
	TotalSteals    *int `json:"total_steals,omitempty" validate:"omitempty,min=0"`
	TotalBlocks    *int `json:"total_blocks,omitempty" validate:"omitempty,min=0"`
	TotalTurnovers *int `json:"total_turnovers,omitempty" validate:"omitempty,min=0"`
}

// ListPlayersParams holds the decoded query parameters for player listings
type ListPlayersParams struct {
	Gender   string
	Search   string
	MinGames *int
	SortBy   string
	Skip     int
	Limit    int
}

// PlayerResponse represents a player in API responses
type PlayerResponse struct {
	ID        uint    `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Gender    string  `json:"gender"`
	Number    int     `json:"number"`
	Position  string  `json:"position"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	BirthDate string  `json:"birth_date"`
	Biography string  `json:"biography,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`

	GamesPlayed    int `json:"games_played"`
	TotalPoints    int `json:"total_points"`
	TotalRebounds  int `json:"total_rebounds"`
	TotalAssists   int `json:"total_assists"`
	TotalSteals    int `json:"total_steals"`
	TotalBlocks    int `json:"total_blocks"`
	TotalTurnovers int `json:"total_turnovers"`
}

// PlayerListResponse represents a paginated list of players
type PlayerListResponse struct {
	Players []PlayerResponse `json:"players"`
	Total   int64            `json:"total"`
	Skip    int              `json:"skip"`
	Limit   int              `json:"limit"`
}

// Create creates a new player with zeroed season statistics
func (s *PlayerService) Create(req *CreatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationError("birth_date", "must be formatted as YYYY-MM-DD")
	}

	player := &models.Player{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Gender:    models.Gender(req.Gender),
		Number:    req.Number,
		Position:  req.Position,
		Height:    req.Height,
		Weight:    req.Weight,
		BirthDate: birthDate,
		Biography: req.Biography,
		ImageURL:  req.ImageURL,
	}

	if err := s.repo.Create(player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return s.toResponse(player), nil
}

// GetByID retrieves a player by ID
func (s *PlayerService) GetByID(id uint) (*PlayerResponse, error) {
	player, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return s.toResponse(player), nil
}

// List retrieves players matching the filter set. An unrecognized sort key
// falls back to the name ordering instead of failing.
func (s *PlayerService) List(params ListPlayersParams) (*PlayerListResponse, error) {
	skip, limit := normalizePage(params.Skip, params.Limit)

	filter := repository.PlayerFilter{
		Search:   params.Search,
		MinGames: params.MinGames,
		SortBy:   params.SortBy,
	}
	if params.Gender != "" {
		gender := models.Gender(params.Gender)
		filter.Gender = &gender
	}

	players, total, err := s.repo.List(filter, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	responses := make([]PlayerResponse, len(players))
	for i, p := range players {
		responses[i] = *s.toResponse(&p)
	}

	return &PlayerListResponse{
		Players: responses,
		Total:   total,
		Skip:    skip,
		Limit:   limit,
	}, nil
}

// Update applies a partial update to a player. The whole changeset is
// validated before any field is assigned.
func (s *PlayerService) Update(id uint, req *UpdatePlayerRequest) (*PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	var birthDate time.Time
	if req.BirthDate != nil {
		var err error
		birthDate, err = time.Parse(birthDateLayout, *req.BirthDate)
		if err != nil {
			return nil, apperrors.NewValidationError("birth_date", "must be formatted as YYYY-MM-DD")
		}
	}

	player, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	applyPlayerPatch(player, req, birthDate)

	if err := s.repo.Update(player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return s.toResponse(player), nil
}

// applyPlayerPatch merges the supplied fields onto the stored player
func applyPlayerPatch(player *models.Player, req *UpdatePlayerRequest, birthDate time.Time) {
	if req.FirstName != nil {
		player.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		player.LastName = *req.LastName
	}
	if req.Gender != nil {
		player.Gender = models.Gender(*req.Gender)
	}
	if req.Number != nil {
		player.Number = *req.Number
	}
	if req.Position != nil {
		player.Position = *req.Position
	}
	if req.Height != nil {
		player.Height = *req.Height
	}
	if req.Weight != nil {
		player.Weight = *req.Weight
	}
	if req.BirthDate != nil {
		player.BirthDate = birthDate
	}
	if req.Biography != nil {
		player.Biography = *req.Biography
	}
	if req.ImageURL != nil {
		player.ImageURL = *req.ImageURL
	}
	if req.GamesPlayed != nil {
		player.GamesPlayed = *req.GamesPlayed
	}
	if req.TotalPoints != nil {
		player.TotalPoints = *req.TotalPoints
	}
	if req.TotalRebounds != nil {
		player.TotalRebounds = *req.TotalRebounds
	}
	if req.TotalAssists != nil {
		player.TotalAssists = *req.TotalAssists
	}
	if req.TotalSteals != nil {
		player.TotalSteals = *req.TotalSteals
	}
	if req.TotalBlocks != nil {
		player.TotalBlocks = *req.TotalBlocks
	}
	if req.TotalTurnovers != nil {
		player.TotalTurnovers = *req.TotalTurnovers
	}
}

// toResponse converts a Player model to API response
func (s *PlayerService) toResponse(player *models.Player) *PlayerResponse {
	return &PlayerResponse{
		ID:             player.ID,
		FirstName:      player.FirstName,
		LastName:       player.LastName,
		Gender:         string(player.Gender),
		Number:         player.Number,
		Position:       player.Position,
		Height:         player.Height,
		Weight:         player.Weight,
		BirthDate:      player.BirthDate.Format(birthDateLayout),
		Biography:      player.Biography,
		ImageURL:       player.ImageURL,
		GamesPlayed:    player.GamesPlayed,
		TotalPoints:    player.TotalPoints,
		TotalRebounds:  player.TotalRebounds,
		TotalAssists:   player.TotalAssists,
		TotalSteals:    player.TotalSteals,
		TotalBlocks:    player.TotalBlocks,
		TotalTurnovers: player.TotalTurnovers,
	}
}
