package service

import (
	"errors"
	"fmt"
	"time"

	"black-bears-backend/internal/database/models"
	apperrors "black-bears-backend/internal/errors"
	"black-bears-backend/internal/logger"
	"black-bears-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// GameService handles business logic for games, including the gender
// consistency rule between a game and its referenced team.
type GameService struct {
	repo      repository.GameRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
	now       func() time.Time
}

// Ensure GameService implements GameServiceInterface
var _ GameServiceInterface = (*GameService)(nil)

// NewGameService creates a new game service
func NewGameService(repo repository.GameRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *GameService {
	return &GameService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
		now:       time.Now,
	}
}

// CreateGameRequest represents the request to create a game
type CreateGameRequest struct {
	Gender          string    `json:"gender" validate:"required,oneof=male female"`
	TeamName        string    `json:"team_name" validate:"required"`
	DateTime        time.Time `json:"date_time" validate:"required"`
	Location        string    `json:"location" validate:"required"`
	IsHomeGame      *bool     `json:"is_home_game" validate:"required"`
	ScoreBlackBears *int      `json:"score_black_bears,omitempty" validate:"omitempty,min=0"`
	ScoreOpponent   *int      `json:"score_opponent,omitempty" validate:"omitempty,min=0"`
}

// UpdateGameRequest represents a partial update; only supplied fields are applied
type UpdateGameRequest struct {
	Gender          *string    `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	TeamName        *string    `json:"team_name,omitempty"`
	DateTime        *time.Time `json:"date_time,omitempty"`
	Location        *string    `json:"location,omitempty"`
	IsHomeGame      *bool      `json:"is_home_game,omitempty"`
	ScoreBlackBears *int       `json:"score_black_bears,omitempty" validate:"omitempty,min=0"`
	ScoreOpponent   *int       `json:"score_opponent,omitempty" validate:"omitempty,min=0"`
}

// ListGamesParams holds the decoded query parameters for game listings
type ListGamesParams struct {
	Gender    string
	TeamName  string
	StartDate *time.Time
	EndDate   *time.Time
	Skip      int
	Limit     int
}

// GameResponse represents a game in API responses
type GameResponse struct {
	ID              uint      `json:"id"`
	Gender          string    `json:"gender"`
	TeamName        string    `json:"team_name"`
	DateTime        time.Time `json:"date_time"`
	Location        string    `json:"location"`
	IsHomeGame      bool      `json:"is_home_game"`
	ScoreBlackBears *int      `json:"score_black_bears"`
	ScoreOpponent   *int      `json:"score_opponent"`
}

// GameListResponse represents a paginated list of games
type GameListResponse struct {
	Games []GameResponse `json:"games"`
	Total int64          `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}

// Create creates a game after checking that the referenced team exists and
// that its gender matches the game's gender. Nothing is persisted on failure.
func (s *GameService) Create(req *CreateGameRequest) (*GameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if err := s.checkTeamGender(req.TeamName, models.Gender(req.Gender)); err != nil {
		return nil, err
	}

	game := &models.Game{
		Gender:          models.Gender(req.Gender),
		TeamName:        req.TeamName,
		DateTime:        req.DateTime,
		Location:        req.Location,
		IsHomeGame:      *req.IsHomeGame,
		ScoreBlackBears: req.ScoreBlackBears,
		ScoreOpponent:   req.ScoreOpponent,
	}

	if err := s.repo.Create(game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	return s.toResponse(game), nil
}

// GetByID retrieves a game by ID
func (s *GameService) GetByID(id uint) (*GameResponse, error) {
	game, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return s.toResponse(game), nil
}

// List retrieves games matching the filter, newest first
func (s *GameService) List(params ListGamesParams) (*GameListResponse, error) {
	skip, limit := normalizePage(params.Skip, params.Limit)

	games, total, err := s.repo.List(s.toFilter(params), limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	responses := make([]GameResponse, len(games))
	for i, game := range games {
		responses[i] = *s.toResponse(&game)
	}

	return &GameListResponse{
		Games: responses,
		Total: total,
		Skip:  skip,
		Limit: limit,
	}, nil
}

// Upcoming retrieves games scheduled from now on, soonest first
func (s *GameService) Upcoming(params ListGamesParams) ([]GameResponse, error) {
	limit := params.Limit
	if limit < 1 || limit > maxLimit {
		limit = defaultUpcomingLimit
	}

	games, err := s.repo.Upcoming(s.toFilter(params), s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming games: %w", err)
	}

	responses := make([]GameResponse, len(games))
	for i, game := range games {
		responses[i] = *s.toResponse(&game)
	}

	return responses, nil
}

// Results retrieves played games with recorded scores, newest first
func (s *GameService) Results(params ListGamesParams) ([]GameResponse, error) {
	_, limit := normalizePage(params.Skip, params.Limit)

	games, err := s.repo.Results(s.toFilter(params), s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list game results: %w", err)
	}

	responses := make([]GameResponse, len(games))
	for i, game := range games {
		responses[i] = *s.toResponse(&game)
	}

	return responses, nil
}

// Update applies a partial update to a game. When the patch touches team_name
// or gender, the effective pair is re-validated before any field is assigned,
// so a rejected update leaves the stored game untouched.
func (s *GameService) Update(id uint, req *UpdateGameRequest) (*GameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	game, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if req.TeamName != nil || req.Gender != nil {
		teamName := game.TeamName
		if req.TeamName != nil {
			teamName = *req.TeamName
		}
		gender := game.Gender
		if req.Gender != nil {
			gender = models.Gender(*req.Gender)
		}
		if err := s.checkTeamGender(teamName, gender); err != nil {
			return nil, err
		}
	}

	if req.Gender != nil {
		game.Gender = models.Gender(*req.Gender)
	}
	if req.TeamName != nil {
		game.TeamName = *req.TeamName
	}
	if req.DateTime != nil {
		game.DateTime = *req.DateTime
	}
	if req.Location != nil {
		game.Location = *req.Location
	}
	if req.IsHomeGame != nil {
		game.IsHomeGame = *req.IsHomeGame
	}
	if req.ScoreBlackBears != nil {
		game.ScoreBlackBears = req.ScoreBlackBears
	}
	if req.ScoreOpponent != nil {
		game.ScoreOpponent = req.ScoreOpponent
	}

	if err := s.repo.Update(game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return s.toResponse(game), nil
}

// checkTeamGender resolves the referenced team and enforces the gender rule
func (s *GameService) checkTeamGender(teamName string, gender models.Gender) error {
	team, err := s.teamRepo.GetByName(teamName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to resolve team: %w", err)
	}
	if team.Gender != gender {
		logger.New().WithFields(map[string]interface{}{
			"team_name":   teamName,
			"team_gender": string(team.Gender),
			"game_gender": string(gender),
		}).Warn("rejected game with mismatched team gender")
		return apperrors.ErrGenderMismatch
	}
	return nil
}

// toFilter converts list params into a repository filter
func (s *GameService) toFilter(params ListGamesParams) repository.GameFilter {
	filter := repository.GameFilter{
		TeamName:  params.TeamName,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	}
	if params.Gender != "" {
		gender := models.Gender(params.Gender)
		filter.Gender = &gender
	}
	return filter
}

// toResponse converts a Game model to API response
func (s *GameService) toResponse(game *models.Game) *GameResponse {
	return &GameResponse{
		ID:              game.ID,
		Gender:          string(game.Gender),
		TeamName:        game.TeamName,
		DateTime:        game.DateTime,
		Location:        game.Location,
		IsHomeGame:      game.IsHomeGame,
		ScoreBlackBears: game.ScoreBlackBears,
		ScoreOpponent:   game.ScoreOpponent,
	}
}
