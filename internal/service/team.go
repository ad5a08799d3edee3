package service

import (
	"errors"
	"fmt"

	"black-bears-backend/internal/database/models"
	apperrors "black-bears-backend/internal/errors"
	"black-bears-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// TeamService handles business logic for teams and standings
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	validator *validator.Validate
}

// Ensure TeamService implements TeamServiceInterface
var _ TeamServiceInterface = (*TeamService)(nil)

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTeamRequest represents the request to create a team
type CreateTeamRequest struct {
	Name    string `json:"name" validate:"required"`
	Gender  string `json:"gender" validate:"required,oneof=male female"`
	LogoURL string `json:"logo_url,omitempty"`
}

// UpdateTeamRequest represents a partial update; only supplied fields are applied.
// Changing a team's gender does not re-check games already referencing it.
type UpdateTeamRequest struct {
	Name            *string `json:"name,omitempty"`
	Gender          *string `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	LogoURL         *string `json:"logo_url,omitempty"`
	GamesPlayed     *int    `json:"games_played,omitempty" validate:"omitempty,min=0"`
	Wins            *int    `json:"wins,omitempty" validate:"omitempty,min=0"`
	Losses          *int    `json:"losses,omitempty" validate:"omitempty,min=0"`
	PointsScored    *int    `json:"points_scored,omitempty" validate:"omitempty,min=0"`
	PointsConceded  *int    `json:"points_conceded,omitempty" validate:"omitempty,min=0"`
	CurrentPosition *int    `json:"current_position,omitempty" validate:"omitempty,min=1"`
}

// TeamResponse represents a team in API responses
type TeamResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	LogoURL string `json:"logo_url,omitempty"`

	GamesPlayed     int  `json:"games_played"`
	Wins            int  `json:"wins"`
	Losses          int  `json:"losses"`
	PointsScored    int  `json:"points_scored"`
	PointsConceded  int  `json:"points_conceded"`
	CurrentPosition *int `json:"current_position"`

	WinPercentage    float64 `json:"win_percentage"`
	PointsDifference int     `json:"points_difference"`
}

// TeamListResponse represents a paginated list of teams
type TeamListResponse struct {
	Teams []TeamResponse `json:"teams"`
	Total int64          `json:"total"`
	Skip  int            `json:"skip"`
	Limit int            `json:"limit"`
}

// Create creates a new team
func (s *TeamService) Create(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// Name is the natural key games reference
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("team with this name already exists")
	}

	team := &models.Team{
		Name:    req.Name,
		Gender:  models.Gender(req.Gender),
		LogoURL: req.LogoURL,
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	return s.toResponse(team), nil
}

// GetByID retrieves a team by ID
func (s *TeamService) GetByID(id uint) (*TeamResponse, error) {
	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return s.toResponse(team), nil
}

// List retrieves teams, optionally scoped to a gender
func (s *TeamService) List(gender string, skip, limit int) (*TeamListResponse, error) {
	skip, limit = normalizePage(skip, limit)

	var genderFilter *models.Gender
	if gender != "" {
		g := models.Gender(gender)
		genderFilter = &g
	}

	teams, total, err := s.repo.List(genderFilter, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *s.toResponse(&team)
	}

	return &TeamListResponse{
		Teams: responses,
		Total: total,
		Skip:  skip,
		Limit: limit,
	}, nil
}

// Standings retrieves the ranked listing for a gender division.
// Gender is mandatory here, unlike the plain team listing.
func (s *TeamService) Standings(gender string) ([]TeamResponse, error) {
	if !models.Gender(gender).IsValid() {
		return nil, apperrors.NewValidationError("gender", "must be male or female")
	}

	teams, err := s.repo.Standings(models.Gender(gender))
	if err != nil {
		return nil, fmt.Errorf("failed to get standings: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *s.toResponse(&team)
	}

	return responses, nil
}

// Update applies a partial update to a team. The derived standings fields are
// refreshed on every write, so they can never go stale through this path.
func (s *TeamService) Update(id uint, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Gender != nil {
		team.Gender = models.Gender(*req.Gender)
	}
	if req.LogoURL != nil {
		team.LogoURL = *req.LogoURL
	}
	if req.GamesPlayed != nil {
		team.GamesPlayed = *req.GamesPlayed
	}
	if req.Wins != nil {
		team.Wins = *req.Wins
	}
	if req.Losses != nil {
		team.Losses = *req.Losses
	}
	if req.PointsScored != nil {
		team.PointsScored = *req.PointsScored
	}
	if req.PointsConceded != nil {
		team.PointsConceded = *req.PointsConceded
	}
	if req.CurrentPosition != nil {
		team.CurrentPosition = req.CurrentPosition
	}
	team.Recalculate()

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team), nil
}

// UpdatePosition sets the team's rank in the standings
func (s *TeamService) UpdatePosition(id uint, position int) (*TeamResponse, error) {
	if position < 1 {
		return nil, apperrors.NewValidationError("position", "must be a positive rank")
	}

	team, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	team.CurrentPosition = &position
	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team position: %w", err)
	}

	return s.toResponse(team), nil
}

// Delete deletes a team
func (s *TeamService) Delete(id uint) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to get team: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete team: %w", err)
	}

	return nil
}

// toResponse converts a Team model to API response
func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	return &TeamResponse{
		ID:               team.ID,
		Name:             team.Name,
		Gender:           string(team.Gender),
		LogoURL:          team.LogoURL,
		GamesPlayed:      team.GamesPlayed,
		Wins:             team.Wins,
		Losses:           team.Losses,
		PointsScored:     team.PointsScored,
		PointsConceded:   team.PointsConceded,
		CurrentPosition:  team.CurrentPosition,
		WinPercentage:    team.WinPercentage,
		PointsDifference: team.PointsDifference,
	}
}
