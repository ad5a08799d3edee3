package service

import (
	"errors"
	"fmt"

	"black-bears-backend/internal/database/models"
	apperrors "black-bears-backend/internal/errors"
	"black-bears-backend/internal/logger"
	"black-bears-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// LeaderboardService handles the denormalized standings snapshot. Team rows
// are authoritative; Rebuild refreshes the snapshot from them.
type LeaderboardService struct {
	repo      repository.LeaderboardRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// Ensure LeaderboardService implements LeaderboardServiceInterface
var _ LeaderboardServiceInterface = (*LeaderboardService)(nil)

// NewLeaderboardService creates a new leaderboard service
func NewLeaderboardService(repo repository.LeaderboardRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *LeaderboardService {
	return &LeaderboardService{
		repo:      repo,
		teamRepo:  teamRepo,
		validator: validator,
	}
}

// CreateLeaderboardEntryRequest represents the request to create an entry
type CreateLeaderboardEntryRequest struct {
	Name     string `json:"name" validate:"required"`
	Gender   string `json:"gender" validate:"required,oneof=male female"`
	Games    int    `json:"games" validate:"min=0"`
	Wins     int    `json:"wins" validate:"min=0"`
	Losses   int    `json:"losses" validate:"min=0"`
	Scored   int    `json:"scored" validate:"min=0"`
	Conceded int    `json:"conceded" validate:"min=0"`
	Position int    `json:"position" validate:"min=0"`
}

// UpdateLeaderboardEntryRequest represents a partial update; only supplied fields are applied
type UpdateLeaderboardEntryRequest struct {
	Name     *string `json:"name,omitempty"`
	Gender   *string `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	Games    *int    `json:"games,omitempty" validate:"omitempty,min=0"`
	Wins     *int    `json:"wins,omitempty" validate:"omitempty,min=0"`
	Losses   *int    `json:"losses,omitempty" validate:"omitempty,min=0"`
	Scored   *int    `json:"scored,omitempty" validate:"omitempty,min=0"`
	Conceded *int    `json:"conceded,omitempty" validate:"omitempty,min=0"`
	Position *int    `json:"position,omitempty" validate:"omitempty,min=0"`
}

// LeaderboardEntryResponse represents a leaderboard row in API responses
type LeaderboardEntryResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Gender   string `json:"gender"`
	Games    int    `json:"games"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Scored   int    `json:"scored"`
	Conceded int    `json:"conceded"`
	Position int    `json:"position"`
}

// List retrieves all leaderboard entries ordered by position
func (s *LeaderboardService) List() ([]LeaderboardEntryResponse, error) {
	entries, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list leaderboard: %w", err)
	}

	responses := make([]LeaderboardEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *s.toResponse(&entry)
	}
	return responses, nil
}

// Create creates a leaderboard entry
func (s *LeaderboardService) Create(req *CreateLeaderboardEntryRequest) (*LeaderboardEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	entry := &models.LeaderboardEntry{
		Name:     req.Name,
		Gender:   models.Gender(req.Gender),
		Games:    req.Games,
		Wins:     req.Wins,
		Losses:   req.Losses,
		Scored:   req.Scored,
		Conceded: req.Conceded,
		Position: req.Position,
	}

	if err := s.repo.Create(entry); err != nil {
		return nil, fmt.Errorf("failed to create leaderboard entry: %w", err)
	}

	return s.toResponse(entry), nil
}

// Update applies a partial update to a leaderboard entry
func (s *LeaderboardService) Update(id uint, req *UpdateLeaderboardEntryRequest) (*LeaderboardEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaderboardEntryNotFound
		}
		return nil, fmt.Errorf("failed to get leaderboard entry: %w", err)
	}

	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.Gender != nil {
		entry.Gender = models.Gender(*req.Gender)
	}
	if req.Games != nil {
		entry.Games = *req.Games
	}
	if req.Wins != nil {
		entry.Wins = *req.Wins
	}
	if req.Losses != nil {
		entry.Losses = *req.Losses
	}
	if req.Scored != nil {
		entry.Scored = *req.Scored
	}
	if req.Conceded != nil {
		entry.Conceded = *req.Conceded
	}
	if req.Position != nil {
		entry.Position = *req.Position
	}

	if err := s.repo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update leaderboard entry: %w", err)
	}

	return s.toResponse(entry), nil
}

// Delete removes a leaderboard entry and returns the removed row
func (s *LeaderboardService) Delete(id uint) (*LeaderboardEntryResponse, error) {
	entry, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLeaderboardEntryNotFound
		}
		return nil, fmt.Errorf("failed to get leaderboard entry: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return nil, fmt.Errorf("failed to delete leaderboard entry: %w", err)
	}

	return s.toResponse(entry), nil
}

// Rebuild replaces the snapshot with one derived from the authoritative Team
// rows: per division, teams in standings order, positions assigned 1..n.
func (s *LeaderboardService) Rebuild() ([]LeaderboardEntryResponse, error) {
	var entries []models.LeaderboardEntry
	for _, gender := range []models.Gender{models.GenderMale, models.GenderFemale} {
		teams, err := s.teamRepo.Standings(gender)
		if err != nil {
			return nil, fmt.Errorf("failed to read standings: %w", err)
		}
		for i, team := range teams {
			entries = append(entries, models.LeaderboardEntry{
				Name:     team.Name,
				Gender:   team.Gender,
				Games:    team.GamesPlayed,
				Wins:     team.Wins,
				Losses:   team.Losses,
				Scored:   team.PointsScored,
				Conceded: team.PointsConceded,
				Position: i + 1,
			})
		}
	}

	if err := s.repo.ReplaceAll(entries); err != nil {
		return nil, fmt.Errorf("failed to replace leaderboard: %w", err)
	}

	logger.New().WithField("entries", len(entries)).Info("leaderboard rebuilt from team standings")
	return s.List()
}

// toResponse converts a LeaderboardEntry model to API response
func (s *LeaderboardService) toResponse(entry *models.LeaderboardEntry) *LeaderboardEntryResponse {
	return &LeaderboardEntryResponse{
		ID:       entry.ID,
		Name:     entry.Name,
		Gender:   string(entry.Gender),
		Games:    entry.Games,
		Wins:     entry.Wins,
		Losses:   entry.Losses,
		Scored:   entry.Scored,
		Conceded: entry.Conceded,
		Position: entry.Position,
	}
}
