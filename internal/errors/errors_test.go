package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "player"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrPlayerNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrGameNotFound))
		assert.True(t, IsNotFound(ErrLeaderboardEntryNotFound))
		assert.False(t, IsNotFound(ErrGenderMismatch))
	})

	t.Run("IsNotFound through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading roster: %w", ErrPlayerNotFound)
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "gender", Message: "must be male or female"}
		assert.Equal(t, "validation error: gender - must be male or female", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("birth_date", "must be formatted as YYYY-MM-DD")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &ConflictError{Message: "team with this name already exists"}
		assert.Equal(t, "team with this name already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err := NewConflictError("game gender does not match the team gender")
		assert.True(t, errors.Is(err, ErrGenderMismatch))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrGenderMismatch))
		assert.False(t, IsConflict(ErrGameNotFound))
	})

	t.Run("IsConflict through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("creating game: %w", ErrGenderMismatch)
		assert.True(t, IsConflict(wrapped))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("NewConflictError", func(t *testing.T) {
		err := NewConflictError("message")
		assert.Equal(t, "message", err.Error())
		assert.True(t, IsConflict(err))
	})
}

func TestBusinessLogicErrors(t *testing.T) {
	assert.Error(t, ErrGenderMismatch)
	assert.Error(t, ErrInvalidGender)
	assert.Error(t, ErrInvalidPaginationParams)
}
