package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		sentinel error
	}{
		{"invalid token", InvalidToken("Invalid Google token"), ErrInvalidToken},
		{"validation", ValidationFailed("level", "Skill level must be between 1 and 5"), ErrValidation},
		{"user not found", UserNotFound(), ErrUserNotFound},
		{"skill not found", SkillNotFound(), ErrSkillNotFound},
		{"persistence", Persistence("save skill", errors.New("disk full")), ErrPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestErrorReturnsClientMessage(t *testing.T) {
	err := ValidationFailed("level", "Skill level must be between 1 and 5")
	assert.Equal(t, "Skill level must be between 1 and 5", err.Error())
	assert.Equal(t, "level", err.Field)
}

func TestPersistenceHidesCause(t *testing.T) {
	cause := errors.New("pq: relation \"skills\" does not exist")
	err := Persistence("save skill", cause)

	// The client message must not leak the datastore error text.
	assert.Equal(t, "Failed to save skill", err.Error())
	assert.NotContains(t, err.Error(), "pq:")
	assert.Equal(t, cause, err.Cause)
}

func TestErrorsIsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("creating skill: %w", SkillNotFound())
	assert.ErrorIs(t, wrapped, ErrSkillNotFound)

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "Skill not found", appErr.Message)
}
