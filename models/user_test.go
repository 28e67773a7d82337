package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserTableName(t *testing.T) {
	user := User{}
	assert.Equal(t, "users", user.TableName(), "Table name should be 'users'")
}

func TestUserSummary(t *testing.T) {
	user := User{
		ID:      42,
		Email:   "test@example.com",
		Name:    "Test User",
		Picture: "https://example.com/photo.jpg",
	}

	summary := user.Summary()
	assert.Equal(t, uint(42), summary.ID)
	assert.Equal(t, "test@example.com", summary.Email)
	assert.Equal(t, "Test User", summary.Name)
	assert.Equal(t, "https://example.com/photo.jpg", summary.Picture)
}

func TestUserSummaryOptionalFields(t *testing.T) {
	// Name and picture are optional in Google claims; the summary carries
	// them through as empty strings rather than omitting them.
	user := User{ID: 1, Email: "bare@example.com"}

	summary := user.Summary()
	assert.Equal(t, "", summary.Name)
	assert.Equal(t, "", summary.Picture)
}
