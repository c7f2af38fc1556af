package models_test

import (
	"testing"

	"anonchat/backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// TestUserBeforeCreate_GeneratesUUID verifies that the BeforeCreate hook generates a valid UUID.
func TestUserBeforeCreate_GeneratesUUID(t *testing.T) {
	// Arrange
	user := &models.User{
		Username: "quiet_fox",
		Name:     "Alice",
	}
	assert.Empty(t, user.ID, "User ID should be empty before BeforeCreate")

	// Act - Call the hook directly (GORM would call this automatically)
	err := user.BeforeCreate(nil)

	// Assert
	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	parsedUUID, parseErr := uuid.Parse(user.ID)
	assert.NoError(t, parseErr, "User ID must be a valid UUID string")
	assert.NotEqual(t, uuid.Nil, parsedUUID)
}

// TestUserBeforeCreate_PreservesExistingID verifies that the hook doesn't overwrite an existing ID.
func TestUserBeforeCreate_PreservesExistingID(t *testing.T) {
	existingID := uuid.New().String()
	user := &models.User{
		ID:       existingID,
		Username: "quiet_fox",
		Name:     "Alice",
	}

	err := user.BeforeCreate(nil)

	assert.NoError(t, err)
	assert.Equal(t, existingID, user.ID)
}
