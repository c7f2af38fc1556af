package models_test

import (
	"testing"

	"anonchat/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestClientEventValid(t *testing.T) {
	valid := []string{
		models.EventGetOnlineUsers,
		models.EventMatchmaking,
		models.EventMatchNotFound,
		models.EventRevealName,
		models.EventMessage,
		models.EventEndChat,
	}
	for _, eventType := range valid {
		assert.True(t, models.ClientEvent{Type: eventType}.Valid(), eventType)
	}

	// Unrecognized shapes are rejected at the boundary.
	assert.False(t, models.ClientEvent{Type: "matched"}.Valid(), "outbound-only type")
	assert.False(t, models.ClientEvent{Type: "unknown"}.Valid())
	assert.False(t, models.ClientEvent{}.Valid())
}
