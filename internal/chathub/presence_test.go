package chathub_test

import (
	"testing"

	"anonchat/backend/internal/chathub"

	"github.com/stretchr/testify/assert"
)

func TestPresenceCounting(t *testing.T) {
	p := chathub.NewPresence()
	assert.Equal(t, 0, p.NumUsers())

	p.AddUser()
	p.AddUser()
	assert.Equal(t, 2, p.NumUsers())

	p.DeleteUser()
	assert.Equal(t, 1, p.NumUsers())
}

func TestPresenceFloorsAtZero(t *testing.T) {
	p := chathub.NewPresence()
	p.DeleteUser()
	p.DeleteUser()
	assert.Equal(t, 0, p.NumUsers())
}

func TestRoomDirectory(t *testing.T) {
	d := chathub.NewRoomDirectory()
	assert.Nil(t, d.GetRoom("missing"))

	room := chathub.NewRoom("room-1", "7", nil)
	d.AddRoom(room)
	assert.Same(t, room, d.GetRoom("room-1"))

	d.DeleteRoom("room-1")
	assert.Nil(t, d.GetRoom("room-1"))

	// Deleting an absent room is a no-op.
	d.DeleteRoom("room-1")
}
