package chathub

import "sync"

// RoomDirectory maps room IDs to active rooms. It is pure storage; the
// gateway decides when rooms are added and removed.
type RoomDirectory struct {
	mu    sync.RWMutex
	rooms map[string]*Room
}

// NewRoomDirectory creates an empty directory.
func NewRoomDirectory() *RoomDirectory {
	return &RoomDirectory{rooms: make(map[string]*Room)}
}

// AddRoom registers a room under its ID.
func (d *RoomDirectory) AddRoom(room *Room) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rooms[room.RoomID] = room
}

// GetRoom returns the room for an ID, or nil if it is not registered.
func (d *RoomDirectory) GetRoom(roomID string) *Room {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.rooms[roomID]
}

// DeleteRoom removes a room from the directory. No-op if absent.
func (d *RoomDirectory) DeleteRoom(roomID string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.rooms, roomID)
}
