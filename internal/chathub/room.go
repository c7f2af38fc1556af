package chathub

import (
	"errors"
	"log"
	"sync"
	"time"

	"anonchat/backend/internal/models"
)

// ErrChatEnded is returned when a message is sent to a terminated room.
var ErrChatEnded = errors.New("chat has ended")

// ChatStore is the persistence boundary the hub depends on. Implemented
// by storage.Service; tests substitute a mock.
type ChatStore interface {
	CreateChat(chat *models.Chat) error
	EndChat(chatID string, endedAt time.Time) error
	CreateMessage(msg *models.Message) error
}

// Room is one active two-party chat session. It owns the reveal-handshake
// state and the terminal ended state; messages themselves are delegated to
// the ChatStore and not held in memory.
type Room struct {
	RoomID  string
	TopicID string

	mu        sync.Mutex
	usernames [2]string
	names     map[string]string
	reveal    map[string]bool
	startedAt time.Time
	endedAt   *time.Time

	store ChatStore
}

// NewRoom creates a room for a topic. Participants are populated with
// SetUser and the backing chat record is written with SetChat before the
// room is announced to anyone.
func NewRoom(roomID, topicID string, store ChatStore) *Room {
	return &Room{
		RoomID:    roomID,
		TopicID:   topicID,
		names:     make(map[string]string),
		reveal:    make(map[string]bool),
		startedAt: time.Now(),
		store:     store,
	}
}

// SetUser fills the next participant slot, in call order. Called exactly
// twice at construction time.
func (r *Room) SetUser(username, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.usernames[0] == "" {
		r.usernames[0] = username
	} else {
		r.usernames[1] = username
	}
	r.names[username] = name
}

// Users returns both participant usernames in slot order.
func (r *Room) Users() [2]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.usernames
}

// GetUsersName returns the display name for a participant username.
func (r *Room) GetUsersName(username string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.names[username]
}

// SetChat persists the session's existence. The room must not be
// registered in the directory until this succeeds.
func (r *Room) SetChat() error {
	r.mu.Lock()
	chat := &models.Chat{
		ChatID:        r.RoomID,
		TopicID:       r.TopicID,
		UserID1:       r.usernames[0],
		UserID2:       r.usernames[1],
		StartDatetime: r.startedAt,
	}
	r.mu.Unlock()
	return r.store.CreateChat(chat)
}

// RequestReveal records that a participant asked to reveal identities.
// Idempotent; returns true only when the request set changed, so the
// caller emits the reveal event exactly once.
func (r *Room) RequestReveal(username string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reveal[username] {
		return false
	}
	r.reveal[username] = true
	return true
}

// CanRevealName reports whether both participants requested a reveal.
func (r *Room) CanRevealName() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reveal[r.usernames[0]] && r.reveal[r.usernames[1]]
}

// CreateMessage persists a message from a participant. Fails when the
// room has ended or persistence fails; the caller notifies only the
// sender of such failures.
func (r *Room) CreateMessage(username, content string) (*models.Message, error) {
	r.mu.Lock()
	ended := r.endedAt != nil
	r.mu.Unlock()
	if ended {
		return nil, ErrChatEnded
	}

	msg := &models.Message{
		ChatID:   r.RoomID,
		SenderID: username,
		Content:  content,
	}
	if err := r.store.CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// UpdateEndChat transitions the room to its terminal state. The first
// caller stamps the end time; later calls are no-ops. The persisted end
// time is best-effort: the in-memory state stays terminal even if the
// update fails.
func (r *Room) UpdateEndChat() {
	r.mu.Lock()
	if r.endedAt != nil {
		r.mu.Unlock()
		return
	}
	now := time.Now()
	r.endedAt = &now
	r.mu.Unlock()

	if err := r.store.EndChat(r.RoomID, now); err != nil {
		log.Printf("ERROR: failed to persist end of chat %s: %v", r.RoomID, err)
	}
}

// Ended reports whether the room reached its terminal state.
func (r *Room) Ended() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.endedAt != nil
}

// EndedAt returns the end timestamp, or nil while the room is active.
func (r *Room) EndedAt() *time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.endedAt
}
