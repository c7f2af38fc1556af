package chathub_test

import (
	"errors"
	"sync"
	"time"

	"anonchat/backend/internal/chathub"
	"anonchat/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockChatStore is a testify mock of the chathub.ChatStore boundary.
type MockChatStore struct {
	mock.Mock
}

func (m *MockChatStore) CreateChat(chat *models.Chat) error {
	args := m.Called(chat)
	return args.Error(0)
}

func (m *MockChatStore) EndChat(chatID string, endedAt time.Time) error {
	args := m.Called(chatID, endedAt)
	return args.Error(0)
}

func (m *MockChatStore) CreateMessage(msg *models.Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

// fakeQuota is an in-memory quota gate. Counts are keyed by username;
// usernames listed in failing simulate lookup errors.
type fakeQuota struct {
	mu      sync.Mutex
	counts  map[string]int
	updates map[string]int
	failing map[string]bool
}

func newFakeQuota() *fakeQuota {
	return &fakeQuota{
		counts:  make(map[string]int),
		updates: make(map[string]int),
		failing: make(map[string]bool),
	}
}

func (q *fakeQuota) GetUserQuota(username string) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.failing[username] {
		return -1, errors.New("quota lookup failed")
	}
	return q.counts[username], nil
}

func (q *fakeQuota) UpdateUserQuota(username string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.counts[username]++
	q.updates[username]++
	return nil
}

func (q *fakeQuota) updatesFor(username string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.updates[username]
}

// fakeClient is a transport-free Client whose outbound events accumulate
// in a buffered channel.
type fakeClient struct {
	connID   string
	username string
	name     string
	send     chan models.ServerEvent

	mu          sync.Mutex
	roomID      string
	queuedTopic string
	closed      bool
}

func newFakeClient(connID, username, name string) *fakeClient {
	return &fakeClient{
		connID:   connID,
		username: username,
		name:     name,
		send:     make(chan models.ServerEvent, 32),
	}
}

func (c *fakeClient) GetConnID() string   { return c.connID }
func (c *fakeClient) GetUsername() string { return c.username }
func (c *fakeClient) GetName() string     { return c.name }

func (c *fakeClient) GetRoomID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roomID
}

func (c *fakeClient) SetRoomID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roomID = id
}

func (c *fakeClient) GetQueuedTopic() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queuedTopic
}

func (c *fakeClient) SetQueuedTopic(topicID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queuedTopic = topicID
}

func (c *fakeClient) GetSendChannel() chan<- models.ServerEvent { return c.send }

func (c *fakeClient) Run() {}

func (c *fakeClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// drain returns every event delivered so far.
func (c *fakeClient) drain() []models.ServerEvent {
	var events []models.ServerEvent
	for {
		select {
		case ev, ok := <-c.send:
			if !ok {
				return events
			}
			events = append(events, ev)
		default:
			return events
		}
	}
}

// eventTypes extracts the event type sequence from drained events.
func eventTypes(events []models.ServerEvent) []string {
	types := make([]string, 0, len(events))
	for _, ev := range events {
		types = append(types, ev.Type)
	}
	return types
}

var (
	_ chathub.Client    = (*fakeClient)(nil)
	_ chathub.ChatStore = (*MockChatStore)(nil)
)
