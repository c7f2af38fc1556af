package chathub

import (
	"log"

	"anonchat/backend/internal/models"
	"anonchat/backend/internal/quota"

	"github.com/google/uuid"
)

// InboundEvent pairs a decoded client event with the connection that
// sent it.
type InboundEvent struct {
	From  Client
	Event models.ClientEvent
}

// Gateway is the socket-event dispatcher. A single Run goroutine consumes
// registrations, disconnects and client events, so every in-memory state
// transition (queue, rooms, presence, client map) happens without
// interleaving. Quota lookups and persistence writes are the only calls
// that leave the process.
type Gateway struct {
	Clients map[string]Client

	RegisterCh   chan Client
	UnregisterCh chan Client
	EventCh      chan InboundEvent

	Presence *Presence
	Queue    *MatchQueue
	Rooms    *RoomDirectory
	Quota    quota.Gate
	Store    ChatStore
}

// NewGateway wires a gateway with fresh in-memory state.
func NewGateway(store ChatStore, gate quota.Gate) *Gateway {
	return &Gateway{
		Clients:      make(map[string]Client),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		EventCh:      make(chan InboundEvent),
		Presence:     NewPresence(),
		Queue:        NewMatchQueue(),
		Rooms:        NewRoomDirectory(),
		Quota:        gate,
		Store:        store,
	}
}

// Run is the gateway's event loop. Start it once, in its own goroutine.
func (g *Gateway) Run() {
	log.Println("Session gateway started.")
	for {
		select {
		case c := <-g.RegisterCh:
			g.handleRegister(c)
		case c := <-g.UnregisterCh:
			g.handleUnregister(c)
		case ev := <-g.EventCh:
			g.handleEvent(ev.From, ev.Event)
		}
	}
}

func (g *Gateway) handleRegister(c Client) {
	g.Clients[c.GetConnID()] = c
	g.Presence.AddUser()
	log.Printf("User connected %s (%s)", c.GetUsername(), c.GetConnID())
	g.broadcastOnlineUsers()
}

func (g *Gateway) handleUnregister(c Client) {
	if _, ok := g.Clients[c.GetConnID()]; !ok {
		return
	}
	delete(g.Clients, c.GetConnID())

	// A queued connection must leave its topic queue before any pairing
	// decision can observe it.
	if topicID := c.GetQueuedTopic(); topicID != "" {
		g.Queue.RemoveFromQueue(topicID, c)
	}

	roomID := c.GetRoomID()
	if roomID != "" {
		if room := g.Rooms.GetRoom(roomID); room != nil {
			room.UpdateEndChat()
		}
	}

	g.Presence.DeleteUser()
	g.broadcastOnlineUsers()

	if roomID != "" {
		g.Rooms.DeleteRoom(roomID)
		g.sendToRoom(roomID, models.ServerEvent{
			Type:   models.EventEndChat,
			Reason: "Your partner has disconnected",
		}, c.GetConnID())
		// The survivor's room is gone; clear the stale id so the
		// connection can matchmake again.
		g.clearRoom(roomID)
	}

	c.Close()
	log.Printf("User disconnected %s (%s)", c.GetUsername(), c.GetConnID())
}

func (g *Gateway) handleEvent(from Client, ev models.ClientEvent) {
	switch ev.Type {
	case models.EventGetOnlineUsers:
		g.broadcastOnlineUsers()
	case models.EventMatchmaking:
		g.handleMatchmaking(from, ev.TopicID)
	case models.EventMatchNotFound:
		g.Queue.RemoveFromQueue(ev.TopicID, from)
		from.SetQueuedTopic("")
	case models.EventRevealName:
		g.handleRevealName(from)
	case models.EventMessage:
		g.handleMessage(from, ev.Content)
	case models.EventEndChat:
		g.handleEndChat(from)
	default:
		// Unknown types are rejected by the read pump; nothing to do.
	}
}

func (g *Gateway) handleMatchmaking(from Client, topicID string) {
	// A connection already in a room or already waiting somewhere cannot
	// queue again; the request is a benign no-op.
	if from.GetRoomID() != "" || from.GetQueuedTopic() != "" {
		return
	}

	count, err := g.Quota.GetUserQuota(from.GetUsername())
	if err != nil || count == -1 {
		log.Printf("ERROR: quota lookup failed for %s: %v", from.GetUsername(), err)
		return
	}
	if count >= quota.MatchLimit {
		g.sendTo(from, models.ServerEvent{Type: models.EventQuotaExceeded})
		return
	}

	g.sendTo(from, models.ServerEvent{Type: models.EventContinueMatch})

	g.Queue.AddToQueue(topicID, from)
	from.SetQueuedTopic(topicID)

	if !g.Queue.Check(topicID) {
		return
	}
	user1, user2, ok := g.Queue.Match(topicID, from.GetUsername())
	if !ok {
		// A disconnect raced the check; the requester stays queued.
		return
	}

	roomID := uuid.New().String()
	room := NewRoom(roomID, topicID, g.Store)
	room.SetUser(user1.GetUsername(), user1.GetName())
	room.SetUser(user2.GetUsername(), user2.GetName())

	if err := room.SetChat(); err != nil {
		// The room was never announced; both participants must
		// re-request matchmaking.
		log.Printf("ERROR: failed to persist chat %s: %v", roomID, err)
		user1.SetQueuedTopic("")
		user2.SetQueuedTopic("")
		g.sendTo(from, models.ServerEvent{Type: models.EventMatchFail, Error: err.Error()})
		return
	}

	user1.SetRoomID(roomID)
	user2.SetRoomID(roomID)
	user1.SetQueuedTopic("")
	user2.SetQueuedTopic("")
	g.Rooms.AddRoom(room)

	if err := g.Quota.UpdateUserQuota(user1.GetUsername()); err != nil {
		log.Printf("ERROR: quota update failed for %s: %v", user1.GetUsername(), err)
	}
	if err := g.Quota.UpdateUserQuota(user2.GetUsername()); err != nil {
		log.Printf("ERROR: quota update failed for %s: %v", user2.GetUsername(), err)
	}

	matched := models.ServerEvent{Type: models.EventMatched, RoomID: roomID}
	g.sendTo(user1, matched)
	g.sendTo(user2, matched)
	log.Printf("Matched %s and %s in room %s (topic %s)",
		user1.GetUsername(), user2.GetUsername(), roomID, topicID)
}

func (g *Gateway) handleRevealName(from Client) {
	room := g.Rooms.GetRoom(from.GetRoomID())
	if room == nil {
		return
	}
	changed := room.RequestReveal(from.GetUsername())
	if !changed || !room.CanRevealName() {
		return
	}

	users := room.Users()
	g.sendToRoom(room.RoomID, models.ServerEvent{
		Type:      models.EventRevealName,
		Username1: users[0],
		Name1:     room.GetUsersName(users[0]),
		Username2: users[1],
		Name2:     room.GetUsersName(users[1]),
	}, "")
}

func (g *Gateway) handleMessage(from Client, content string) {
	room := g.Rooms.GetRoom(from.GetRoomID())
	if room == nil {
		return
	}

	msg, err := room.CreateMessage(from.GetUsername(), content)
	if err != nil {
		g.sendTo(from, models.ServerEvent{Type: models.EventMessageFail, Error: err.Error()})
		return
	}

	g.sendToRoom(room.RoomID, models.ServerEvent{
		Type:    models.EventMessage,
		Content: msg.Content,
		From:    from.GetConnID(),
	}, "")
}

func (g *Gateway) handleEndChat(from Client) {
	roomID := from.GetRoomID()
	if roomID == "" {
		return
	}
	if room := g.Rooms.GetRoom(roomID); room != nil {
		room.UpdateEndChat()
	}
	g.sendToRoom(roomID, models.ServerEvent{
		Type:   models.EventEndChat,
		Reason: "Your partner has ended the chat",
	}, "")
	// An ended session is over for both sides; drop the room and free
	// both connections to matchmake again.
	g.Rooms.DeleteRoom(roomID)
	g.clearRoom(roomID)
}

func (g *Gateway) broadcastOnlineUsers() {
	ev := models.ServerEvent{Type: models.EventOnlineUsers, Count: g.Presence.NumUsers()}
	for _, c := range g.Clients {
		g.sendTo(c, ev)
	}
}

// sendTo delivers an event without blocking the loop. A connection whose
// buffer is full is considered dead and torn down.
func (g *Gateway) sendTo(c Client, ev models.ServerEvent) {
	select {
	case c.GetSendChannel() <- ev:
	default:
		log.Printf("Dropping slow client %s", c.GetConnID())
		go func() { g.UnregisterCh <- c }()
	}
}

// clearRoom resets the room id of every connection still pointing at a
// deleted room.
func (g *Gateway) clearRoom(roomID string) {
	for _, c := range g.Clients {
		if c.GetRoomID() == roomID {
			c.SetRoomID("")
		}
	}
}

// sendToRoom delivers an event to every connection in a room, skipping
// the one with exceptConnID (used when that connection is already gone).
func (g *Gateway) sendToRoom(roomID string, ev models.ServerEvent, exceptConnID string) {
	for _, c := range g.Clients {
		if c.GetRoomID() == roomID && c.GetConnID() != exceptConnID {
			g.sendTo(c, ev)
		}
	}
}
