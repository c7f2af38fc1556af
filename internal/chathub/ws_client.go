package chathub

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"anonchat/backend/internal/models"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// WebSocketClient implements the Client interface over a gorilla
// websocket connection.
type WebSocketClient struct {
	ConnID   string
	Username string
	Name     string
	Conn     *websocket.Conn
	Hub      *Gateway
	Send     chan models.ServerEvent

	mu          sync.Mutex
	roomID      string
	queuedTopic string
}

func (c *WebSocketClient) GetConnID() string   { return c.ConnID }
func (c *WebSocketClient) GetUsername() string { return c.Username }
func (c *WebSocketClient) GetName() string     { return c.Name }

func (c *WebSocketClient) GetRoomID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roomID
}

func (c *WebSocketClient) SetRoomID(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.roomID = id
}

func (c *WebSocketClient) GetQueuedTopic() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.queuedTopic
}

func (c *WebSocketClient) SetQueuedTopic(topicID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queuedTopic = topicID
}

func (c *WebSocketClient) GetSendChannel() chan<- models.ServerEvent { return c.Send }

// Run starts the read and write pumps.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the Send channel, which stops the write pump. The read
// pump stops on its own once the connection is closed.
func (c *WebSocketClient) Close() {
	close(c.Send)
}

// readPump decodes inbound events and forwards them to the gateway.
// Malformed or unrecognized events are dropped at this boundary.
func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading message: %v", err)
			}
			break
		}

		var ev models.ClientEvent
		if err := json.Unmarshal(message, &ev); err != nil {
			log.Printf("Error decoding event from client %s: %v", c.ConnID, err)
			continue
		}
		if !ev.Valid() {
			log.Printf("Rejected unknown event %q from client %s", ev.Type, c.ConnID)
			continue
		}

		c.Hub.EventCh <- InboundEvent{From: c, Event: ev}
	}
}

// writePump drains the Send channel into the websocket and keeps the
// connection alive with pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case ev, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by the hub.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteJSON(ev); err != nil {
				log.Printf("Error writing event to client %s: %v", c.ConnID, err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
