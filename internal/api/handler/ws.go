package handler

import (
	"net/http"

	"anonchat/backend/internal/chathub"
	"anonchat/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades an authenticated HTTP connection to a
// websocket session and registers it with the gateway.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}

	username, name, err := h.parseJWT(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &chathub.WebSocketClient{
		ConnID:   uuid.New().String(),
		Username: username,
		Name:     name,
		Conn:     conn,
		Hub:      h.Hub,
		Send:     make(chan models.ServerEvent, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
