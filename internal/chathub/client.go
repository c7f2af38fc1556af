package chathub

import "anonchat/backend/internal/models"

// Client is the interface for one live connection. It abstracts the
// underlying transport so the gateway can manage connections uniformly
// and tests can substitute doubles.
type Client interface {
	// GetConnID returns the unique identifier of this connection.
	GetConnID() string
	// GetUsername returns the authenticated username behind the connection.
	GetUsername() string
	// GetName returns the user's display name.
	GetName() string

	// GetRoomID returns the room the connection is currently in, or "".
	GetRoomID() string
	// SetRoomID assigns the connection to a room. Called by the gateway
	// after a successful pairing.
	SetRoomID(string)

	// GetQueuedTopic returns the topic the connection is queued under, or "".
	GetQueuedTopic() string
	// SetQueuedTopic records the topic the connection is waiting on.
	SetQueuedTopic(string)

	// GetSendChannel returns the channel the gateway writes outbound
	// events to for this connection.
	GetSendChannel() chan<- models.ServerEvent

	// Run starts the connection's read and write pumps.
	Run()
	// Close shuts down the connection's outbound channel.
	Close()
}
