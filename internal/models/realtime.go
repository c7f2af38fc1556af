package models

// Inbound event types accepted from a connection. Anything else is
// rejected at the boundary by the read pump.
const (
	EventGetOnlineUsers = "getOnlineUsers"
	EventMatchmaking    = "matchmaking"
	EventMatchNotFound  = "matchNotFound"
	EventRevealName     = "revealName"
	EventMessage        = "message"
	EventEndChat        = "endChat"
)

// Outbound event types emitted to a connection.
const (
	EventOnlineUsers   = "onlineUsers"
	EventContinueMatch = "continueMatch"
	EventQuotaExceeded = "quotaExceeded"
	EventMatched       = "matched"
	EventMatchFail     = "matchFail"
	EventMessageFail   = "messageFail"
	// revealName, message and endChat reuse the inbound names.
)

// ClientEvent is the closed set of messages a connection may send.
type ClientEvent struct {
	Type    string `json:"type"`
	TopicID string `json:"topic_id,omitempty"`
	Content string `json:"content,omitempty"`
}

// Valid reports whether the event type is one the gateway handles.
func (e ClientEvent) Valid() bool {
	switch e.Type {
	case EventGetOnlineUsers, EventMatchmaking, EventMatchNotFound,
		EventRevealName, EventMessage, EventEndChat:
		return true
	}
	return false
}

// ServerEvent is the closed set of messages the gateway emits. Fields not
// relevant to the event type are omitted from the wire form.
type ServerEvent struct {
	Type string `json:"type"`

	// onlineUsers
	Count int `json:"count,omitempty"`

	// matched
	RoomID string `json:"room_id,omitempty"`

	// revealName
	Username1 string `json:"username1,omitempty"`
	Name1     string `json:"name1,omitempty"`
	Username2 string `json:"username2,omitempty"`
	Name2     string `json:"name2,omitempty"`

	// message
	Content string `json:"content,omitempty"`
	From    string `json:"from,omitempty"`

	// matchFail / messageFail / endChat
	Error  string `json:"error,omitempty"`
	Reason string `json:"reason,omitempty"`
}
