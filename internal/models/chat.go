package models

import (
	"time"

	"gorm.io/gorm"
)

// Chat is the persistent record of one two-party session. EndDatetime is
// nil while the session is active.
type Chat struct {
	ChatID string `gorm:"primaryKey"`
	// TopicID is the topic tag the participants matched on, stored
	// verbatim.
	TopicID       string `gorm:"type:text;not null"`
	UserID1       string
	UserID2       string
	StartDatetime time.Time
	EndDatetime   *time.Time
}

// Message is a saved chat message. The embedded gorm.Model provides the
// message ID and timestamps.
type Message struct {
	gorm.Model

	// ChatID is the room identifier the message was sent in.
	ChatID string `gorm:"type:uuid;not null;index:idx_chat_msg"`
	// SenderID is the username of the sender.
	SenderID string `gorm:"type:text;not null;index:idx_chat_msg"`
	// Content is the message body.
	Content string `gorm:"type:text;not null"`
}
