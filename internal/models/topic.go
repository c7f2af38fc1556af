package models

import "gorm.io/gorm"

// Topic is a coarse interest tag that scopes the matchmaking queue.
type Topic struct {
	gorm.Model

	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// RequestTopic status values.
const (
	RequestTopicPending  = "pending"
	RequestTopicApproved = "approved"
	RequestTopicRejected = "rejected"
)

// RequestTopic is a user-suggested topic awaiting moderation.
type RequestTopic struct {
	gorm.Model

	Name        string `gorm:"not null" json:"name"`
	RequestedBy string `gorm:"not null" json:"requested_by"`
	Status      string `gorm:"not null;default:pending" json:"status"`
}
