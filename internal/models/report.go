package models

import "gorm.io/gorm"

// Report is a complaint filed by one chat participant against the other.
// IssuedID is derived from the chat record, never supplied by the client.
type Report struct {
	gorm.Model

	ChatID   string `gorm:"not null;index" json:"chat_id"`
	IssuerID string `gorm:"not null" json:"issuer_id"`
	IssuedID string `gorm:"not null" json:"issued_id"`
	Reason   string `gorm:"type:text;not null" json:"reason"`
	Seen     bool   `gorm:"not null;default:false" json:"seen"`
}
