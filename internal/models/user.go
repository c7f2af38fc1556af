package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// User is a registered participant. The username is the stable identity
// used by matchmaking and quota accounting; Name is the display name that
// stays hidden from a chat partner until both sides reveal.
type User struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;not null" json:"username"`
	Name      string         `gorm:"not null" json:"name"`
	Interests pq.StringArray `gorm:"type:text[]" json:"interests"`
}

// BeforeCreate is a GORM hook that assigns a UUID when the ID is unset.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return
}
