package model

import "time"

// RefreshToken is a row in the database-backed refresh-token store.
// The in-memory store keeps the same fields without persistence.
type RefreshToken struct {
	Token     string    `gorm:"primaryKey;type:varchar(512)" json:"-"`
	UserID    string    `gorm:"type:varchar(36);not null;index" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"-"`
	CreatedAt time.Time `json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
