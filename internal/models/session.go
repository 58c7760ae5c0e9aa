package models

import "time"

// Session represents the sessions table. TokenHash is the SHA-256 hex of the
// opaque cookie value; the raw token is never stored.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TokenHash string    `gorm:"not null;size:64;uniqueIndex" json:"-"`
	UserID    int       `gorm:"not null;index" json:"user_id"`
	Username  string    `gorm:"not null;size:50" json:"username"`
	UserType  string    `gorm:"column:user_type;size:20" json:"user_type"`
	Name      string    `gorm:"size:100" json:"name"`
	LoginTime time.Time `gorm:"not null" json:"login_time"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (Session) TableName() string {
	return "sessions"
}
