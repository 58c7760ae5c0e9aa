package models

import "time"

// User represents the users table. The unique index on username is the
// source of truth for duplicate registration; the pre-insert lookup only
// exists for a friendlier sequential-case message.
type User struct {
	UserID       int       `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Username     string    `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email        string    `gorm:"not null;size:100" json:"email"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	UserType     string    `gorm:"column:user_type;type:enum('doctor','admin','receptionist');not null" json:"user_type"`
	Name         string    `gorm:"size:100" json:"name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
