package models

import "time"

type User struct {
	// Opaque generated key, never derived from username or email.
	ID string `gorm:"primaryKey;size:36" json:"user_id"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Username  string `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email     string `gorm:"size:100;uniqueIndex;not null" json:"email"`

	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Salt         string `gorm:"size:64;not null" json:"-"`

	// Consecutive failed logins since the last success.
	LoginAttempts int `gorm:"not null;default:0" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
