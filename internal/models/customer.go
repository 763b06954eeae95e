package models

import "time"

type Customer struct {
	// Opaque generated key. The externally supplied CustomerID stays the
	// public identifier; uniqueness is enforced by the index, not by the
	// handler's pre-check.
	ID         string `gorm:"primaryKey;size:36" json:"-"`
	CustomerID string `gorm:"size:100;uniqueIndex;not null" json:"id"`

	// Derived lookup key (CustomerID+Phone), kept out of the primary key.
	Fingerprint string `gorm:"size:36;index" json:"-"`

	FirstName string `gorm:"size:100;not null" json:"first_name"`
	LastName  string `gorm:"size:100;not null" json:"last_name"`
	Phone     string `gorm:"size:20;not null" json:"phone"`
	Email     string `gorm:"size:100;not null" json:"email"`
	Birthday  string `gorm:"size:10;not null" json:"birthday"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
