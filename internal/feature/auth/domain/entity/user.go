// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Roles a user account can carry. Exactly one admin account exists at steady
// state; it is seeded at first startup.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account. The JSON field names follow the wire
// format consumed by the web client.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`

	// Email must be unique across all users; lookups are case-sensitive
	// exact matches against the stored value.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the bcrypt hash of the credential. The plaintext is never
	// stored, and the hash is never serialized.
	Password string `gorm:"size:255;not null" json:"-"`

	Company  string `gorm:"size:255;not null" json:"company"`
	JobTitle string `gorm:"size:255;not null" json:"jobTitle"`

	Role string `gorm:"size:16;not null;default:user" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string { return "users" }
