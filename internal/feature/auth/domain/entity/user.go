// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and opaque profile fields that
// are stored as provided by the client.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the user's display name.
	Name string `gorm:"size:255" json:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords and is never serialized.
	Password string `gorm:"size:255;not null" json:"-"`

	// PhoneNumber, Gender, DateOfBirth and MembershipStatus are profile
	// fields passed through without validation.
	PhoneNumber      string `gorm:"size:64" json:"phone_number"`
	Gender           string `gorm:"size:32" json:"gender"`
	DateOfBirth      string `gorm:"size:32" json:"date_of_birth"`
	MembershipStatus string `gorm:"size:32" json:"membership_status"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}
