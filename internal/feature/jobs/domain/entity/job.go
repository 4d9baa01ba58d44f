// Package entity defines the domain entities for the jobs feature.
package entity

import "time"

// Job represents a single job posting on the board.
// Every job is owned by exactly one user; the owner is set from the
// authenticated caller at creation time and never changed by an update.
type Job struct {
	// ID is the unique identifier for the job.
	ID uint `gorm:"primaryKey" json:"id"`

	// UserID references the owning user. Only the owner may mutate or
	// delete the job; reads are public.
	UserID uint `gorm:"index;not null" json:"user_id"`

	// Title is the job title.
	Title string `gorm:"size:255;not null" json:"title"`

	// Type, Description and the company/contact fields are opaque
	// pass-through values, stored as the client provided them.
	Type         string `gorm:"size:64" json:"type"`
	Description  string `gorm:"type:text" json:"description"`
	CompanyName  string `gorm:"size:255" json:"company_name"`
	ContactEmail string `gorm:"size:255" json:"contact_email"`
	ContactPhone string `gorm:"size:64" json:"contact_phone"`
	Location     string `gorm:"size:255" json:"location"`
	Salary       string `gorm:"size:64" json:"salary"`

	// CreatedAt orders the public listing (newest first).
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the job was last updated.
	UpdatedAt time.Time `json:"updated_at"`
}
