// Package models contains data structures for the application's domain models.
package models

// Topic represents a subject area that articles are filed under.
type Topic struct {
	Slug        string `gorm:"primaryKey" json:"slug"`
	Description string `gorm:"not null" json:"description"`
}
