// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// DefaultImageURL is used when a user signs up without a profile picture.
const DefaultImageURL = "/static/images/default-pic.png"

// DefaultHeaderImageURL is used when a user has not set a banner picture.
const DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"

// User represents an account in the Warbler application.
//
// Users are hard-deleted: account removal cascades through follow edges,
// likes and messages inside a single transaction (see repository.UserRepository.Delete).
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"unique;not null" json:"username"`
	Email          string    `gorm:"unique;not null" json:"email"`
	Password       string    `gorm:"not null" json:"-"`
	ImageURL       string    `json:"image_url"`
	HeaderImageURL string    `json:"header_image_url"`
	Bio            string    `gorm:"size:250" json:"bio"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	Messages       []Message `gorm:"foreignKey:UserID" json:"messages,omitempty"`
}
