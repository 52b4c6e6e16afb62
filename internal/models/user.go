// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. The password column holds a bcrypt hash
// and is never serialized.
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"unique;not null" json:"username"`
	Email          string         `gorm:"unique;not null" json:"email"`
	Password       string         `gorm:"not null" json:"-"`
	BirthDate      *time.Time     `json:"birth_date,omitempty"`
	Gender         string         `json:"gender,omitempty"`
	ProfilePicture string         `json:"profile_picture"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
	Posts          []Post         `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// PublicProfile is the externally visible slice of a user record.
type PublicProfile struct {
	UserID         uint   `json:"userId"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}
