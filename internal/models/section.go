package models

import "time"

// Section is a free-text portfolio block keyed by (user, name). Saving an
// existing pair replaces its content.
type Section struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_sections_user_name" json:"user_id"`
	Name      string    `gorm:"not null;uniqueIndex:idx_sections_user_name" json:"name"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
