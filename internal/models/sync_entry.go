package models

import "time"

// SyncEntry is a durable queue row naming an uploaded file (relative to the
// mirror directory) that has not yet been pushed to the remote mirror. Rows are
// removed only after a successful push, so pending uploads survive restarts.
type SyncEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Path      string    `gorm:"not null" json:"path"`
	CreatedAt time.Time `json:"created_at"`
}
