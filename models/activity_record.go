package models

import "time"

// ActivityRecord is one point-earning (or point-losing) user action.
// Records are immutable once created; the only delete path is the bulk
// window reset.
type ActivityRecord struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"index;not null"`
	Kind       string    `gorm:"size:32;index;not null"`
	Points     int       `gorm:"not null"`
	Note       string    `gorm:"type:text"` // free text, never interpreted
	OccurredAt time.Time `gorm:"index;not null"`
}
