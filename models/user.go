package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FullName  string
	Role      string `gorm:"size:16;not null;default:dependent"`
	AvatarURL string

	// Date the user marked as the start of their recovery. Streaks are
	// derived from declarations, not from this field.
	SobrietyStartDate time.Time

	MFAEnabled    bool
	MFACode       string
	ResetToken    string
	ResetTokenExp time.Time
}
