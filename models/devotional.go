package models

import "gorm.io/gorm"

// Devotional is one daily reading. The "devotional of the day" is picked
// deterministically from this table by day of year.
type Devotional struct {
	gorm.Model
	Title     string `gorm:"not null"`
	Reference string `gorm:"size:64"` // e.g. "Filipenses 4:13"
	Verse     string `gorm:"type:text"`
	Body      string `gorm:"type:text"`
}
