package models

import "time"

// SobrietyDeclaration records a user affirming sobriety on a given day.
// Append-only; duplicates on the same day are allowed and collapsed when
// the streak is derived.
type SobrietyDeclaration struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"index;not null"`
	DeclaredOn time.Time `gorm:"index;not null"` // local midnight of the declared day
	CreatedAt  time.Time
}
