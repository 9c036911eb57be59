package services

import (
	"context"
	"time"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"

	"gorm.io/gorm"
)

// ActivityLedger appends immutable activity records. It holds no state
// between calls; every operation is a single round trip to the database.
type ActivityLedger struct{ db *gorm.DB }

func NewActivityLedger(db *gorm.DB) *ActivityLedger { return &ActivityLedger{db: db} }

// Append persists exactly one record with a server-assigned timestamp.
// There is no idempotency key: duplicate calls make duplicate records, and
// the submitting screen is what keeps users from double-tapping.
func (l *ActivityLedger) Append(ctx context.Context, userID uint, kind ActivityKind, points int, note string) error {
	if userID == 0 {
		return ErrNoSession
	}

	rec := models.ActivityRecord{
		UserID:     userID,
		Kind:       string(kind),
		Points:     points,
		Note:       note,
		OccurredAt: time.Now(),
	}
	if err := l.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return persistErr("append activity", err)
	}
	return nil
}

// Reset deletes every record for the user inside the trailing window.
// Irreversible; the caller owns the confirmation dialog.
func (l *ActivityLedger) Reset(ctx context.Context, userID uint, windowDays int) error {
	if userID == 0 {
		return ErrNoSession
	}

	cutoff := time.Now().AddDate(0, 0, -windowDays)
	if err := l.db.WithContext(ctx).
		Where("user_id = ? AND occurred_at >= ?", userID, cutoff).
		Delete(&models.ActivityRecord{}).Error; err != nil {
		return persistErr("reset activity window", err)
	}
	return nil
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}
