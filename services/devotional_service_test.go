package services

import (
	"context"
	"testing"
	"time"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSeedDevotionalsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, SeedDevotionals(db))
	var first int64
	require.NoError(t, db.Model(&models.Devotional{}).Count(&first).Error)
	assert.Greater(t, first, int64(0))

	require.NoError(t, SeedDevotionals(db))
	var second int64
	require.NoError(t, db.Model(&models.Devotional{}).Count(&second).Error)
	assert.Equal(t, first, second)
}

func TestTodayRotatesByDayOfYear(t *testing.T) {
	db := newTestDB(t)
	svc := NewDevotionalService(db, NewActivityLedger(db))
	require.NoError(t, SeedDevotionals(db))

	var all []models.Devotional
	require.NoError(t, db.Order("id ASC").Find(&all).Error)

	got, err := svc.Today(context.Background())
	require.NoError(t, err)

	want := all[time.Now().YearDay()%len(all)]
	assert.Equal(t, want.ID, got.ID)

	// same day, same reading
	again, err := svc.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, got.ID, again.ID)
}

func TestTodayEmptyTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewDevotionalService(db, NewActivityLedger(db))

	_, err := svc.Today(context.Background())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCompleteCreditsThirtyPoints(t *testing.T) {
	db := newTestDB(t)
	ledger := NewActivityLedger(db)
	svc := NewDevotionalService(db, ledger)
	score := NewScoreService(db)
	ctx := context.Background()

	require.NoError(t, SeedDevotionals(db))
	var d models.Devotional
	require.NoError(t, db.First(&d).Error)

	require.NoError(t, svc.Complete(ctx, 1, d.ID))

	got, err := score.WindowScore(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 30, got)
}

func TestCompleteUnknownDevotional(t *testing.T) {
	db := newTestDB(t)
	svc := NewDevotionalService(db, NewActivityLedger(db))

	err := svc.Complete(context.Background(), 1, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
