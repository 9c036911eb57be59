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

func declareOn(t *testing.T, db *gorm.DB, userID uint, daysAgo int) {
	t.Helper()
	d := models.SobrietyDeclaration{
		UserID:     userID,
		DeclaredOn: dayStartLocal(time.Now().AddDate(0, 0, -daysAgo)),
	}
	require.NoError(t, db.Create(&d).Error)
}

func TestDeclareCreditsLedger(t *testing.T) {
	db := newTestDB(t)
	ledger := NewActivityLedger(db)
	svc := NewSobrietyService(db, ledger)
	score := NewScoreService(db)
	ctx := context.Background()

	streak, err := svc.Declare(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)

	got, err := score.WindowScore(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 20, got)

	var count int64
	require.NoError(t, db.Model(&models.SobrietyDeclaration{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDeclareWithoutSession(t *testing.T) {
	db := newTestDB(t)
	svc := NewSobrietyService(db, NewActivityLedger(db))

	_, err := svc.Declare(context.Background(), 0)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestDeclareTwiceSameDay(t *testing.T) {
	db := newTestDB(t)
	ledger := NewActivityLedger(db)
	svc := NewSobrietyService(db, ledger)
	ctx := context.Background()

	_, err := svc.Declare(ctx, 1)
	require.NoError(t, err)
	streak, err := svc.Declare(ctx, 1)
	require.NoError(t, err)

	// two rows in each table, but the streak collapses same-day duplicates
	assert.Equal(t, 1, streak)

	var count int64
	require.NoError(t, db.Model(&models.SobrietyDeclaration{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestStreakDays(t *testing.T) {
	db := newTestDB(t)
	svc := NewSobrietyService(db, NewActivityLedger(db))
	ctx := context.Background()

	t.Run("no declarations", func(t *testing.T) {
		got, err := svc.StreakDays(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("consecutive days ending today", func(t *testing.T) {
		for _, ago := range []int{0, 1, 2, 3} {
			declareOn(t, db, 2, ago)
		}
		got, err := svc.StreakDays(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, 4, got)
	})

	t.Run("not yet declared today keeps the streak", func(t *testing.T) {
		for _, ago := range []int{1, 2, 3} {
			declareOn(t, db, 3, ago)
		}
		got, err := svc.StreakDays(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})

	t.Run("gap breaks the streak", func(t *testing.T) {
		for _, ago := range []int{0, 1, 3, 4} { // missed 2 days ago
			declareOn(t, db, 4, ago)
		}
		got, err := svc.StreakDays(ctx, 4)
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("stale streak counts zero", func(t *testing.T) {
		for _, ago := range []int{5, 6, 7} {
			declareOn(t, db, 5, ago)
		}
		got, err := svc.StreakDays(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})
}

func TestMedal(t *testing.T) {
	db := newTestDB(t)
	svc := NewSobrietyService(db, NewActivityLedger(db))
	ctx := context.Background()

	for ago := 0; ago < 30; ago++ {
		declareOn(t, db, 1, ago)
	}

	tier, streak, err := svc.Medal(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 30, streak)
	assert.Equal(t, "bronze", tier.Name)
}
