package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single conn keeps :memory: stable across the pool
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.ActivityRecord{},
		&models.SobrietyDeclaration{},
		&models.Devotional{},
	))
	return db
}

func TestAppendAndWindowScore(t *testing.T) {
	db := newTestDB(t)
	ledger := NewActivityLedger(db)
	score := NewScoreService(db)
	ctx := context.Background()

	require.NoError(t, ledger.Append(ctx, 1, ActivityDevotional, 30, ""))
	require.NoError(t, ledger.Append(ctx, 1, ActivityMood, -5, "dia difícil"))
	require.NoError(t, ledger.Append(ctx, 2, ActivityTask, 10, "")) // other user

	got, err := score.WindowScore(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 25, got)
}

func TestWindowScoreExcludesOldRecords(t *testing.T) {
	db := newTestDB(t)
	score := NewScoreService(db)
	ctx := context.Background()

	inside := models.ActivityRecord{UserID: 1, Kind: "task", Points: 10, OccurredAt: time.Now().AddDate(0, 0, -6)}
	outside := models.ActivityRecord{UserID: 1, Kind: "task", Points: 99, OccurredAt: time.Now().AddDate(0, 0, -8)}
	require.NoError(t, db.Create(&inside).Error)
	require.NoError(t, db.Create(&outside).Error)

	got, err := score.WindowScore(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 10, got)
}

func TestWindowScoreEmpty(t *testing.T) {
	db := newTestDB(t)
	score := NewScoreService(db)

	got, err := score.WindowScore(context.Background(), 42, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestAppendWithoutSession(t *testing.T) {
	db := newTestDB(t)
	ledger := NewActivityLedger(db)
	score := NewScoreService(db)
	ctx := context.Background()

	err := ledger.Append(ctx, 0, ActivityTask, 10, "")
	assert.ErrorIs(t, err, ErrNoSession)

	// nothing was written
	var count int64
	require.NoError(t, db.Model(&models.ActivityRecord{}).Count(&count).Error)
	assert.Zero(t, count)

	got, err := score.WindowScore(ctx, 0, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
}

func TestDuplicateAppendsMakeDuplicateRecords(t *testing.T) {
	db := newTestDB(t)
	ledger := NewActivityLedger(db)
	ctx := context.Background()

	require.NoError(t, ledger.Append(ctx, 1, ActivitySobriety, 20, ""))
	require.NoError(t, ledger.Append(ctx, 1, ActivitySobriety, 20, ""))

	var count int64
	require.NoError(t, db.Model(&models.ActivityRecord{}).
		Where("user_id = ? AND kind = ?", 1, "sobriety").
		Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestResetClearsWindow(t *testing.T) {
	db := newTestDB(t)
	ledger := NewActivityLedger(db)
	score := NewScoreService(db)
	ctx := context.Background()

	require.NoError(t, ledger.Append(ctx, 1, ActivityDevotional, 30, ""))
	require.NoError(t, ledger.Append(ctx, 1, ActivityTask, 10, ""))

	// a record older than the window must survive the reset
	old := models.ActivityRecord{UserID: 1, Kind: "task", Points: 5, OccurredAt: time.Now().AddDate(0, 0, -10)}
	require.NoError(t, db.Create(&old).Error)

	require.NoError(t, ledger.Reset(ctx, 1, 7))

	got, err := score.WindowScore(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	var count int64
	require.NoError(t, db.Model(&models.ActivityRecord{}).Where("user_id = ?", 1).Count(&count).Error)
	assert.Equal(t, int64(1), count, "record outside the window survives")
}

func TestResetWithoutSession(t *testing.T) {
	db := newTestDB(t)
	ledger := NewActivityLedger(db)

	err := ledger.Reset(context.Background(), 0, 7)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestPersistenceErrorWrapping(t *testing.T) {
	db := newTestDB(t)
	ledger := NewActivityLedger(db)

	// closing the pool makes every write fail with a PersistenceError
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	err = ledger.Append(context.Background(), 1, ActivityTask, 10, "")
	var perr *PersistenceError
	assert.True(t, errors.As(err, &perr))
	assert.NotErrorIs(t, err, ErrNoSession)
}
