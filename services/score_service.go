package services

import (
	"context"
	"time"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"

	"gorm.io/gorm"
)

// ScoreService derives the recovery thermometer from the ledger. Nothing
// is cached; the score is recomputed from the rows on every call.
type ScoreService struct{ db *gorm.DB }

func NewScoreService(db *gorm.DB) *ScoreService { return &ScoreService{db: db} }

// WindowScore is the exact sum of points over the trailing window. The
// boundary is inclusive: a record exactly windowDays old still counts.
// No decay, no weighting — a plain fold over the rows.
func (s *ScoreService) WindowScore(ctx context.Context, userID uint, windowDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -windowDays)

	var total int64
	err := s.db.WithContext(ctx).
		Model(&models.ActivityRecord{}).
		Where("user_id = ? AND occurred_at >= ?", userID, cutoff).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, persistErr("sum activity window", err)
	}
	return int(total), nil
}

// ThermometerZone is the display band for a window score.
type ThermometerZone string

const (
	ZoneAlerta    ThermometerZone = "alerta"
	ZoneAtencao   ThermometerZone = "atenção"
	ZoneEstavel   ThermometerZone = "estável"
	ZoneExcelente ThermometerZone = "excelente"
)

func ZoneFor(score int) ThermometerZone {
	switch {
	case score < 0:
		return ZoneAlerta
	case score < 50:
		return ZoneAtencao
	case score < 100:
		return ZoneEstavel
	default:
		return ZoneExcelente
	}
}
