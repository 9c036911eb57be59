package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"

	"gorm.io/gorm"
)

type SobrietyService struct {
	db     *gorm.DB
	ledger *ActivityLedger
}

func NewSobrietyService(db *gorm.DB, ledger *ActivityLedger) *SobrietyService {
	return &SobrietyService{db: db, ledger: ledger}
}

// Declare records today's sobriety affirmation and credits the ledger.
// There is no dedup: two taps (or two devices) in the same second produce
// two declarations. The streak derivation collapses same-day rows, and the
// button disables itself client-side after the first success.
func (s *SobrietyService) Declare(ctx context.Context, userID uint) (int, error) {
	if userID == 0 {
		return 0, ErrNoSession
	}

	d := models.SobrietyDeclaration{
		UserID:     userID,
		DeclaredOn: dayStartLocal(time.Now()),
	}
	if err := s.db.WithContext(ctx).Create(&d).Error; err != nil {
		return 0, persistErr("declare sobriety", err)
	}

	if err := s.ledger.Append(ctx, userID, ActivitySobriety, PointsFor(ActivitySobriety, ""), ""); err != nil {
		return 0, err
	}

	streak, err := s.StreakDays(ctx, userID)
	if err != nil {
		return 0, err
	}

	// Congratulate on the day a medal threshold is crossed.
	if t := TierFor(streak); t.MinDays == streak && streak > 0 {
		EmitAlert(userID, "milestone",
			fmt.Sprintf("%s Parabéns! %d dias de sobriedade — medalha %s conquistada.", t.Glyph, streak, t.Name))
	}

	return streak, nil
}

// StreakDays counts consecutive declared days ending today or yesterday.
// A missed day breaks the streak; a day not yet declared today does not.
func (s *SobrietyService) StreakDays(ctx context.Context, userID uint) (int, error) {
	var days []time.Time
	err := s.db.WithContext(ctx).
		Model(&models.SobrietyDeclaration{}).
		Where("user_id = ?", userID).
		Distinct("declared_on").
		Order("declared_on DESC").
		Pluck("declared_on", &days).Error
	if err != nil {
		return 0, persistErr("load declarations", err)
	}
	if len(days) == 0 {
		return 0, nil
	}

	cur := dayStartLocal(time.Now())
	if !sameDay(days[0], cur) {
		cur = cur.AddDate(0, 0, -1)
		if !sameDay(days[0], cur) {
			return 0, nil
		}
	}

	streak := 1
	for _, d := range days[1:] {
		cur = cur.AddDate(0, 0, -1)
		if !sameDay(d, cur) {
			break
		}
		streak++
	}
	return streak, nil
}

// Medal returns the user's current medal with the streak that earned it.
func (s *SobrietyService) Medal(ctx context.Context, userID uint) (Tier, int, error) {
	streak, err := s.StreakDays(ctx, userID)
	if err != nil {
		return Tier{}, 0, err
	}
	return TierFor(streak), streak, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}
