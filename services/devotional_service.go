package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"

	"gorm.io/gorm"
)

type DevotionalService struct {
	db     *gorm.DB
	ledger *ActivityLedger
}

func NewDevotionalService(db *gorm.DB, ledger *ActivityLedger) *DevotionalService {
	return &DevotionalService{db: db, ledger: ledger}
}

// Today picks the devotional deterministically by day of year, so every
// user sees the same reading and the rotation needs no cursor.
func (s *DevotionalService) Today(ctx context.Context) (*models.Devotional, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Devotional{}).Count(&count).Error; err != nil {
		return nil, persistErr("count devotionals", err)
	}
	if count == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	idx := time.Now().YearDay() % int(count)

	var d models.Devotional
	err := s.db.WithContext(ctx).
		Order("id ASC").
		Offset(idx).
		First(&d).Error
	if err != nil {
		return nil, persistErr("load devotional", err)
	}
	return &d, nil
}

// Complete credits the devotional reading on the ledger. Completing twice
// credits twice; the reading screen disables its button after the first.
func (s *DevotionalService) Complete(ctx context.Context, userID, devotionalID uint) error {
	var d models.Devotional
	if err := s.db.WithContext(ctx).First(&d, devotionalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return persistErr("load devotional", err)
	}
	note := fmt.Sprintf("devocional: %s", d.Title)
	return s.ledger.Append(ctx, userID, ActivityDevotional, PointsFor(ActivityDevotional, ""), note)
}

// SeedDevotionals loads the starter readings on first boot. No-op when the
// table already has rows.
func SeedDevotionals(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Devotional{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []models.Devotional{
		{
			Title:     "Força para hoje",
			Reference: "Filipenses 4:13",
			Verse:     "Tudo posso naquele que me fortalece.",
			Body:      "A recuperação acontece um dia de cada vez. Hoje, busque força não na sua vontade apenas, mas em algo maior que você.",
		},
		{
			Title:     "Recomeço",
			Reference: "Lamentações 3:22-23",
			Verse:     "As misericórdias do Senhor são a causa de não sermos consumidos; renovam-se cada manhã.",
			Body:      "Cada manhã é um recomeço. O que aconteceu ontem não define o que você pode construir hoje.",
		},
		{
			Title:     "Um passo de cada vez",
			Reference: "Salmos 37:23-24",
			Verse:     "O Senhor firma os passos de um homem, quando a conduta dele o agrada.",
			Body:      "Não olhe para o tamanho da caminhada. Olhe para o próximo passo. É ele que está ao seu alcance agora.",
		},
		{
			Title:     "Descanso",
			Reference: "Mateus 11:28",
			Verse:     "Vinde a mim, todos os que estais cansados e oprimidos, e eu vos aliviarei.",
			Body:      "Cansaço faz parte do processo. Pedir ajuda não é fraqueza — é o caminho.",
		},
		{
			Title:     "Tentação e saída",
			Reference: "1 Coríntios 10:13",
			Verse:     "Deus é fiel; não permitirá que sejais tentados além das vossas forças.",
			Body:      "Quando o gatilho vier, lembre: ele passa. Registre, respire, e procure a saída que sempre existe.",
		},
	}
	return db.Create(&seed).Error
}
