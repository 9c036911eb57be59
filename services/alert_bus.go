package services

import (
	"time"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"

	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// EmitAlert persists the alert and fans it out to connected sockets and
// push endpoints. Safe to call from anywhere, including before init (no-op).
func EmitAlert(userID uint, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		title := "Recuperação e Foco"
		if typ == "milestone" {
			title = "Nova conquista!"
		}
		_alert.ps.PushToUser(userID, title, message, map[string]string{"type": typ})
	}
}
