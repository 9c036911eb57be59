package models

import "time"

type ChatMessage struct {
	ID             uint      `gorm:"primaryKey"`
	UserID         uint      `gorm:"index;not null"`
	ConversationID string    `gorm:"size:36;index;not null"`
	Sender         string    `gorm:"size:16"` // "user" | "assistant"
	Content        string    `gorm:"type:text"`
	CreatedAt      time.Time
}
