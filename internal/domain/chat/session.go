package chat

import (
	"time"

	"github.com/google/uuid"
)

// ChatSession groups the turns of one triage conversation. The id is minted
// by this service (never by the store), rows are never mutated or deleted.
type ChatSession struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	StartedAt time.Time `gorm:"not null;default:now();index" json:"started_at"`
}

func (ChatSession) TableName() string { return "chat_sessions" }
