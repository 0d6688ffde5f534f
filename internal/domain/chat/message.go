package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one immutable turn. SessionID is deliberately not a foreign
// key: send accepts unknown session ids and lets messages accumulate under
// the key. Ordering within a session is by CreatedAt; ties are undefined,
// inherited from the store's timestamp resolution.
type ChatMessage struct {
	ID        uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	SessionID uuid.UUID      `gorm:"type:uuid;not null;index" json:"session_id"`
	Role      string         `gorm:"column:role;not null;index" json:"role"`
	Message   string         `gorm:"column:message;type:text;not null" json:"message"`
	Metadata  datatypes.JSON `gorm:"type:jsonb;column:metadata;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now();index" json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_messages" }
