package chat

import (
	"time"

	"github.com/google/uuid"
)

// SymptomSummary is a derived artifact, written once and never touched again.
type SymptomSummary struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Summary   string    `gorm:"column:summary;type:text;not null" json:"summary"`
	CreatedAt time.Time `gorm:"not null;default:now();index" json:"created_at"`
}

func (SymptomSummary) TableName() string { return "symptom_summaries" }
