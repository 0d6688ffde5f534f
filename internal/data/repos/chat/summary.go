package chat

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/fadilefdika/Doctor-AI/internal/domain"
	"github.com/fadilefdika/Doctor-AI/internal/platform/apierr"
	"github.com/fadilefdika/Doctor-AI/internal/platform/dbctx"
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
)

// SymptomSummaryRepo is write-only: summaries are stored for the record and
// returned inline from the summary flow, never read back over the API.
type SymptomSummaryRepo interface {
	Create(dbc dbctx.Context, row *types.SymptomSummary) error
}

type symptomSummaryRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSymptomSummaryRepo(db *gorm.DB, log *logger.Logger) SymptomSummaryRepo {
	return &symptomSummaryRepo{db: db, log: log.With("repo", "SymptomSummaryRepo")}
}

func (r *symptomSummaryRepo) Create(dbc dbctx.Context, row *types.SymptomSummary) error {
	if row == nil {
		return apierr.Validation(fmt.Errorf("missing summary row"))
	}
	if row.UserID == uuid.Nil {
		return apierr.Validation(fmt.Errorf("missing user_id"))
	}
	if row.Summary == "" {
		return apierr.Validation(fmt.Errorf("missing summary text"))
	}
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return apierr.Storage(fmt.Errorf("insert symptom summary: %w", err))
	}
	return nil
}
