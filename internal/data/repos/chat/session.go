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

type ChatSessionRepo interface {
	Create(dbc dbctx.Context, row *types.ChatSession) error
	ListRecent(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.ChatSession, error)
}

type chatSessionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatSessionRepo(db *gorm.DB, log *logger.Logger) ChatSessionRepo {
	return &chatSessionRepo{db: db, log: log.With("repo", "ChatSessionRepo")}
}

func (r *chatSessionRepo) Create(dbc dbctx.Context, row *types.ChatSession) error {
	if row == nil {
		return apierr.Validation(fmt.Errorf("missing session row"))
	}
	if row.ID == uuid.Nil {
		return apierr.Validation(fmt.Errorf("missing session id"))
	}
	if row.UserID == uuid.Nil {
		return apierr.Validation(fmt.Errorf("missing user_id"))
	}
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return apierr.Storage(fmt.Errorf("insert chat session: %w", err))
	}
	return nil
}

func (r *chatSessionRepo) ListRecent(dbc dbctx.Context, userID uuid.UUID, limit int) ([]*types.ChatSession, error) {
	if userID == uuid.Nil {
		return nil, apierr.Validation(fmt.Errorf("missing user_id"))
	}
	if limit <= 0 {
		limit = 4
	}
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.ChatSession
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, apierr.Storage(fmt.Errorf("list recent sessions: %w", err))
	}
	return out, nil
}
