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

// ChatMessageRepo covers the message operations of the store contract.
// Every insert stands alone: a user-turn row may persist even when the
// assistant turn never arrives, and nothing here rolls that back.
//
// Concurrent sends on one session are not serialized; interleaved rows order
// by created_at, last timestamp wins.
type ChatMessageRepo interface {
	Create(dbc dbctx.Context, row *types.ChatMessage) error
	ListBySession(dbc dbctx.Context, userID, sessionID uuid.UUID) ([]*types.ChatMessage, error)
	ListRecentUserMessages(dbc dbctx.Context, userID, sessionID uuid.UUID, limit int) ([]*types.ChatMessage, error)
}

type chatMessageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewChatMessageRepo(db *gorm.DB, log *logger.Logger) ChatMessageRepo {
	return &chatMessageRepo{db: db, log: log.With("repo", "ChatMessageRepo")}
}

func (r *chatMessageRepo) Create(dbc dbctx.Context, row *types.ChatMessage) error {
	if row == nil {
		return apierr.Validation(fmt.Errorf("missing message row"))
	}
	if row.UserID == uuid.Nil {
		return apierr.Validation(fmt.Errorf("missing user_id"))
	}
	if row.SessionID == uuid.Nil {
		return apierr.Validation(fmt.Errorf("missing session_id"))
	}
	if row.Role != types.RoleUser && row.Role != types.RoleAssistant {
		return apierr.Validation(fmt.Errorf("invalid role %q", row.Role))
	}
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return apierr.Storage(fmt.Errorf("insert chat message: %w", err))
	}
	return nil
}

// ListBySession returns all turns for the pair ascending by created_at.
// Equal timestamps sort in store-defined order; that tie is a documented
// limitation, not something this layer resolves.
func (r *chatMessageRepo) ListBySession(dbc dbctx.Context, userID, sessionID uuid.UUID) ([]*types.ChatMessage, error) {
	if userID == uuid.Nil || sessionID == uuid.Nil {
		return nil, apierr.Validation(fmt.Errorf("missing user_id or session_id"))
	}
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.ChatMessage
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ? AND session_id = ?", userID, sessionID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, apierr.Storage(fmt.Errorf("list session messages: %w", err))
	}
	return out, nil
}

func (r *chatMessageRepo) ListRecentUserMessages(dbc dbctx.Context, userID, sessionID uuid.UUID, limit int) ([]*types.ChatMessage, error) {
	if userID == uuid.Nil || sessionID == uuid.Nil {
		return nil, apierr.Validation(fmt.Errorf("missing user_id or session_id"))
	}
	if limit <= 0 {
		limit = 3
	}
	transaction := dbc.Tx
	if transaction == nil {
		transaction = r.db
	}
	var out []*types.ChatMessage
	if err := transaction.WithContext(dbc.Ctx).
		Where("user_id = ? AND session_id = ? AND role = ?", userID, sessionID, types.RoleUser).
		Order("created_at DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, apierr.Storage(fmt.Errorf("list recent user messages: %w", err))
	}
	return out, nil
}
