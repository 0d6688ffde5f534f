package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fadilefdika/Doctor-AI/internal/domain/auth"
	"github.com/fadilefdika/Doctor-AI/internal/http/response"
	"github.com/fadilefdika/Doctor-AI/internal/platform/apierr"
	"github.com/fadilefdika/Doctor-AI/internal/services"
)

type ChatHandler struct {
	chat services.ChatService
}

func NewChatHandler(chat services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// POST /chat/start-session
func (h *ChatHandler) StartSession(c *gin.Context) {
	identity := auth.GetIdentity(c.Request.Context())
	sessionID, err := h.chat.StartSession(c.Request.Context(), identity)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"message":    "Session started",
		"session_id": sessionID.String(),
	})
}

// POST /chat/send
func (h *ChatHandler) Send(c *gin.Context) {
	var req struct {
		Message   string `json:"message"`
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apierr.Validation(err))
		return
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		response.RespondError(c, apierr.Validation(fmt.Errorf("invalid session_id")))
		return
	}
	identity := auth.GetIdentity(c.Request.Context())
	reply, err := h.chat.Send(c.Request.Context(), identity, sessionID, req.Message)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"response": reply})
}

// POST /chat/summary
func (h *ChatHandler) Summary(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apierr.Validation(err))
		return
	}
	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		response.RespondError(c, apierr.Validation(fmt.Errorf("invalid session_id")))
		return
	}
	identity := auth.GetIdentity(c.Request.Context())
	summary, err := h.chat.Summary(c.Request.Context(), identity, sessionID)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"message": "Summary created",
		"summary": summary,
	})
}

// GET /chat/flashcards
func (h *ChatHandler) Flashcards(c *gin.Context) {
	identity := auth.GetIdentity(c.Request.Context())
	cards, err := h.chat.Flashcards(c.Request.Context(), identity)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"flashcards": cards})
}
