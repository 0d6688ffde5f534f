package domain

import (
	"github.com/fadilefdika/Doctor-AI/internal/domain/auth"
	"github.com/fadilefdika/Doctor-AI/internal/domain/chat"
)

type (
	Identity = auth.Identity

	ChatSession    = chat.ChatSession
	ChatMessage    = chat.ChatMessage
	SymptomSummary = chat.SymptomSummary
	Flashcard      = chat.Flashcard
)

const (
	RoleUser      = chat.RoleUser
	RoleAssistant = chat.RoleAssistant
)
