package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	chatrepos "github.com/fadilefdika/Doctor-AI/internal/data/repos/chat"
	types "github.com/fadilefdika/Doctor-AI/internal/domain"
	"github.com/fadilefdika/Doctor-AI/internal/domain/auth"
	"github.com/fadilefdika/Doctor-AI/internal/platform/apierr"
	"github.com/fadilefdika/Doctor-AI/internal/platform/dbctx"
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
	"github.com/fadilefdika/Doctor-AI/internal/platform/openai"
)

const (
	chatMaxTokens      = 500
	flashcardMaxTokens = 300
	flashcardSessions  = 4
	// flashcardWindowMessages caps the user turns gathered per session when
	// generating flashcards.
	flashcardWindowMessages = 10
)

// ChatService orchestrates the triage conversation flows. Identity always
// comes from the verified request identity, never from request bodies. A
// failed step leaves earlier writes in place; that partial state is accepted.
type ChatService interface {
	StartSession(ctx context.Context, identity *auth.Identity) (uuid.UUID, error)
	Send(ctx context.Context, identity *auth.Identity, sessionID uuid.UUID, message string) (string, error)
	Summary(ctx context.Context, identity *auth.Identity, sessionID uuid.UUID) (string, error)
	Flashcards(ctx context.Context, identity *auth.Identity) ([]types.Flashcard, error)
}

type chatService struct {
	log        *logger.Logger
	sessions   chatrepos.ChatSessionRepo
	messages   chatrepos.ChatMessageRepo
	summaries  chatrepos.SymptomSummaryRepo
	completion openai.Client
}

func NewChatService(
	log *logger.Logger,
	sessions chatrepos.ChatSessionRepo,
	messages chatrepos.ChatMessageRepo,
	summaries chatrepos.SymptomSummaryRepo,
	completion openai.Client,
) ChatService {
	return &chatService{
		log:        log.With("service", "ChatService"),
		sessions:   sessions,
		messages:   messages,
		summaries:  summaries,
		completion: completion,
	}
}

func (s *chatService) StartSession(ctx context.Context, identity *auth.Identity) (uuid.UUID, error) {
	if identity == nil {
		return uuid.Nil, apierr.Unauthorized(fmt.Errorf("missing identity"))
	}
	session := &types.ChatSession{
		ID:        uuid.New(),
		UserID:    identity.UserID,
		StartedAt: time.Now().UTC(),
	}
	if err := s.sessions.Create(dbctx.Context{Ctx: ctx}, session); err != nil {
		return uuid.Nil, err
	}
	s.log.Info("Chat session started", "user_id", identity.UserID, "session_id", session.ID)
	return session.ID, nil
}

// Send runs the one strictly-ordered sequence of the system: prior history is
// read, the user turn is persisted, the completion runs over the assembled
// prompt, the assistant turn is persisted. The user row is not rolled back
// when the completion fails.
func (s *chatService) Send(ctx context.Context, identity *auth.Identity, sessionID uuid.UUID, message string) (string, error) {
	if identity == nil {
		return "", apierr.Unauthorized(fmt.Errorf("missing identity"))
	}
	if message == "" {
		return "", apierr.Validation(fmt.Errorf("message is required"))
	}
	if sessionID == uuid.Nil {
		return "", apierr.Validation(fmt.Errorf("session_id is required"))
	}
	dbc := dbctx.Context{Ctx: ctx}

	history, err := s.messages.ListBySession(dbc, identity.UserID, sessionID)
	if err != nil {
		return "", err
	}

	if err := s.messages.Create(dbc, &types.ChatMessage{
		UserID:    identity.UserID,
		SessionID: sessionID,
		Role:      types.RoleUser,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return "", err
	}

	reply, err := s.completion.Complete(ctx, BuildPrompt(history, message), &openai.Options{MaxTokens: chatMaxTokens})
	if err != nil {
		return "", err
	}

	if err := s.messages.Create(dbc, &types.ChatMessage{
		UserID:    identity.UserID,
		SessionID: sessionID,
		Role:      types.RoleAssistant,
		Message:   reply,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return "", err
	}
	return reply, nil
}

func (s *chatService) Summary(ctx context.Context, identity *auth.Identity, sessionID uuid.UUID) (string, error) {
	if identity == nil {
		return "", apierr.Unauthorized(fmt.Errorf("missing identity"))
	}
	if sessionID == uuid.Nil {
		return "", apierr.Validation(fmt.Errorf("session_id is required"))
	}
	dbc := dbctx.Context{Ctx: ctx}

	recent, err := s.messages.ListRecentUserMessages(dbc, identity.UserID, sessionID, minSummaryMessages)
	if err != nil {
		return "", err
	}
	prompt, err := BuildSummaryPrompt(recent)
	if err != nil {
		return "", err
	}

	summary, err := s.completion.Complete(ctx, prompt, &openai.Options{MaxTokens: chatMaxTokens})
	if err != nil {
		return "", err
	}

	if err := s.summaries.Create(dbc, &types.SymptomSummary{
		UserID:    identity.UserID,
		Summary:   summary,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return "", err
	}
	s.log.Info("Symptom summary created", "user_id", identity.UserID, "session_id", sessionID)
	return summary, nil
}

// Flashcards fans out over the user's most recent sessions. One bad session
// never aborts the others; its error is logged and its cards are dropped.
func (s *chatService) Flashcards(ctx context.Context, identity *auth.Identity) ([]types.Flashcard, error) {
	if identity == nil {
		return nil, apierr.Unauthorized(fmt.Errorf("missing identity"))
	}
	dbc := dbctx.Context{Ctx: ctx}

	sessions, err := s.sessions.ListRecent(dbc, identity.UserID, flashcardSessions)
	if err != nil {
		return nil, err
	}

	var (
		mu    sync.Mutex
		cards []types.Flashcard
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(flashcardSessions)
	for _, session := range sessions {
		session := session
		g.Go(func() error {
			sessionCards, sErr := s.flashcardsForSession(gctx, identity, session.ID)
			if sErr != nil {
				s.log.Warn("Flashcard generation failed for session",
					"session_id", session.ID, "error", sErr)
				return nil
			}
			mu.Lock()
			cards = append(cards, sessionCards...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if len(cards) == 0 {
		return nil, apierr.NotFound(fmt.Errorf("nothing generated"))
	}
	return cards, nil
}

func (s *chatService) flashcardsForSession(ctx context.Context, identity *auth.Identity, sessionID uuid.UUID) ([]types.Flashcard, error) {
	recent, err := s.messages.ListRecentUserMessages(dbctx.Context{Ctx: ctx}, identity.UserID, sessionID, flashcardWindowMessages)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, nil
	}
	// ListRecentUserMessages returns newest-first; the prompt reads
	// chronologically.
	chronological := make([]*types.ChatMessage, len(recent))
	for i, m := range recent {
		chronological[len(recent)-1-i] = m
	}
	text, err := s.completion.Complete(ctx, buildFlashcardPrompt(chronological), &openai.Options{MaxTokens: flashcardMaxTokens})
	if err != nil {
		return nil, err
	}
	return ParseFlashcards(text), nil
}
