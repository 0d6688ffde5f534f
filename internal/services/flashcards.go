package services

import (
	"strings"

	types "github.com/fadilefdika/Doctor-AI/internal/domain"
	"github.com/fadilefdika/Doctor-AI/internal/domain/chat"
	"github.com/fadilefdika/Doctor-AI/internal/platform/openai"
)

// The flashcard prompt pins the output labels the parser recognizes. The
// model is asked for English category keywords so the closed set matches
// regardless of conversation language.
const flashcardSystemPrompt = "Anda adalah asisten edukasi kesehatan. Berdasarkan keluhan " +
	"pengguna, buat beberapa flashcard edukasi singkat (bukan nasihat medis). " +
	"Tulis setiap kartu persis dalam format berikut, dipisahkan baris kosong:\n" +
	"Title: <judul singkat>\n" +
	"Body: <penjelasan 1-3 kalimat>\n" +
	"Category: <salah satu dari: symptoms, prevention, treatment, lifestyle, general>"

func buildFlashcardPrompt(userMessages []*types.ChatMessage) []openai.Message {
	texts := make([]string, 0, len(userMessages))
	for _, m := range userMessages {
		texts = append(texts, "- "+m.Message)
	}
	return []openai.Message{
		{Role: openai.RoleSystem, Content: flashcardSystemPrompt},
		{Role: openai.RoleUser, Content: "Keluhan pengguna:\n" + strings.Join(texts, "\n")},
	}
}

// ParseFlashcards extracts well-formed cards from completion text. A segment
// is one Title/Body/Category block; segments missing a label, with an empty
// value, or with a category outside the closed set are skipped rather than
// failing the whole parse.
func ParseFlashcards(text string) []types.Flashcard {
	var cards []types.Flashcard
	for _, segment := range splitSegments(text) {
		card, ok := parseSegment(segment)
		if !ok {
			continue
		}
		cards = append(cards, card)
	}
	return cards
}

func splitSegments(text string) []string {
	// Cards are separated by blank lines; tolerate "---" dividers some
	// models insert.
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	var segments []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			segments = append(segments, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(normalized, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" {
			flush()
			continue
		}
		if strings.HasPrefix(strings.ToLower(trimmed), "title:") && len(current) > 0 {
			flush()
		}
		current = append(current, trimmed)
	}
	flush()
	return segments
}

func parseSegment(segment string) (types.Flashcard, bool) {
	var card types.Flashcard
	for _, line := range strings.Split(segment, "\n") {
		label, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		switch strings.ToLower(strings.TrimSpace(label)) {
		case "title":
			card.Title = value
		case "body":
			card.Body = value
		case "category":
			card.Category = strings.ToLower(value)
		}
	}
	if card.Title == "" || card.Body == "" {
		return types.Flashcard{}, false
	}
	if !chat.ValidFlashcardCategory(card.Category) {
		return types.Flashcard{}, false
	}
	return card, true
}
