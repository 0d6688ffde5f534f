package services

import (
	"fmt"

	types "github.com/fadilefdika/Doctor-AI/internal/domain"
	"github.com/fadilefdika/Doctor-AI/internal/platform/apierr"
	"github.com/fadilefdika/Doctor-AI/internal/platform/openai"
)

// The summary instruction is fixed per deployment, matching the product's
// Indonesian-speaking user base.
const summarySystemPrompt = "Anda adalah asisten medis. Buat ringkasan singkat dari " +
	"gejala-gejala berikut dalam satu paragraf, termasuk kemungkinan kondisi " +
	"yang perlu diperiksakan ke dokter."

// minSummaryMessages is the precondition for the summary path: fewer stored
// user turns than this and no completion call is made.
const minSummaryMessages = 3

// BuildPrompt shapes the send-path prompt: every prior turn of the session in
// ascending stored order, then the new text as the final user turn. Equal
// timestamps arrive in store order; this function never reorders them.
func BuildPrompt(history []*types.ChatMessage, newMessage string) []openai.Message {
	out := make([]openai.Message, 0, len(history)+1)
	for _, m := range history {
		out = append(out, openai.Message{Role: m.Role, Content: m.Message})
	}
	out = append(out, openai.Message{Role: openai.RoleUser, Content: newMessage})
	return out
}

// BuildSummaryPrompt takes the most recent user turns in descending stored
// order, requires at least three, restores chronological order, and prepends
// the summary instruction.
func BuildSummaryPrompt(recentDesc []*types.ChatMessage) ([]openai.Message, error) {
	if len(recentDesc) < minSummaryMessages {
		return nil, apierr.Validation(fmt.Errorf("insufficient data: at least %d symptom messages are required", minSummaryMessages))
	}
	out := make([]openai.Message, 0, len(recentDesc)+1)
	out = append(out, openai.Message{Role: openai.RoleSystem, Content: summarySystemPrompt})
	for i := len(recentDesc) - 1; i >= 0; i-- {
		out = append(out, openai.Message{Role: openai.RoleUser, Content: recentDesc[i].Message})
	}
	return out, nil
}
