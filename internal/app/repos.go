package app

import (
	"gorm.io/gorm"

	chatrepos "github.com/fadilefdika/Doctor-AI/internal/data/repos/chat"
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
)

type Repos struct {
	Sessions  chatrepos.ChatSessionRepo
	Messages  chatrepos.ChatMessageRepo
	Summaries chatrepos.SymptomSummaryRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Sessions:  chatrepos.NewChatSessionRepo(db, log),
		Messages:  chatrepos.NewChatMessageRepo(db, log),
		Summaries: chatrepos.NewSymptomSummaryRepo(db, log),
	}
}
