package app

import (
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
	"github.com/fadilefdika/Doctor-AI/internal/services"
)

type Services struct {
	Auth services.AuthService
	Chat services.ChatService
}

func wireServices(log *logger.Logger, clients Clients, repos Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth: services.NewAuthService(log, clients.Identity),
		Chat: services.NewChatService(log, repos.Sessions, repos.Messages, repos.Summaries, clients.Completion),
	}
}
