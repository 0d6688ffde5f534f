package app

import (
	apphttp "github.com/fadilefdika/Doctor-AI/internal/http"
	httpH "github.com/fadilefdika/Doctor-AI/internal/http/handlers"
	httpMW "github.com/fadilefdika/Doctor-AI/internal/http/middleware"
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
)

type Handlers struct {
	Health *httpH.HealthHandler
	Auth   *httpH.AuthHandler
	Chat   *httpH.ChatHandler
}

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(),
		Auth:   httpH.NewAuthHandler(services.Auth),
		Chat:   httpH.NewChatHandler(services.Chat),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, handlers Handlers, middleware Middleware) *apphttp.Server {
	return apphttp.NewServer(apphttp.RouterConfig{
		Log:            log,
		AuthHandler:    handlers.Auth,
		ChatHandler:    handlers.Chat,
		HealthHandler:  handlers.Health,
		AuthMiddleware: middleware.Auth,
	})
}
