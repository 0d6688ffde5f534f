package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/fadilefdika/Doctor-AI/internal/http/handlers"
	httpMW "github.com/fadilefdika/Doctor-AI/internal/http/middleware"
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler    *httpH.AuthHandler
	ChatHandler    *httpH.ChatHandler
	HealthHandler  *httpH.HealthHandler
	AuthMiddleware *httpMW.AuthMiddleware
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware("doctor-ai-backend"))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", cfg.AuthHandler.Register)
		authGroup.POST("/login", cfg.AuthHandler.Login)
		authGroup.GET("/profile", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Profile)
	}

	chatGroup := r.Group("/chat")
	chatGroup.Use(cfg.AuthMiddleware.RequireAuth())
	{
		chatGroup.POST("/start-session", cfg.ChatHandler.StartSession)
		chatGroup.POST("/send", cfg.ChatHandler.Send)
		chatGroup.POST("/summary", cfg.ChatHandler.Summary)
		chatGroup.GET("/flashcards", cfg.ChatHandler.Flashcards)
	}

	return r
}
