package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	httpH "github.com/fadilefdika/Doctor-AI/internal/http/handlers"
	httpMW "github.com/fadilefdika/Doctor-AI/internal/http/middleware"
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
)

func TestServerServesWiredRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	s := NewServer(RouterConfig{
		Log:            log,
		AuthHandler:    httpH.NewAuthHandler(nil),
		ChatHandler:    httpH.NewChatHandler(nil),
		HealthHandler:  httpH.NewHealthHandler(),
		AuthMiddleware: httpMW.NewAuthMiddleware(log, nil),
	})

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	w := httptest.NewRecorder()
	s.Engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("unexpected status: got=%d want=200", w.Code)
	}
	if w.Body.String() != "ok" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}

	// Protected routes reject before touching the nil services.
	req = httptest.NewRequest(http.MethodGet, "/chat/flashcards", nil)
	w = httptest.NewRecorder()
	s.Engine.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unexpected status: got=%d want=401", w.Code)
	}
}

func TestServerRunRequiresInitialization(t *testing.T) {
	var s *Server
	if err := s.Run("8001"); err == nil {
		t.Fatal("nil server must refuse to run")
	}
	if err := (&Server{}).Run("8001"); err == nil {
		t.Fatal("server without an engine must refuse to run")
	}
}
