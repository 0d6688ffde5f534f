package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// Server owns the listening side of the triage API. The engine stays exported
// so tests drive routes through httptest without binding a port.
type Server struct {
	Engine *gin.Engine
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

// Run blocks serving on the given port until the listener fails.
func (s *Server) Run(port string) error {
	if s == nil || s.Engine == nil {
		return fmt.Errorf("server not initialized")
	}
	return s.Engine.Run(":" + port)
}
