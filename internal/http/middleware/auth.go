package middleware

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fadilefdika/Doctor-AI/internal/domain/auth"
	"github.com/fadilefdika/Doctor-AI/internal/http/response"
	"github.com/fadilefdika/Doctor-AI/internal/platform/apierr"
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
	"github.com/fadilefdika/Doctor-AI/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{log: log.With("middleware", "AuthMiddleware"), authService: authService}
}

// RequireAuth rejects before any downstream work when the header is missing
// or malformed; otherwise it re-verifies the token upstream on every request
// (no caching) and attaches the normalized identity to the request context.
func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			response.AbortError(c, apierr.Unauthorized(fmt.Errorf("missing or invalid token")))
			return
		}
		identity, err := am.authService.VerifyToken(c.Request.Context(), token)
		if err != nil {
			response.AbortError(c, err)
			return
		}
		if identity == nil || identity.UserID == uuid.Nil {
			response.AbortError(c, apierr.Internal(fmt.Errorf("token verification produced no identity")))
			return
		}
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return ""
}
