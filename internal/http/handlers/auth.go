package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/fadilefdika/Doctor-AI/internal/domain/auth"
	"github.com/fadilefdika/Doctor-AI/internal/http/response"
	"github.com/fadilefdika/Doctor-AI/internal/platform/apierr"
	"github.com/fadilefdika/Doctor-AI/internal/services"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Nama     string `json:"nama"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apierr.Validation(err))
		return
	}
	email, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Nama)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"message": "User registered successfully",
		"user":    email,
	})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apierr.Validation(err))
		return
	}
	session, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	response.RespondOK(c, gin.H{
		"message":      "Login successful",
		"access_token": session.AccessToken,
		"token_type":   session.TokenType,
		"user":         session.Email,
	})
}

// GET /auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	identity := auth.GetIdentity(c.Request.Context())
	if identity == nil {
		response.RespondError(c, apierr.Unauthorized(fmt.Errorf("missing or invalid token")))
		return
	}
	response.RespondOK(c, gin.H{
		"email":        identity.Email,
		"display_name": identity.DisplayName(),
	})
}
