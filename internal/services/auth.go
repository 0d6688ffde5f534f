package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilefdika/Doctor-AI/internal/domain/auth"
	"github.com/fadilefdika/Doctor-AI/internal/platform/apierr"
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
	"github.com/fadilefdika/Doctor-AI/internal/platform/supabase"
)

// AuthService fronts the external identity provider. Nothing credential-
// shaped is stored or checked locally; every operation is a delegated call.
type AuthService interface {
	Register(ctx context.Context, email, password, nama string) (string, error)
	Login(ctx context.Context, email, password string) (*supabase.Session, error)
	VerifyToken(ctx context.Context, accessToken string) (*auth.Identity, error)
}

type authService struct {
	log      *logger.Logger
	identity supabase.Client
}

func NewAuthService(log *logger.Logger, identity supabase.Client) AuthService {
	return &authService{
		log:      log.With("service", "AuthService"),
		identity: identity,
	}
}

func (s *authService) Register(ctx context.Context, email, password, nama string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", apierr.Validation(fmt.Errorf("an email is required to register"))
	}
	if password == "" {
		return "", apierr.Validation(fmt.Errorf("a password is required to register"))
	}
	var metadata map[string]any
	if nama = strings.TrimSpace(nama); nama != "" {
		metadata = map[string]any{"nama": nama}
	}
	result, err := s.identity.SignUp(ctx, email, password, metadata)
	if err != nil {
		return "", err
	}
	s.log.Info("User registered", "email", email)
	if result.Email != "" {
		return result.Email, nil
	}
	return email, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*supabase.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apierr.Validation(fmt.Errorf("email and password are required to login"))
	}
	session, err := s.identity.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.log.Info("User logged in", "email", email)
	return session, nil
}

func (s *authService) VerifyToken(ctx context.Context, accessToken string) (*auth.Identity, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, apierr.Unauthorized(fmt.Errorf("missing or invalid token"))
	}
	return s.identity.GetUser(ctx, accessToken)
}
