package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fadilefdika/Doctor-AI/internal/domain/auth"
	"github.com/fadilefdika/Doctor-AI/internal/platform/apierr"
	"github.com/fadilefdika/Doctor-AI/internal/platform/envutil"
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
)

// Client talks to a Supabase-compatible auth API. It owns the only place
// where the provider's loosely-typed payloads are decoded; everything past
// this boundary sees auth.Identity or Session.
type Client interface {
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*SignUpResult, error)
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	GetUser(ctx context.Context, accessToken string) (*auth.Identity, error)
}

type SignUpResult struct {
	Email string
}

type Session struct {
	AccessToken string
	TokenType   string
	Email       string
}

type client struct {
	httpClient *http.Client
	log        *logger.Logger
	baseURL    string
	serviceKey string
}

func NewClient(log *logger.Logger) (Client, error) {
	baseURL, err := envutil.Require("SUPABASE_URL")
	if err != nil {
		return nil, err
	}
	serviceKey, err := envutil.Require("SUPABASE_KEY")
	if err != nil {
		return nil, err
	}
	return &client{
		httpClient: &http.Client{
			Timeout: envutil.Duration("SUPABASE_TIMEOUT", 10*time.Second),
		},
		log:        log.With("client", "SupabaseClient"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
	}, nil
}

func (c *client) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*SignUpResult, error) {
	body := map[string]any{
		"email":    email,
		"password": password,
	}
	if len(metadata) > 0 {
		body["data"] = metadata
	}
	raw, err := c.post(ctx, "/auth/v1/signup", "", body)
	if err != nil {
		return nil, err
	}
	var payload struct {
		Email string `json:"email"`
		User  *struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, apierr.Upstream(fmt.Errorf("decode signup response: %w", err))
	}
	resultEmail := payload.Email
	if resultEmail == "" && payload.User != nil {
		resultEmail = payload.User.Email
	}
	return &SignUpResult{Email: resultEmail}, nil
}

func (c *client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	raw, err := c.post(ctx, "/auth/v1/token", "grant_type=password", map[string]any{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        *struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, apierr.Upstream(fmt.Errorf("decode token response: %w", err))
	}
	if payload.AccessToken == "" {
		return nil, apierr.Upstream(fmt.Errorf("identity provider returned no access token"))
	}
	session := &Session{
		AccessToken: payload.AccessToken,
		TokenType:   payload.TokenType,
	}
	if session.TokenType == "" {
		session.TokenType = "bearer"
	}
	if payload.User != nil {
		session.Email = payload.User.Email
	}
	return session, nil
}

func (c *client) GetUser(ctx context.Context, accessToken string) (*auth.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierr.Upstream(fmt.Errorf("identity provider unreachable: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Upstream(fmt.Errorf("read identity response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apierr.Unauthorized(fmt.Errorf("identity provider rejected token: %s", providerMessage(raw, resp.StatusCode)))
	}

	// Provider versions disagree on the identifier field: older payloads
	// carry "sub", newer ones "id". Both are accepted here and nowhere else.
	var payload struct {
		ID           string         `json:"id"`
		Sub          string         `json:"sub"`
		Email        string         `json:"email"`
		UserMetadata map[string]any `json:"user_metadata"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, apierr.Upstream(fmt.Errorf("decode identity response: %w", err))
	}
	rawID := payload.ID
	if rawID == "" {
		rawID = payload.Sub
	}
	if rawID == "" {
		return nil, apierr.Internal(fmt.Errorf("identity response carries no user id"))
	}
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apierr.Internal(fmt.Errorf("identity response user id is not a uuid: %w", err))
	}
	return &auth.Identity{
		UserID:   userID,
		Email:    payload.Email,
		Metadata: payload.UserMetadata,
	}, nil
}

func (c *client) post(ctx context.Context, path, query string, body map[string]any) ([]byte, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	endpoint := c.baseURL + path
	if query != "" {
		endpoint += "?" + query
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, apierr.Internal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.serviceKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierr.Upstream(fmt.Errorf("identity provider unreachable: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Upstream(fmt.Errorf("read identity response: %w", err))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := providerMessage(raw, resp.StatusCode)
		if resp.StatusCode >= 500 {
			return nil, apierr.Upstream(fmt.Errorf("%s", msg))
		}
		return nil, apierr.Validation(fmt.Errorf("%s", msg))
	}
	return raw, nil
}

// providerMessage pulls a human-readable message out of the provider's error
// payload, whichever of its historical field names is present.
func providerMessage(raw []byte, status int) string {
	var payload struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		for _, m := range []string{payload.Msg, payload.Message, payload.ErrorDescription, payload.Error} {
			if strings.TrimSpace(m) != "" {
				return strings.TrimSpace(m)
			}
		}
	}
	return fmt.Sprintf("identity provider error (status %d)", status)
}
