package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/fadilefdika/Doctor-AI/internal/platform/apierr"
	"github.com/fadilefdika/Doctor-AI/internal/platform/logger"
)

func newTestClient(t *testing.T, handler http.Handler) (Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("SUPABASE_URL", srv.URL)
	t.Setenv("SUPABASE_KEY", "service-key")

	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	c, err := NewClient(log)
	if err != nil {
		t.Fatalf("init client: %v", err)
	}
	return c, srv
}

func TestGetUserAcceptsIDField(t *testing.T) {
	userID := uuid.New()
	var gotAuth, gotAPIKey string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/user" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotAPIKey = r.Header.Get("apikey")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"` + userID.String() + `","email":"pasien@example.com","user_metadata":{"nama":"Budi"}}`))
	}))

	identity, err := c.GetUser(context.Background(), "token-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.UserID != userID {
		t.Fatalf("unexpected user id: got=%s want=%s", identity.UserID, userID)
	}
	if identity.Email != "pasien@example.com" {
		t.Fatalf("unexpected email: %s", identity.Email)
	}
	if gotAuth != "Bearer token-123" {
		t.Fatalf("unexpected Authorization header: %q", gotAuth)
	}
	if gotAPIKey != "service-key" {
		t.Fatalf("unexpected apikey header: %q", gotAPIKey)
	}
	if identity.DisplayName() != "Budi" {
		t.Fatalf("unexpected display name: %q", identity.DisplayName())
	}
}

func TestGetUserFallsBackToSubField(t *testing.T) {
	userID := uuid.New()
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sub":"` + userID.String() + `","email":"pasien@example.com"}`))
	}))

	identity, err := c.GetUser(context.Background(), "token-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.UserID != userID {
		t.Fatalf("unexpected user id: got=%s want=%s", identity.UserID, userID)
	}
}

func TestGetUserRejectedTokenIsUnauthorized(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"invalid JWT"}`))
	}))

	_, err := c.GetUser(context.Background(), "stale-token")
	if !apierr.Is(err, apierr.CodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestGetUserPayloadWithoutIDIsInternal(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"email":"pasien@example.com"}`))
	}))

	_, err := c.GetUser(context.Background(), "token-123")
	if !apierr.Is(err, apierr.CodeInternal) {
		t.Fatalf("expected internal_error, got %v", err)
	}
}

func TestGetUserNonUUIDIDIsInternal(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"not-a-uuid"}`))
	}))

	_, err := c.GetUser(context.Background(), "token-123")
	if !apierr.Is(err, apierr.CodeInternal) {
		t.Fatalf("expected internal_error, got %v", err)
	}
}

func TestSignUpDuplicateEmailIsValidation(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/signup" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"msg":"User already registered"}`))
	}))

	_, err := c.SignUp(context.Background(), "pasien@example.com", "rahasia123", map[string]any{"nama": "Budi"})
	if !apierr.Is(err, apierr.CodeValidation) {
		t.Fatalf("expected validation_error, got %v", err)
	}
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) || apiErr.Err.Error() != "User already registered" {
		t.Fatalf("provider message should be preserved, got %v", err)
	}
}

func TestSignInWithPasswordReturnsSession(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("grant_type"); got != "password" {
			t.Errorf("unexpected grant_type: %q", got)
		}
		w.Write([]byte(`{"access_token":"jwt-abc","token_type":"bearer","user":{"email":"pasien@example.com"}}`))
	}))

	session, err := c.SignInWithPassword(context.Background(), "pasien@example.com", "rahasia123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.AccessToken != "jwt-abc" || session.TokenType != "bearer" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if session.Email != "pasien@example.com" {
		t.Fatalf("unexpected session email: %q", session.Email)
	}
}

func TestSignInProviderOutageIsUpstream(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream timeout"}`))
	}))

	_, err := c.SignInWithPassword(context.Background(), "pasien@example.com", "rahasia123")
	if !apierr.Is(err, apierr.CodeUpstream) {
		t.Fatalf("expected upstream_error, got %v", err)
	}
}
