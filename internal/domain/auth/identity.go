package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Identity is the normalized result of token verification. It is the only
// acceptable source of a user id for write operations; caller-supplied
// identities are never trusted.
type Identity struct {
	UserID   uuid.UUID
	Email    string
	Metadata map[string]any
}

// DisplayName probes the metadata keys the identity provider has used across
// versions, falling back to the email local part.
func (id *Identity) DisplayName() string {
	if id == nil {
		return ""
	}
	for _, key := range []string{"nama", "display_name", "name"} {
		if v, ok := id.Metadata[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	if at := strings.IndexByte(id.Email, '@'); at > 0 {
		return id.Email[:at]
	}
	return id.Email
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func GetIdentity(ctx context.Context) *Identity {
	if id, ok := ctx.Value(identityKey{}).(*Identity); ok {
		return id
	}
	return nil
}
