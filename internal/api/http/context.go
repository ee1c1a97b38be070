package http

import (
	"context"

	"agrirent-backend/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated account extracted from a bearer token.
type Identity struct {
	AccountID string
	Email     string
	UserType  domain.UserType
}

func withIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the caller identity, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
