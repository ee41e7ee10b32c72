package ports

import (
	"context"

	"github.com/Rydon32/Book-Notes/internal/domain"
)

// SessionStore binds minimal identity claims to an opaque token.
type SessionStore interface {
	// Create issues a fresh token for the claims, replacing whatever the
	// transport carried before.
	Create(ctx context.Context, claims domain.SessionClaims) (token string, err error)
	// Resolve returns the claims for a token, or
	// domain/errors.ErrUnauthenticated when the token is unknown or
	// expired. Resolving the same token twice yields the same claims.
	Resolve(ctx context.Context, token string) (*domain.SessionClaims, error)
	Destroy(ctx context.Context, token string) error
}
