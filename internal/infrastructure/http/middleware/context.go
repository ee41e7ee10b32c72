package middleware

import (
	"context"

	"github.com/Rydon32/Book-Notes/internal/domain"
)

type contextKey string

const userContextKey contextKey = "user"

// WithUser injects the session claims into the context. Identity is only
// ever carried per request; nothing outside the request scope holds it.
func WithUser(ctx context.Context, claims *domain.SessionClaims) context.Context {
	return context.WithValue(ctx, userContextKey, claims)
}

// UserFromContext returns the session claims from the context, or nil.
func UserFromContext(ctx context.Context) *domain.SessionClaims {
	v := ctx.Value(userContextKey)
	if v == nil {
		return nil
	}
	c, _ := v.(*domain.SessionClaims)
	return c
}
