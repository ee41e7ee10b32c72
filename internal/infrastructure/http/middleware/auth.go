package middleware

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Rydon32/Book-Notes/internal/application/ports"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/session"
)

// SessionAuth resolves the session cookie and sets the claims in context
// (see UserFromContext). Requests without a live session are redirected to
// /login.
type SessionAuth struct {
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewSessionAuth(sessions ports.SessionStore, log zerolog.Logger) *SessionAuth {
	return &SessionAuth{sessions: sessions, log: log}
}

func (m *SessionAuth) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := session.TokenFromRequest(r)
		claims, err := m.sessions.Resolve(r.Context(), token)
		if err != nil {
			if !errors.Is(err, domerrors.ErrUnauthenticated) {
				m.log.Error().Err(err).Str("op", "resolve session").Msg("session store failure")
				http.Error(w, "service unavailable", http.StatusServiceUnavailable)
				return
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), claims)))
	})
}
