package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rydon32/Book-Notes/internal/domain"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/session"
)

type fakeSessionStore struct {
	claims map[string]*domain.SessionClaims
	err    error
}

func (f *fakeSessionStore) Create(ctx context.Context, claims domain.SessionClaims) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.claims == nil {
		f.claims = map[string]*domain.SessionClaims{}
	}
	token := "token-for-" + claims.Email
	f.claims[token] = &claims
	return token, nil
}

func (f *fakeSessionStore) Resolve(ctx context.Context, token string) (*domain.SessionClaims, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.claims[token]
	if !ok {
		return nil, domerrors.ErrUnauthenticated
	}
	return c, nil
}

func (f *fakeSessionStore) Destroy(ctx context.Context, token string) error {
	delete(f.claims, token)
	return f.err
}

func TestSessionAuth_RedirectsWithoutSession(t *testing.T) {
	m := NewSessionAuth(&fakeSessionStore{}, zerolog.Nop())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	})

	rec := httptest.NewRecorder()
	m.Handler(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionAuth_SetsClaimsInContext(t *testing.T) {
	store := &fakeSessionStore{claims: map[string]*domain.SessionClaims{
		"tok": {UserID: 7, Email: "ana@example.com", Name: "Ana"},
	}}
	m := NewSessionAuth(store, zerolog.Nop())

	var got *domain.SessionClaims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	rec := httptest.NewRecorder()
	m.Handler(next).ServeHTTP(rec, req)

	require.NotNil(t, got)
	assert.Equal(t, domain.UserID(7), got.UserID)
	assert.Equal(t, "Ana", got.Name)
}

func TestSessionAuth_StoreFailureIsNotARedirect(t *testing.T) {
	m := NewSessionAuth(&fakeSessionStore{err: domerrors.ErrStoreUnreachable}, zerolog.Nop())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run on store failure")
	})

	req := httptest.NewRequest(http.MethodGet, "/catalog", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	rec := httptest.NewRecorder()
	m.Handler(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
