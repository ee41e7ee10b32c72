package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rydon32/Book-Notes/internal/application/auth"
	"github.com/Rydon32/Book-Notes/internal/domain"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/session"
)

type fakeUserRepo struct {
	byEmail map[string]*domain.User
	err     error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) (domain.UserID, error) {
	return 0, errors.New("not used")
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	return nil, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, encoded string) error {
	if encoded == "hashed:"+password {
		return nil
	}
	if strings.HasPrefix(encoded, "hashed:") {
		return domerrors.ErrInvalidCredentials
	}
	return errors.New("not a hash")
}

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
	c, ok := f.claims[token]
	if !ok {
		return nil, domerrors.ErrUnauthenticated
	}
	return c, nil
}

func (f *fakeSessionStore) Destroy(ctx context.Context, token string) error {
	delete(f.claims, token)
	return nil
}

func newAuthHandler(repo *fakeUserRepo, sessions *fakeSessionStore) *AuthHandler {
	registry := auth.NewRegistry(
		auth.NewLocalAuthenticator(auth.NewVerifyLocal(repo, fakeHasher{})),
	)
	return NewAuthHandler(registry, sessions, time.Hour, false, zerolog.Nop())
}

func postLogin(t *testing.T, h *AuthHandler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.Login(rec, req)
	return rec
}

func TestLogin_SuccessSetsSessionAndRedirects(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{
		"ana@example.com": {ID: 1, Email: "ana@example.com", Name: "Ana", Credential: "hashed:secret"},
	}}
	sessions := &fakeSessionStore{}
	h := newAuthHandler(repo, sessions)

	rec := postLogin(t, h, url.Values{"email": {"ana@example.com"}, "password": {"secret"}})

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/catalog", rec.Header().Get("Location"))

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "session cookie must be set")
	assert.True(t, cookie.HttpOnly)

	claims, err := sessions.Resolve(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(1), claims.UserID)
	// Only minimal claims live in the session, never the credential.
	assert.Equal(t, domain.SessionClaims{UserID: 1, Email: "ana@example.com", Name: "Ana"}, *claims)
}

func TestLogin_BadPasswordRedirectsToLogin(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{
		"ana@example.com": {ID: 1, Email: "ana@example.com", Credential: "hashed:secret"},
	}}
	h := newAuthHandler(repo, &fakeSessionStore{})

	rec := postLogin(t, h, url.Values{"email": {"ana@example.com"}, "password": {"wrong"}})

	assert.Equal(t, http.StatusFound, rec.Code)
	loc, _ := url.Parse(rec.Header().Get("Location"))
	assert.Equal(t, "/login", loc.Path)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogin_UnknownUserRedirectsToLogin(t *testing.T) {
	h := newAuthHandler(&fakeUserRepo{}, &fakeSessionStore{})

	rec := postLogin(t, h, url.Values{"email": {"nobody@example.com"}, "password": {"x"}})

	assert.Equal(t, http.StatusFound, rec.Code)
	loc, _ := url.Parse(rec.Header().Get("Location"))
	assert.Equal(t, "/login", loc.Path)
}

func TestLogin_ProviderAccountCannotUsePasswordPath(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{
		"bob@example.com": {ID: 2, Email: "bob@example.com", Credential: domain.ProviderGoogle},
	}}
	h := newAuthHandler(repo, &fakeSessionStore{})

	rec := postLogin(t, h, url.Values{"email": {"bob@example.com"}, "password": {"google"}})

	assert.Equal(t, http.StatusFound, rec.Code)
	loc, _ := url.Parse(rec.Header().Get("Location"))
	assert.Equal(t, "/login", loc.Path)
	assert.Empty(t, rec.Result().Cookies())
}

func TestLogout_DestroysSessionAndClearsCookie(t *testing.T) {
	sessions := &fakeSessionStore{claims: map[string]*domain.SessionClaims{
		"tok": {UserID: 1, Email: "ana@example.com"},
	}}
	h := newAuthHandler(&fakeUserRepo{}, sessions)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok"})
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	_, err := sessions.Resolve(context.Background(), "tok")
	assert.ErrorIs(t, err, domerrors.ErrUnauthenticated)
}
