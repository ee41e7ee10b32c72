package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/Rydon32/Book-Notes/internal/application/auth"
	"github.com/Rydon32/Book-Notes/internal/application/ports"
	"github.com/Rydon32/Book-Notes/internal/domain"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/http/middleware"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/session"
)

// AuthHandler serves the local login form, credential submission and
// logout.
type AuthHandler struct {
	strategies   *auth.Registry
	sessions     ports.SessionStore
	cookieTTL    time.Duration
	validate     *validator.Validate
	secureCookie bool
	log          zerolog.Logger
}

func NewAuthHandler(strategies *auth.Registry, sessions ports.SessionStore, cookieTTL time.Duration, secureCookie bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		strategies:   strategies,
		sessions:     sessions,
		cookieTTL:    cookieTTL,
		validate:     validator.New(),
		secureCookie: secureCookie,
		log:          log,
	}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "login", struct{ Error string }{Error: r.URL.Query().Get("error")})
}

// Login verifies submitted local credentials and establishes a session.
// Failure redirects back to the login view, as the original flow does.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWithError(w, r, "/login", "invalid form submission")
		return
	}
	form := struct {
		Email    string `validate:"required,email,max=254"`
		Password string `validate:"required,max=128"`
	}{
		Email:    SanitizeEmail(r.PostFormValue("email")),
		Password: SanitizePassword(r.PostFormValue("password")),
	}
	if err := h.validate.Struct(&form); err != nil {
		redirectWithError(w, r, "/login", "invalid email or password")
		return
	}

	strategy, err := h.strategies.Get("local")
	if err != nil {
		h.log.Error().Err(err).Msg("local strategy missing")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	user, err := strategy.Authenticate(r.Context(), auth.Credentials{Email: form.Email, Password: form.Password})
	if err != nil {
		middleware.RecordAuthAttempt("local", false)
		switch {
		case errors.Is(err, domerrors.ErrUserNotFound), errors.Is(err, domerrors.ErrInvalidCredentials):
			redirectWithError(w, r, "/login", "invalid email or password")
		default:
			h.log.Error().Err(err).Str("op", "verify local").Str("email", form.Email).Msg("login dependency failure")
			redirectWithError(w, r, "/login", "something went wrong, try again")
		}
		return
	}
	middleware.RecordAuthAttempt("local", true)
	h.establishSession(w, r, user)
}

// Logout destroys the session and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := session.TokenFromRequest(r)
	if token != "" {
		if err := h.sessions.Destroy(r.Context(), token); err != nil {
			h.log.Error().Err(err).Str("op", "destroy session").Msg("logout failure")
		}
	}
	session.ClearCookie(w, h.secureCookie)
	http.Redirect(w, r, "/", http.StatusFound)
}

// establishSession issues a fresh token for the user and redirects to the
// catalog view. Shared with the OAuth callback path.
func (h *AuthHandler) establishSession(w http.ResponseWriter, r *http.Request, user *domain.User) {
	claims := domain.SessionClaims{UserID: user.ID, Email: user.Email, Name: user.Name}
	token, err := h.sessions.Create(r.Context(), claims)
	if err != nil {
		h.log.Error().Err(err).Str("op", "create session").Int64("user_id", int64(user.ID)).Msg("session store failure")
		redirectWithError(w, r, "/login", "something went wrong, try again")
		return
	}
	session.SetCookie(w, token, h.cookieTTL, h.secureCookie)
	http.Redirect(w, r, "/catalog", http.StatusFound)
}
