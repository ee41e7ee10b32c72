package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/facebook"
	"github.com/markbates/goth/providers/google"

	"github.com/Rydon32/Book-Notes/internal/application/auth"
	"github.com/Rydon32/Book-Notes/internal/infrastructure/http/middleware"
)

// OAuthProviderConfig holds one provider's client credentials.
type OAuthProviderConfig struct {
	ClientID     string
	ClientSecret string
}

// InitOAuthProviders registers Goth providers and the handshake state
// store. Call once at startup. Scopes match what each provider's profile
// needs: Google profile+email, Facebook email.
func InitOAuthProviders(callbackBaseURL, stateSecret string, googleCfg, facebookCfg OAuthProviderConfig) {
	var providers []goth.Provider
	if googleCfg.ClientID != "" && googleCfg.ClientSecret != "" {
		callbackURL := callbackBaseURL + "/auth/google/callback"
		providers = append(providers, google.New(googleCfg.ClientID, googleCfg.ClientSecret, callbackURL, "profile", "email"))
	}
	if facebookCfg.ClientID != "" && facebookCfg.ClientSecret != "" {
		callbackURL := callbackBaseURL + "/auth/facebook/callback"
		providers = append(providers, facebook.New(facebookCfg.ClientID, facebookCfg.ClientSecret, callbackURL, "email"))
	}
	goth.UseProviders(providers...)
	if stateSecret != "" {
		gothic.Store = sessions.NewCookieStore([]byte(stateSecret))
	}
}

// OAuthBegin redirects to the OAuth provider. Provider from URL:
// /auth/{provider}.
func (h *AuthHandler) OAuthBegin(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	if _, err := goth.GetProvider(provider); err != nil {
		redirectWithError(w, r, "/login", "unknown provider")
		return
	}
	// Gothic expects provider in query
	r2 := r.Clone(r.Context())
	q := r2.URL.Query()
	q.Set("provider", provider)
	r2.URL.RawQuery = q.Encode()
	authURL, err := gothic.GetAuthURL(w, r2)
	if err != nil {
		h.log.Error().Err(err).Str("provider", provider).Msg("oauth begin failed")
		redirectWithError(w, r, "/login", "could not start sign-in")
		return
	}
	http.Redirect(w, r, authURL, http.StatusTemporaryRedirect)
}

// OAuthCallback completes the handshake, resolves (or provisions) the user
// and establishes a session. Failure lands back on the login view.
func (h *AuthHandler) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	provider := chi.URLParam(r, "provider")
	r2 := r.Clone(r.Context())
	q := r2.URL.Query()
	q.Set("provider", provider)
	r2.URL.RawQuery = q.Encode()
	gothUser, err := gothic.CompleteUserAuth(w, r2)
	if err != nil {
		middleware.RecordAuthAttempt(provider, false)
		redirectWithError(w, r, "/login", "sign-in failed")
		return
	}

	strategy, err := h.strategies.Get(provider)
	if err != nil {
		redirectWithError(w, r, "/login", "unknown provider")
		return
	}
	user, err := strategy.Authenticate(r.Context(), auth.Credentials{
		Profile: &auth.OAuthProfile{
			Email:     SanitizeEmail(gothUser.Email),
			GivenName: givenName(gothUser),
		},
	})
	if err != nil {
		middleware.RecordAuthAttempt(provider, false)
		h.log.Error().Err(err).Str("op", "resolve oauth").Str("provider", provider).Msg("oauth dependency failure")
		redirectWithError(w, r, "/login", "sign-in failed")
		return
	}
	middleware.RecordAuthAttempt(provider, true)
	h.establishSession(w, r, user)
}

func givenName(u goth.User) string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Name
}
