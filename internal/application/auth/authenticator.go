package auth

import (
	"context"
	"fmt"

	"github.com/Rydon32/Book-Notes/internal/domain"
)

// Credentials is the input to one authentication attempt. Local attempts
// fill Email/Password; OAuth attempts fill Profile from the completed
// provider handshake.
type Credentials struct {
	Email    string
	Password string
	Profile  *OAuthProfile
}

// Authenticator is one authentication strategy. Variants: local password,
// and one instance per configured OAuth provider sharing the ResolveOAuth
// algorithm.
type Authenticator interface {
	Name() string
	Authenticate(ctx context.Context, creds Credentials) (*domain.User, error)
}

// LocalAuthenticator verifies email/password credentials.
type LocalAuthenticator struct {
	verify *VerifyLocal
}

func NewLocalAuthenticator(verify *VerifyLocal) *LocalAuthenticator {
	return &LocalAuthenticator{verify: verify}
}

func (a *LocalAuthenticator) Name() string { return "local" }

func (a *LocalAuthenticator) Authenticate(ctx context.Context, creds Credentials) (*domain.User, error) {
	return a.verify.Execute(ctx, VerifyLocalInput{Email: creds.Email, Password: creds.Password})
}

// ProviderAuthenticator resolves an OAuth profile for a single named
// provider. All providers share the ResolveOAuth algorithm; only the name
// differs.
type ProviderAuthenticator struct {
	provider string
	resolve  *ResolveOAuth
}

func NewProviderAuthenticator(provider string, resolve *ResolveOAuth) *ProviderAuthenticator {
	return &ProviderAuthenticator{provider: provider, resolve: resolve}
}

func (a *ProviderAuthenticator) Name() string { return a.provider }

func (a *ProviderAuthenticator) Authenticate(ctx context.Context, creds Credentials) (*domain.User, error) {
	if creds.Profile == nil {
		return nil, fmt.Errorf("auth: provider %s requires a completed handshake profile", a.provider)
	}
	profile := *creds.Profile
	profile.Provider = a.provider
	return a.resolve.Execute(ctx, profile)
}

// Registry routes an attempt to the strategy registered under a name.
type Registry struct {
	strategies map[string]Authenticator
}

func NewRegistry(authenticators ...Authenticator) *Registry {
	m := make(map[string]Authenticator, len(authenticators))
	for _, a := range authenticators {
		m[a.Name()] = a
	}
	return &Registry{strategies: m}
}

// Get returns the strategy for name, or an error for unknown strategies.
func (r *Registry) Get(name string) (Authenticator, error) {
	a, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("auth: unknown strategy %q", name)
	}
	return a, nil
}
