package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rydon32/Book-Notes/internal/domain"
)

func TestRegistry_RoutesToStrategyByName(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]*domain.User{
		"ana@example.com": {ID: 1, Email: "ana@example.com", Credential: "hashed:secret"},
	}}
	registry := NewRegistry(
		NewLocalAuthenticator(NewVerifyLocal(repo, fakeHasher{})),
		NewProviderAuthenticator(domain.ProviderGoogle, NewResolveOAuth(repo)),
		NewProviderAuthenticator(domain.ProviderFacebook, NewResolveOAuth(repo)),
	)

	local, err := registry.Get("local")
	require.NoError(t, err)
	user, err := local.Authenticate(context.Background(), Credentials{Email: "ana@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, domain.UserID(1), user.ID)

	google, err := registry.Get(domain.ProviderGoogle)
	require.NoError(t, err)
	user, err = google.Authenticate(context.Background(), Credentials{
		Profile: &OAuthProfile{Email: "new@example.com", GivenName: "New"},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ProviderGoogle, user.Credential)

	_, err = registry.Get("github")
	assert.Error(t, err)
}

func TestProviderAuthenticator_RequiresProfile(t *testing.T) {
	a := NewProviderAuthenticator(domain.ProviderFacebook, NewResolveOAuth(&fakeUserRepo{}))
	_, err := a.Authenticate(context.Background(), Credentials{Email: "x@example.com"})
	assert.Error(t, err)
}
