package auth

import (
	"context"

	"github.com/Rydon32/Book-Notes/internal/application/ports"
	"github.com/Rydon32/Book-Notes/internal/domain"
)

// OAuthProfile is the minimal info we get from a provider handshake
// (Goth user).
type OAuthProfile struct {
	Provider  string
	Email     string
	GivenName string
}

// ResolveOAuth gets or creates a user from an OAuth identity. Email is the
// sole join key: a person who first signs in via one provider and later via
// another with the same email resolves to the same user, and the stored
// credential marker keeps naming the first provisioning provider.
type ResolveOAuth struct {
	users ports.UserRepository
}

func NewResolveOAuth(users ports.UserRepository) *ResolveOAuth {
	return &ResolveOAuth{users: users}
}

// Execute finds the user by email or provisions one just in time, with the
// provider name as credential sentinel and the given name as display name.
func (uc *ResolveOAuth) Execute(ctx context.Context, profile OAuthProfile) (*domain.User, error) {
	user, err := uc.users.GetByEmail(ctx, profile.Email)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	user = &domain.User{
		Email:      profile.Email,
		Name:       profile.GivenName,
		Credential: profile.Provider,
	}
	id, err := uc.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id
	return user, nil
}
