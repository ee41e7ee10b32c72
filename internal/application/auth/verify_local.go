package auth

import (
	"context"
	"errors"

	"github.com/Rydon32/Book-Notes/internal/application/ports"
	"github.com/Rydon32/Book-Notes/internal/domain"
	domerrors "github.com/Rydon32/Book-Notes/internal/domain/errors"
)

// VerifyLocalInput carries the submitted login form.
type VerifyLocalInput struct {
	Email    string
	Password string
}

// VerifyLocal authenticates a local account against its stored hash.
type VerifyLocal struct {
	users  ports.UserRepository
	hasher ports.PasswordHasher
}

func NewVerifyLocal(users ports.UserRepository, hasher ports.PasswordHasher) *VerifyLocal {
	return &VerifyLocal{users: users, hasher: hasher}
}

// Execute resolves the user by email and compares the supplied plaintext
// against the stored credential. Provider-provisioned accounts carry a
// sentinel instead of a hash and can never pass this path: the hasher
// rejects the sentinel as malformed and we map that to a credential
// failure without ever reporting success.
func (uc *VerifyLocal) Execute(ctx context.Context, input VerifyLocalInput) (*domain.User, error) {
	user, err := uc.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}
	if user.ProviderSentinel() {
		return nil, domerrors.ErrInvalidCredentials
	}
	if err := uc.hasher.Verify(input.Password, user.Credential); err != nil {
		if errors.Is(err, domerrors.ErrInvalidCredentials) {
			return nil, domerrors.ErrInvalidCredentials
		}
		// Comparison failed for a reason other than a mismatch; surface it
		// so it is not mistaken for a bad password.
		return nil, err
	}
	return user, nil
}
