package domain

// UserID is a value object for user identity.
type UserID int64

// User is a reader account. Credential holds either a bcrypt hash (local
// accounts) or a provider sentinel such as "google" (OAuth-provisioned
// accounts, which never authenticate through the password path).
type User struct {
	ID         UserID
	Email      string
	Name       string
	Credential string
}

// ProviderSentinel reports whether the stored credential is a provider
// sentinel rather than a password hash.
func (u *User) ProviderSentinel() bool {
	switch u.Credential {
	case ProviderGoogle, ProviderFacebook:
		return true
	}
	return false
}

// Supported OAuth provider names. The sentinel stored in the credential
// column is the provider name itself.
const (
	ProviderGoogle   = "google"
	ProviderFacebook = "facebook"
)

// SessionClaims is the minimal identity subset a session may carry.
// The credential marker and hash are deliberately excluded.
type SessionClaims struct {
	UserID UserID `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}
