package ports

// PasswordHasher hashes and verifies local-account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify returns nil on match, domain/errors.ErrInvalidCredentials on
	// mismatch, and any other error when the comparison itself failed (for
	// example when the stored value is a provider sentinel, not a hash).
	// Callers must not collapse the last case into a mismatch.
	Verify(password, encoded string) error
}
