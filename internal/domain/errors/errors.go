package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for handlers to map to redirects and HTTP status.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUnauthenticated     = errors.New("no authenticated session")
	ErrFutureDate          = errors.New("date read cannot be in the future")
	ErrStoreUnreachable    = errors.New("persistence store unreachable")
	ErrProviderUnreachable = errors.New("identity provider unreachable")
)

// MissingFieldsError lists entry fields absent from a submission, in the
// order the form declares them.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// WriteError wraps a failed multi-row write after rollback completed.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("entry write failed at %s: %v", e.Op, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
