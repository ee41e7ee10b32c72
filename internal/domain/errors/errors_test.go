package errors

import "testing"

func TestSentinelErrors(t *testing.T) {
	if ErrInvalidCredentials == nil {
		t.Error("ErrInvalidCredentials should not be nil")
	}
	if ErrUserNotFound == nil {
		t.Error("ErrUserNotFound should not be nil")
	}
	if ErrFutureDate == nil {
		t.Error("ErrFutureDate should not be nil")
	}
}

func TestMissingFieldsErrorMessage(t *testing.T) {
	err := &MissingFieldsError{Fields: []string{"rating", "notes"}}
	want := "missing required fields: rating, notes"
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
