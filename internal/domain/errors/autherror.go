package errors

import "fmt"

// AuthError means the login exchange with the inventory service failed.
// The message carries the HTTP status text only, never credentials.
type AuthError struct {
	message string
}

func (v *AuthError) Error() string {
	return v.message
}

func AuthErrorf(format string, args ...any) *AuthError {
	return &AuthError{
		message: fmt.Sprintf(format, args...),
	}
}

var _ error = &AuthError{}
